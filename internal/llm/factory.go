package llm

import (
	"context"

	"github.com/abhisek/studiz/internal/store"
)

// NewProvider creates a Provider from configuration.
// The provider is wrapped with event logging middleware. There is no retry
// middleware: a failed completion surfaces immediately and the user retries
// by re-invoking generation.
func NewProvider(ctx context.Context, cfg Config, events store.LLMEventRepo) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	}
	if err != nil {
		return nil, err
	}

	if events == nil {
		return base, nil
	}
	return WithLogging(base, events), nil
}

// NewProviderFromEnv builds a provider from STUDIZ_* env vars, falling back
// to probing the standard API key variables.
func NewProviderFromEnv(ctx context.Context, events store.LLMEventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if cfg.Validate() != nil {
		if discovered, ok := DiscoverConfig(); ok {
			cfg = discovered
		}
	}
	return NewProvider(ctx, cfg, events)
}
