package studygen

import (
	"context"
	"fmt"

	"github.com/abhisek/studiz/internal/llm"
)

// Generator produces study material by prompting an LLM provider and
// validating what comes back.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// Explain generates a Markdown explanation of a concept.
func (g *Generator) Explain(ctx context.Context, topic string) (string, error) {
	prompt, err := BuildExplainPrompt(topic)
	if err != nil {
		return "", err
	}
	raw, err := g.complete(llm.WithPurpose(ctx, "explain"), prompt)
	if err != nil {
		return "", err
	}
	return ParseFreeform(raw), nil
}

// Summarize generates a bullet-point summary of a block of text.
func (g *Generator) Summarize(ctx context.Context, text string) (string, error) {
	prompt, err := BuildSummarizePrompt(text)
	if err != nil {
		return "", err
	}
	raw, err := g.complete(llm.WithPurpose(ctx, "summarize"), prompt)
	if err != nil {
		return "", err
	}
	return ParseFreeform(raw), nil
}

// GenerateQuiz generates and validates a multiple-choice quiz.
func (g *Generator) GenerateQuiz(ctx context.Context, topic string) (QuizQuestionSet, error) {
	prompt, err := BuildQuizPrompt(topic)
	if err != nil {
		return nil, err
	}
	raw, err := g.complete(llm.WithPurpose(ctx, "quiz"), prompt)
	if err != nil {
		return nil, err
	}
	return ParseQuiz(raw)
}

// GenerateFlashcards generates and validates a flashcard deck.
func (g *Generator) GenerateFlashcards(ctx context.Context, topic string) (FlashcardDeck, error) {
	prompt, err := BuildFlashcardPrompt(topic)
	if err != nil {
		return nil, err
	}
	raw, err := g.complete(llm.WithPurpose(ctx, "flashcard"), prompt)
	if err != nil {
		return nil, err
	}
	return ParseFlashcards(raw)
}

func (g *Generator) complete(ctx context.Context, prompt string) (string, error) {
	req := llm.Request{
		System: SystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Complete(ctx, req)
	if err != nil {
		return "", fmt.Errorf("LLM completion failed: %w", err)
	}
	return resp.Text, nil
}
