package llm

import (
	"errors"
	"fmt"
	"time"
)

// ErrConfiguration indicates the provider cannot be reached because required
// access configuration (typically an API key) is absent or invalid. This is
// fatal for the process: the user must fix their setup, not retry.
type ErrConfiguration struct {
	Provider string
	Err      error
}

func (e *ErrConfiguration) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s provider not configured: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("%s provider not configured", e.Provider)
}

func (e *ErrConfiguration) Unwrap() error { return e.Err }

// ErrProvider indicates the external capability returned an error or
// non-success response: server error, invalid model, network failure.
// Transient — the user may retry by re-invoking generation. The client
// itself never retries.
type ErrProvider struct {
	Err error
}

func (e *ErrProvider) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider failed: %v", e.Err)
	}
	return "LLM provider failed"
}

func (e *ErrProvider) Unwrap() error { return e.Err }

// ErrRateLimit indicates the provider returned a rate limit error (429).
// A specialization of the provider-failure case; IsProvider matches it.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// IsConfiguration reports whether err is a configuration failure.
func IsConfiguration(err error) bool {
	var ce *ErrConfiguration
	return errors.As(err, &ce)
}

// IsProvider reports whether err is a transient provider failure
// (including rate limits).
func IsProvider(err error) bool {
	var pe *ErrProvider
	var re *ErrRateLimit
	return errors.As(err, &pe) || errors.As(err, &re)
}
