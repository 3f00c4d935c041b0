package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the model returned content that does not
// conform to the requested schema, even after repair.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down, unreachable or
// not configured.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the response was truncated at MaxTokens.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// BoundsError reports a decoded list whose length is outside the range the
// prompt asked for. Stages only return it when strict checking is enabled.
type BoundsError struct {
	Field    string
	Got      int
	Min, Max int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s: got %d items, want %d-%d", e.Field, e.Got, e.Min, e.Max)
}

// CheckBounds returns a *BoundsError when n is outside [lo, hi].
func CheckBounds(field string, n, lo, hi int) error {
	if n < lo || n > hi {
		return &BoundsError{Field: field, Got: n, Min: lo, Max: hi}
	}
	return nil
}

// ErrorKind returns a short label for metrics and logs.
func ErrorKind(err error) string {
	var (
		rl      *ErrRateLimit
		inv     *ErrInvalidResponse
		unavail *ErrProviderUnavailable
		maxTok  *ErrMaxTokensExceeded
		bounds  *BoundsError
	)
	switch {
	case err == nil:
		return "none"
	case errors.As(err, &rl):
		return "rate_limit"
	case errors.As(err, &inv), errors.As(err, &bounds):
		return "invalid_response"
	case errors.As(err, &maxTok):
		return "max_tokens"
	case errors.As(err, &unavail):
		return "unavailable"
	default:
		return "other"
	}
}
