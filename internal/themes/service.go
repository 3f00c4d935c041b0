// Package themes implements the first generation stage: distilling a quiz
// submission into the ThemeData the poem and affirmation stages build on.
package themes

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nursen/oriki/internal/llm"
	"github.com/nursen/oriki/internal/quiz"
)

// Purpose is the LLM purpose label for theme extraction calls.
const Purpose = "theme-extraction"

// Extractor turns quiz submissions into ThemeData.
type Extractor struct {
	provider llm.Provider
	cfg      Config
}

// New creates an Extractor.
func New(provider llm.Provider, cfg Config) *Extractor {
	return &Extractor{provider: provider, cfg: cfg}
}

// Extract analyzes a validated submission. The submission is not
// re-validated here.
func (e *Extractor) Extract(ctx context.Context, s quiz.Submission) (*ThemeData, error) {
	ctx = llm.WithPurpose(ctx, Purpose)

	req := llm.UserRequest(systemPrompt, buildUserMessage(s), Schema, e.cfg.MaxTokens, e.cfg.Temperature)

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("theme extraction: %w", err)
	}

	var out ThemeData
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse theme response: %w", err)
	}

	if e.cfg.Strict {
		if err := out.CheckBounds(); err != nil {
			return nil, fmt.Errorf("theme extraction: %w", err)
		}
	}

	return &out, nil
}
