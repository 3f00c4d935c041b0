// Package poetry composes praise poems in one of the supported cultural
// modes from extracted themes.
package poetry

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nursen/oriki/internal/culture"
	"github.com/nursen/oriki/internal/llm"
)

// Purpose is the LLM purpose label for poem composition calls.
const Purpose = "poem-composition"

// Composer writes praise poems.
type Composer struct {
	provider llm.Provider
	cfg      Config
}

// New creates a Composer.
func New(provider llm.Provider, cfg Config) *Composer {
	return &Composer{provider: provider, cfg: cfg}
}

// Compose writes a poem for in. An unrecognized mode fails with an error
// wrapping culture.ErrUnknownMode before the provider is called.
func (c *Composer) Compose(ctx context.Context, in ComposeInput) (*Poem, error) {
	profile, err := culture.Lookup(in.Mode)
	if err != nil {
		return nil, fmt.Errorf("poem composition: %w", err)
	}

	ctx = llm.WithPurpose(ctx, Purpose)

	req := llm.UserRequest(
		buildSystemPrompt(profile),
		buildUserMessage(profile, in),
		Schema,
		c.cfg.MaxTokens,
		c.cfg.Temperature,
	)

	resp, err := c.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("poem composition: %w", err)
	}

	var out Poem
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse poem response: %w", err)
	}
	out.CulturalMode = string(profile.Mode)

	if c.cfg.Strict {
		if err := llm.CheckBounds("poem_lines", len(out.Lines), profile.MinLines, profile.MaxLines); err != nil {
			return nil, fmt.Errorf("poem composition: %w", err)
		}
	}

	return &out, nil
}
