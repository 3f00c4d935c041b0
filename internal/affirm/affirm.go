// Package affirm generates first-person daily affirmations from extracted
// themes.
package affirm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nursen/oriki/internal/llm"
	"github.com/nursen/oriki/internal/themes"
)

// Purpose is the LLM purpose label for affirmation calls.
const Purpose = "affirmation-generation"

// Accepted list sizes under Config.Strict. The prompt asks for the
// narrower 3-5 and 2-3.
const (
	minAffirmations = 3
	maxAffirmations = 10
	minFocusAreas   = 2
	maxFocusAreas   = 5
)

// Affirmations is the stage output.
type Affirmations struct {
	Affirmations []string `json:"affirmations" yaml:"affirmations"`
	FocusAreas   []string `json:"focus_areas" yaml:"focus_areas"`
}

// Config holds affirmation generation settings.
type Config struct {
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
	Strict      bool    `mapstructure:"strict"`
}

// DefaultConfig returns sensible defaults for affirmation generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   768,
		Temperature: 0.6,
	}
}

// Schema defines the JSON schema for affirmations.
var Schema = &llm.Schema{
	Name:        "affirmations",
	Description: "Psychologically grounded daily affirmations with the areas they address",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"affirmations": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "3-5 affirmation statements in first person, present tense",
			},
			"focus_areas": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-3 psychological areas these affirmations address",
			},
		},
		"required":             []any{"affirmations", "focus_areas"},
		"additionalProperties": false,
	},
}

const systemPrompt = `You are a compassionate psychologist specializing in CBT and positive psychology. You write realistic, psychologically grounded daily affirmations, never empty platitudes.`

func buildUserMessage(t themes.ThemeData) string {
	var b strings.Builder

	b.WriteString("Their Themes and Values:\n")
	fmt.Fprintf(&b, "- Core Values: %s\n", strings.Join(t.Values, ", "))
	fmt.Fprintf(&b, "- Emotional Tone: %s\n", t.EmotionalTone)
	fmt.Fprintf(&b, "- Metaphors: %s\n", strings.Join(t.Metaphors, ", "))
	fmt.Fprintf(&b, "- Identity Markers: %s\n", strings.Join(t.IdentityMarkers, ", "))
	fmt.Fprintf(&b, "- Aspirations: %s\n", strings.Join(t.Aspirations, ", "))
	fmt.Fprintf(&b, "- Strengths: %s\n", strings.Join(t.Strengths, ", "))
	fmt.Fprintf(&b, "- Key Themes: %s\n", strings.Join(t.KeyThemes, ", "))

	b.WriteString(`
Principles:
1. GROUNDED IN REALITY: Avoid toxic positivity. Acknowledge challenges while affirming strength and growth.
2. PROCESS-ORIENTED: Focus on actions and choices, not outcomes. "I choose to approach challenges with curiosity", not "I never fail".
3. SELF-COMPASSION: Include kindness toward oneself, especially during difficulties.
4. GROWTH MINDSET: Emphasize learning and progress over fixed states of perfection.
5. VALUES-ANCHORED: Connect each affirmation to their values, strengths, or aspirations.
6. PRESENT TENSE: Make each affirmation current and actionable.
7. FIRST PERSON: Every affirmation starts with "I" (I am, I choose, I embrace, I honor, I trust, I allow).

Instructions:
Generate 3-5 affirmations specific to these themes. Vary the sentence structures.
Also name 2-3 focus areas the affirmations address (e.g. "self-compassion", "resilience", "authentic expression").`)

	return b.String()
}

// Generator produces affirmations.
type Generator struct {
	provider llm.Provider
	cfg      Config
}

// New creates a Generator.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

// Generate writes affirmations for t. It depends only on the themes, never
// on the poem.
func (g *Generator) Generate(ctx context.Context, t themes.ThemeData) (*Affirmations, error) {
	ctx = llm.WithPurpose(ctx, Purpose)

	req := llm.UserRequest(systemPrompt, buildUserMessage(t), Schema, g.cfg.MaxTokens, g.cfg.Temperature)

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("affirmation generation: %w", err)
	}

	var out Affirmations
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse affirmation response: %w", err)
	}

	if g.cfg.Strict {
		if err := out.checkBounds(); err != nil {
			return nil, fmt.Errorf("affirmation generation: %w", err)
		}
	}

	return &out, nil
}

func (a Affirmations) checkBounds() error {
	if err := llm.CheckBounds("affirmations", len(a.Affirmations), minAffirmations, maxAffirmations); err != nil {
		return err
	}
	return llm.CheckBounds("focus_areas", len(a.FocusAreas), minFocusAreas, maxFocusAreas)
}
