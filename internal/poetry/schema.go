package poetry

import (
	"github.com/nursen/oriki/internal/culture"
	"github.com/nursen/oriki/internal/llm"
)

func modeEnum() []any {
	modes := culture.AllModes()
	out := make([]any, len(modes))
	for i, m := range modes {
		out[i] = string(m)
	}
	return out
}

// Schema defines the JSON schema for a praise poem.
var Schema = &llm.Schema{
	Name:        "praise-poem",
	Description: "A short praise poem in one cultural mode",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"poem_lines": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "3-7 lines of praise poetry, each line as a separate string",
			},
			"cultural_mode": map[string]any{
				"type":        "string",
				"enum":        modeEnum(),
				"description": "The cultural mode used",
			},
			"style_notes": map[string]any{
				"type":        "string",
				"description": "Brief description of the style, tone, and approach used (1-2 sentences)",
			},
		},
		"required":             []any{"poem_lines", "cultural_mode", "style_notes"},
		"additionalProperties": false,
	},
}
