package themes

import "github.com/nursen/oriki/internal/llm"

func stringList(description string) map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"description": description,
	}
}

// Schema defines the JSON schema for theme extraction.
var Schema = &llm.Schema{
	Name:        "theme-data",
	Description: "Themes, values and insights extracted from a quiz submission",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"values": stringList("Core values and principles identified from the responses (3-7 items)"),
			"emotional_tone": map[string]any{
				"type":        "string",
				"description": "Primary emotional tone or quality, 1-3 words (e.g. hopeful, determined)",
			},
			"metaphors":        stringList("Nature-based or universal metaphors suggested by the responses (2-5 items)"),
			"identity_markers": stringList("Key identity descriptors and self-concepts (3-5 items)"),
			"aspirations":      stringList("Future goals, dreams, and aspirations (2-5 items)"),
			"strengths":        stringList("Recognized strengths and positive qualities (3-5 items)"),
			"key_themes":       stringList("Overarching themes that synthesize the story and values (3-5 items)"),
		},
		"required": []any{
			"values", "emotional_tone", "metaphors", "identity_markers",
			"aspirations", "strengths", "key_themes",
		},
		"additionalProperties": false,
	},
}
