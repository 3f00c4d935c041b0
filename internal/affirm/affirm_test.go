package affirm

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/nursen/oriki/internal/llm"
	"github.com/nursen/oriki/internal/themes"
)

const sampleAffirmations = `{
	"affirmations": [
		"I am learning to trust my voice, one conversation at a time",
		"I choose compassion for myself when growth feels slow",
		"I honor my integrity in the small choices I make today"
	],
	"focus_areas": ["self-trust", "self-compassion"]
}`

func sampleThemes() themes.ThemeData {
	return themes.ThemeData{
		Values:          []string{"integrity", "compassion", "wisdom"},
		EmotionalTone:   "hopeful",
		Metaphors:       []string{"flowing river", "steady mountain"},
		IdentityMarkers: []string{"healer", "learner", "bridge-builder"},
		Aspirations:     []string{"trust my voice", "create connections"},
		Strengths:       []string{"empathy", "resilience", "patience"},
		KeyThemes:       []string{"finding voice", "service to others", "quiet strength"},
	}
}

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(sampleAffirmations)})
	g := New(mock, DefaultConfig())

	got, err := g.Generate(t.Context(), sampleThemes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Affirmations) != 3 {
		t.Errorf("expected 3 affirmations, got %d", len(got.Affirmations))
	}
	for _, a := range got.Affirmations {
		if !strings.HasPrefix(a, "I ") {
			t.Errorf("expected first-person affirmation, got %q", a)
		}
	}
	if len(got.FocusAreas) != 2 {
		t.Errorf("expected 2 focus areas, got %d", len(got.FocusAreas))
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "affirmations" {
		t.Error("expected schema name 'affirmations'")
	}
	if req.Temperature != 0.6 {
		t.Errorf("expected temperature 0.6, got %v", req.Temperature)
	}
}

func TestGenerate_PromptPrinciples(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(sampleAffirmations)})
	if _, err := New(mock, DefaultConfig()).Generate(t.Context(), sampleThemes()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{
		"GROUNDED IN REALITY",
		"PROCESS-ORIENTED",
		"SELF-COMPASSION",
		"GROWTH MINDSET",
		"VALUES-ANCHORED",
		"PRESENT TENSE",
		"FIRST PERSON",
		"Core Values: integrity, compassion, wisdom",
		"Generate 3-5 affirmations",
		"2-3 focus areas",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("user message missing %q", want)
		}
	}
}

func TestGenerate_Bounds(t *testing.T) {
	nine := `{"affirmations": ["I a","I b","I c","I d","I e","I f","I g","I h","I i"], "focus_areas": ["x","y"]}`
	eleven := `{"affirmations": ["I a","I b","I c","I d","I e","I f","I g","I h","I i","I j","I k"], "focus_areas": ["x","y"]}`
	oneFocus := `{"affirmations": ["I a","I b","I c"], "focus_areas": ["x"]}`

	tests := []struct {
		name      string
		content   string
		strict    bool
		wantField string
	}{
		{"advisory passes long list", eleven, false, ""},
		{"strict accepts up to ten", nine, true, ""},
		{"strict rejects eleven", eleven, true, "affirmations"},
		{"strict rejects single focus area", oneFocus, true, "focus_areas"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tt.content)})
			cfg := DefaultConfig()
			cfg.Strict = tt.strict

			_, err := New(mock, cfg).Generate(t.Context(), sampleThemes())
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var be *llm.BoundsError
			if !errors.As(err, &be) || be.Field != tt.wantField {
				t.Fatalf("expected BoundsError on %s, got %v", tt.wantField, err)
			}
		})
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	_, err := New(mock, DefaultConfig()).Generate(t.Context(), sampleThemes())
	if err == nil || !strings.HasPrefix(err.Error(), "affirmation generation:") {
		t.Fatalf("expected wrapped provider error, got %v", err)
	}
}
