package themes

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/nursen/oriki/internal/llm"
	"github.com/nursen/oriki/internal/quiz"
)

const sampleThemes = `{
	"values": ["integrity", "compassion", "wisdom"],
	"emotional_tone": "hopeful and determined",
	"metaphors": ["flowing river", "steady mountain"],
	"identity_markers": ["healer", "learner", "bridge-builder"],
	"aspirations": ["trust my voice", "create connections"],
	"strengths": ["empathy", "resilience", "patience"],
	"key_themes": ["finding voice", "service to others", "quiet strength"]
}`

func sampleSubmission() quiz.Submission {
	return quiz.Submission{
		TopValues:         []string{"integrity", "compassion", "wisdom"},
		GreatestStrength:  "empathy",
		AspirationalTrait: "confidence",
		MetaphorArchetype: "river",
		EnergyStyle:       "healer",
		LifeFocus:         "spirituality",
		CulturalMode:      "yoruba_inspired",
		Pronouns:          "she_her",
		FreeWriteLetter:   "Dear future self, I am learning to trust my voice.",
	}
}

func TestExtract(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(sampleThemes)})
	ex := New(mock, DefaultConfig())

	got, err := ex.Extract(t.Context(), sampleSubmission())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Values) != 3 || got.Values[0] != "integrity" {
		t.Errorf("unexpected values: %v", got.Values)
	}
	if got.EmotionalTone != "hopeful and determined" {
		t.Errorf("unexpected tone: %q", got.EmotionalTone)
	}
	if len(got.KeyThemes) != 3 {
		t.Errorf("expected 3 key themes, got %d", len(got.KeyThemes))
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 LLM call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "theme-data" {
		t.Error("expected schema name 'theme-data'")
	}
	if req.Temperature != 0.7 {
		t.Errorf("expected temperature 0.7, got %v", req.Temperature)
	}
	if req.System == "" {
		t.Error("expected a system prompt")
	}
}

func TestExtract_PromptCarriesSubmission(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(sampleThemes)})
	ex := New(mock, DefaultConfig())

	if _, err := ex.Extract(t.Context(), sampleSubmission()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{
		"Top Values: integrity, compassion, wisdom",
		"Greatest Strength: empathy",
		"Metaphor/Archetype: river",
		"Cultural Mode: yoruba_inspired",
		"Dear future self, I am learning to trust my voice.",
		"VALUES: 3-7",
		"KEY_THEMES: 3-5",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("user message missing %q", want)
		}
	}
}

func TestExtract_OutOfBoundsPassesThrough(t *testing.T) {
	long := `{
		"values": ["a", "b", "c", "d", "e", "f", "g", "h", "i"],
		"emotional_tone": "calm",
		"metaphors": ["river"],
		"identity_markers": ["x"],
		"aspirations": ["y"],
		"strengths": ["z"],
		"key_themes": ["w"]
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(long)})

	got, err := New(mock, DefaultConfig()).Extract(t.Context(), sampleSubmission())
	if err != nil {
		t.Fatalf("bounds are advisory by default, got error: %v", err)
	}
	if len(got.Values) != 9 {
		t.Fatalf("expected values passed through unchanged, got %d", len(got.Values))
	}
}

func TestExtract_StrictRejectsOutOfBounds(t *testing.T) {
	tooFew := `{
		"values": ["a", "b", "c"],
		"emotional_tone": "calm",
		"metaphors": ["river"],
		"identity_markers": ["x", "y", "z"],
		"aspirations": ["p", "q"],
		"strengths": ["s", "t", "u"],
		"key_themes": ["k", "l", "m"]
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tooFew)})
	cfg := DefaultConfig()
	cfg.Strict = true

	_, err := New(mock, cfg).Extract(t.Context(), sampleSubmission())
	var be *llm.BoundsError
	if !errors.As(err, &be) {
		t.Fatalf("expected BoundsError, got %v", err)
	}
	if be.Field != "metaphors" || be.Got != 1 || be.Min != 2 {
		t.Fatalf("unexpected bounds error: %+v", be)
	}
}

func TestExtract_SchemaViolation(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"values": ["a"]}`)})

	_, err := New(mock, DefaultConfig()).Extract(t.Context(), sampleSubmission())
	var inv *llm.ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestExtract_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})

	_, err := New(mock, DefaultConfig()).Extract(t.Context(), sampleSubmission())
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "theme extraction:") {
		t.Errorf("expected stage prefix, got %q", err.Error())
	}
}

func TestExtract_SetsPurpose(t *testing.T) {
	var purpose string
	p := purposeSpy{inner: llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(sampleThemes)}), seen: &purpose}

	if _, err := New(p, DefaultConfig()).Extract(t.Context(), sampleSubmission()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if purpose != Purpose {
		t.Fatalf("expected purpose %q, got %q", Purpose, purpose)
	}
}

// purposeSpy records the purpose label of the last call.
type purposeSpy struct {
	inner llm.Provider
	seen  *string
}

func (p purposeSpy) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	*p.seen = llm.PurposeFrom(ctx)
	return p.inner.Generate(ctx, req)
}

func (p purposeSpy) ModelID() string { return p.inner.ModelID() }
