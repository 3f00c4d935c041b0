package poetry

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/nursen/oriki/internal/culture"
	"github.com/nursen/oriki/internal/llm"
	"github.com/nursen/oriki/internal/themes"
)

func sampleThemes() themes.ThemeData {
	return themes.ThemeData{
		Values:          []string{"integrity", "compassion", "wisdom"},
		EmotionalTone:   "hopeful and determined",
		Metaphors:       []string{"flowing river", "steady mountain"},
		IdentityMarkers: []string{"healer", "learner", "bridge-builder"},
		Aspirations:     []string{"trust my voice", "create connections"},
		Strengths:       []string{"empathy", "resilience", "patience"},
		KeyThemes:       []string{"finding voice", "service to others", "quiet strength"},
	}
}

func poemJSON(mode string, lines int) json.RawMessage {
	ls := make([]string, lines)
	for i := range ls {
		ls[i] = fmt.Sprintf("The one who carries line %d,", i+1)
	}
	b, _ := json.Marshal(map[string]any{
		"poem_lines":    ls,
		"cultural_mode": mode,
		"style_notes":   "Praise-naming with river and mountain imagery.",
	})
	return b
}

func TestCompose_AllModes(t *testing.T) {
	for _, mode := range culture.AllModes() {
		t.Run(string(mode), func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: poemJSON(string(mode), 5)})
			c := New(mock, DefaultConfig())

			poem, err := c.Compose(t.Context(), ComposeInput{
				Themes:  sampleThemes(),
				Mode:    string(mode),
				Pronoun: culture.PronounSheHer,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(poem.Lines) != 5 {
				t.Errorf("expected 5 lines, got %d", len(poem.Lines))
			}
			if poem.CulturalMode != string(mode) {
				t.Errorf("expected mode %q, got %q", mode, poem.CulturalMode)
			}

			req := mock.Calls[0]
			if req.Schema == nil || req.Schema.Name != "praise-poem" {
				t.Error("expected schema name 'praise-poem'")
			}
			profile, _ := culture.Lookup(string(mode))
			if !strings.Contains(req.System, profile.Form) {
				t.Errorf("system prompt should name the form %q", profile.Form)
			}
		})
	}
}

func TestCompose_UnknownModeNeverCallsProvider(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: poemJSON("yoruba", 4)})
	c := New(mock, DefaultConfig())

	_, err := c.Compose(t.Context(), ComposeInput{Themes: sampleThemes(), Mode: "klingon"})
	if !errors.Is(err, culture.ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
	if mock.CallCount() != 0 {
		t.Fatalf("provider should not be called, got %d calls", mock.CallCount())
	}
}

func TestCompose_QuizTagIsNotAGeneratorMode(t *testing.T) {
	mock := llm.NewMockProvider()
	_, err := New(mock, DefaultConfig()).Compose(t.Context(), ComposeInput{Themes: sampleThemes(), Mode: "yoruba_inspired"})
	if !errors.Is(err, culture.ErrUnknownMode) {
		t.Fatalf("untranslated quiz tag should be rejected, got %v", err)
	}
}

func TestCompose_ModeIsCaseInsensitive(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: poemJSON("turkish", 4)})
	poem, err := New(mock, DefaultConfig()).Compose(t.Context(), ComposeInput{Themes: sampleThemes(), Mode: "Turkish"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if poem.CulturalMode != "turkish" {
		t.Fatalf("expected normalized mode, got %q", poem.CulturalMode)
	}
}

func TestCompose_PromptContract(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: poemJSON("yoruba", 4)})
	c := New(mock, DefaultConfig())

	_, err := c.Compose(t.Context(), ComposeInput{
		Themes:  sampleThemes(),
		Mode:    "yoruba",
		Pronoun: culture.PronounTheyThem,
		Letter:  "  I am learning to trust my voice.  ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{
		"Length: 3-7 lines",
		"narrative arc of 3-5 beats",
		"Develops 2-3 metaphors",
		"Varies line openings",
		"Do NOT include:",
		"Òrìṣà deities",
		"diacritical marks",
		"fabricated Yoruba proverbs",
		"Values: integrity, compassion, wisdom",
		"In Their Own Words:\nI am learning to trust my voice.\n",
		"Use they/them consistently",
		"lion (courage)",
		"Remember: This is INSPIRED by Yoruba tradition",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("user message missing %q", want)
		}
	}
}

func TestCompose_NameOnlyUsesDisplayName(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: poemJSON("secular", 4)})
	_, err := New(mock, DefaultConfig()).Compose(t.Context(), ComposeInput{
		Themes:      sampleThemes(),
		Mode:        "secular",
		Pronoun:     culture.PronounNameOnly,
		DisplayName: "Adaeze",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "the name 'Adaeze'") {
		t.Error("expected the display name in the pronoun instruction")
	}
	if strings.Contains(msg, "In Their Own Words") {
		t.Error("letter section should be omitted when no letter is given")
	}
}

func TestCompose_LineBounds(t *testing.T) {
	tests := []struct {
		name    string
		lines   int
		strict  bool
		wantErr bool
	}{
		{"advisory too long", 9, false, false},
		{"advisory too short", 2, false, false},
		{"strict in range", 7, true, false},
		{"strict too long", 8, true, true},
		{"strict too short", 2, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: poemJSON("biblical", tt.lines)})
			cfg := DefaultConfig()
			cfg.Strict = tt.strict

			poem, err := New(mock, cfg).Compose(t.Context(), ComposeInput{Themes: sampleThemes(), Mode: "biblical"})
			if tt.wantErr {
				var be *llm.BoundsError
				if !errors.As(err, &be) || be.Field != "poem_lines" {
					t.Fatalf("expected poem_lines BoundsError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(poem.Lines) != tt.lines {
				t.Fatalf("expected %d lines passed through, got %d", tt.lines, len(poem.Lines))
			}
		})
	}
}

func TestCompose_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	_, err := New(mock, DefaultConfig()).Compose(t.Context(), ComposeInput{Themes: sampleThemes(), Mode: "secular"})
	var rl *llm.ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %v", err)
	}
	if errors.Is(err, culture.ErrUnknownMode) {
		t.Fatal("provider failure must not look like an unknown mode")
	}
}

func TestPoemText(t *testing.T) {
	p := Poem{Lines: []string{"one", "two"}}
	if p.Text() != "one\ntwo" {
		t.Fatalf("unexpected text %q", p.Text())
	}
}
