package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/nursen/oriki/internal/affirm"
	"github.com/nursen/oriki/internal/pipeline"
	"github.com/nursen/oriki/internal/poetry"
	"github.com/nursen/oriki/internal/themes"
)

func sampleResult() *pipeline.Result {
	return &pipeline.Result{
		Poem: poetry.Poem{
			Lines:        []string{"The one who walks with purpose,", "She whose voice rises like the river,"},
			CulturalMode: "yoruba",
			StyleNotes:   "Praise-naming",
		},
		Affirmations: affirm.Affirmations{
			Affirmations: []string{"I trust my voice", "I honor my integrity"},
			FocusAreas:   []string{"self-trust"},
		},
		Themes: themes.ThemeData{
			Values:        []string{"integrity", "wisdom"},
			EmotionalTone: "hopeful",
			Strengths:     []string{"empathy"},
		},
		CulturalMode: "yoruba_inspired",
	}
}

func TestRenderResult(t *testing.T) {
	out := RenderResult(sampleResult(), false)

	for _, want := range []string{
		"Your Oriki",
		"yoruba_inspired",
		"The one who walks with purpose,",
		"She whose voice rises like the river,",
		"Daily Affirmations",
		"I trust my voice",
		"Focus: self-trust",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "Themes") {
		t.Error("themes rendered without showThemes")
	}
}

func TestRenderResult_Themes(t *testing.T) {
	out := RenderResult(sampleResult(), true)

	for _, want := range []string{"Themes", "hopeful", "integrity, wisdom", "empathy"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "Metaphors") {
		t.Error("empty metaphor row rendered")
	}
}

func TestRenderError(t *testing.T) {
	out := RenderError(errors.New("boom"))
	if !strings.Contains(out, "boom") {
		t.Errorf("RenderError = %q", out)
	}
}
