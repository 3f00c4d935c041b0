// Package ui renders pipeline results for the terminal.
package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nursen/oriki/internal/pipeline"
	"github.com/nursen/oriki/internal/themes"
	"github.com/nursen/oriki/internal/ui/theme"
)

// RenderResult formats a result as a styled card: the poem, then the
// affirmations, then the extracted themes when showThemes is set.
func RenderResult(res *pipeline.Result, showThemes bool) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Your Oriki"))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%s · %s", res.CulturalMode, res.Poem.StyleNotes)))
	b.WriteString("\n\n")

	verse := make([]string, len(res.Poem.Lines))
	for i, line := range res.Poem.Lines {
		verse[i] = theme.Verse.Render(line)
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, verse...))
	b.WriteString("\n")

	b.WriteString(theme.Section.Render("Daily Affirmations"))
	b.WriteString("\n")
	for _, a := range res.Affirmations.Affirmations {
		fmt.Fprintf(&b, "%s %s\n", theme.Bullet.Render("•"), theme.Body.Render(a))
	}
	if len(res.Affirmations.FocusAreas) > 0 {
		b.WriteString(theme.Hint.Render("Focus: " + strings.Join(res.Affirmations.FocusAreas, ", ")))
		b.WriteString("\n")
	}

	if showThemes {
		b.WriteString(theme.Section.Render("Themes"))
		b.WriteString("\n")
		b.WriteString(renderThemes(res.Themes))
	}

	return theme.Card.Render(strings.TrimRight(b.String(), "\n"))
}

func renderThemes(t themes.ThemeData) string {
	rows := []struct {
		label  string
		values []string
	}{
		{"Values", t.Values},
		{"Strengths", t.Strengths},
		{"Metaphors", t.Metaphors},
		{"Identity", t.IdentityMarkers},
		{"Aspirations", t.Aspirations},
		{"Key themes", t.KeyThemes},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", theme.Label.Render(fmt.Sprintf("%-12s", "Tone")), t.EmotionalTone)
	for _, r := range rows {
		if len(r.values) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s %s\n", theme.Label.Render(fmt.Sprintf("%-12s", r.label)), strings.Join(r.values, ", "))
	}
	return b.String()
}

// RenderError formats a failure line.
func RenderError(err error) string {
	return theme.ErrorText.Render("error: ") + err.Error()
}
