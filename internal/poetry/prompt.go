package poetry

import (
	"fmt"
	"strings"

	"github.com/nursen/oriki/internal/culture"
	"github.com/nursen/oriki/internal/themes"
)

// Structural rules shared by every mode.
const (
	minBeats     = 3
	maxBeats     = 5
	minMetaphors = 2
	maxMetaphors = 3
)

func buildSystemPrompt(p culture.Profile) string {
	return fmt.Sprintf("You are composing %s. You write short, specific, celebratory poems grounded in the person's own themes.", p.Form)
}

func buildUserMessage(p culture.Profile, in ComposeInput) string {
	var b strings.Builder
	pronoun := in.Pronoun.Instruction(in.DisplayName)

	b.WriteString("Style Guidelines:\n")
	for _, s := range p.Style {
		fmt.Fprintf(&b, "- %s\n", s)
	}
	fmt.Fprintf(&b, "- Length: %d-%d lines\n", p.MinLines, p.MaxLines)

	fmt.Fprintf(&b, "\nTone: %s\n", strings.Join(p.Tone, "; "))

	b.WriteString("\nOpening Patterns:\n")
	for _, o := range p.Openings {
		fmt.Fprintf(&b, "- %s\n", o)
	}

	b.WriteString("\nMetaphors To Draw From:\n")
	for _, m := range p.Metaphors {
		fmt.Fprintf(&b, "- %s (%s)\n", m.Image, m.Meaning)
	}

	if len(p.Forbidden) > 0 {
		b.WriteString("\nDo NOT include:\n")
		for _, f := range p.Forbidden {
			fmt.Fprintf(&b, "- %s\n", f)
		}
	}

	writeThemes(&b, in.Themes)

	if letter := strings.TrimSpace(in.Letter); letter != "" {
		b.WriteString("\nIn Their Own Words:\n")
		b.WriteString(letter)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nPronoun Usage:\nUse %s consistently throughout the poem.\n", pronoun)

	b.WriteString("\nInstructions:\nCreate a poem that:\n")
	n := 1
	for _, r := range p.Requirements {
		fmt.Fprintf(&b, "%d. %s\n", n, r)
		n++
	}
	for _, r := range []string{
		fmt.Sprintf("Moves through a narrative arc of %d-%d beats: who they are, what they carry, what they face, who they are becoming", minBeats, maxBeats),
		fmt.Sprintf("Develops %d-%d metaphors fully instead of listing many images", minMetaphors, maxMetaphors),
		"Varies line openings; do not begin every line with the same words",
		fmt.Sprintf("Is %d-%d lines long", p.MinLines, p.MaxLines),
		fmt.Sprintf("Uses %s consistently", pronoun),
	} {
		fmt.Fprintf(&b, "%d. %s\n", n, r)
		n++
	}

	fmt.Fprintf(&b, "\nSet cultural_mode to %q.\n", p.Mode)

	if p.Reminder != "" {
		fmt.Fprintf(&b, "\nRemember: %s\n", p.Reminder)
	}

	return b.String()
}

func writeThemes(b *strings.Builder, t themes.ThemeData) {
	b.WriteString("\nTheir Themes (use these as your source material):\n")
	fmt.Fprintf(b, "Values: %s\n", strings.Join(t.Values, ", "))
	fmt.Fprintf(b, "Emotional Tone: %s\n", t.EmotionalTone)
	fmt.Fprintf(b, "Metaphors: %s\n", strings.Join(t.Metaphors, ", "))
	fmt.Fprintf(b, "Identity Markers: %s\n", strings.Join(t.IdentityMarkers, ", "))
	fmt.Fprintf(b, "Aspirations: %s\n", strings.Join(t.Aspirations, ", "))
	fmt.Fprintf(b, "Strengths: %s\n", strings.Join(t.Strengths, ", "))
	fmt.Fprintf(b, "Key Themes: %s\n", strings.Join(t.KeyThemes, ", "))
}
