package poetry

import (
	"strings"

	"github.com/nursen/oriki/internal/culture"
	"github.com/nursen/oriki/internal/themes"
)

// ComposeInput is everything the composer needs for one poem.
type ComposeInput struct {
	Themes themes.ThemeData

	// Mode is a generator mode tag (yoruba, secular, turkish, biblical).
	// Quiz tags must be translated with culture.ToInternal first.
	Mode string

	Pronoun culture.Pronoun

	// DisplayName is only used with culture.PronounNameOnly.
	DisplayName string

	// Letter is the user's free-write letter. Optional grounding.
	Letter string
}

// Poem is a composed praise poem.
type Poem struct {
	Lines        []string `json:"poem_lines" yaml:"poem_lines"`
	CulturalMode string   `json:"cultural_mode" yaml:"cultural_mode"`
	StyleNotes   string   `json:"style_notes" yaml:"style_notes"`
}

// Text returns the poem with one line per row.
func (p Poem) Text() string {
	return strings.Join(p.Lines, "\n")
}
