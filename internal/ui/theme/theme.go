// Package theme holds the terminal palette and styles used by the CLI.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, warm earth tones
var (
	Primary   = lipgloss.Color("#D97706") // Amber
	Secondary = lipgloss.Color("#0F766E") // Deep Teal
	Accent    = lipgloss.Color("#B91C1C") // Kola Red
	Success   = lipgloss.Color("#15803D") // Leaf
	Error     = lipgloss.Color("#E11D48") // Rose
	Text      = lipgloss.Color("#FAFAF9") // Stone White
	TextDim   = lipgloss.Color("#A8A29E") // Stone
	Border    = lipgloss.Color("#57534E") // Dark Stone
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Section = lipgloss.NewStyle().
		Bold(true).
		Foreground(Secondary).
		MarginTop(1)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Label = lipgloss.NewStyle().
		Foreground(TextDim)
)

// Blocks
var (
	Verse = lipgloss.NewStyle().
		Foreground(Text).
		Italic(true).
		PaddingLeft(2)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Bullet = lipgloss.NewStyle().
		Foreground(Accent)

	ErrorText = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)
