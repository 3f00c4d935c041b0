package culture

// Metaphor is an image a mode draws on, with what it stands for.
type Metaphor struct {
	Image   string
	Meaning string
}

// Profile carries everything the poem prompt needs for one mode.
type Profile struct {
	Mode Mode

	// Form names the poetic form, e.g. "Turkish-style blessing poetry (Alkış)".
	Form string

	Style     []string
	Tone      []string
	Openings  []string
	Metaphors []Metaphor
	Forbidden []string

	// Requirements are the numbered asks at the end of the prompt.
	Requirements []string

	// Reminder is an optional closing line.
	Reminder string

	MinLines int
	MaxLines int
}

// MetaphorImages returns just the image names.
func (p Profile) MetaphorImages() []string {
	out := make([]string, len(p.Metaphors))
	for i, m := range p.Metaphors {
		out[i] = m.Image
	}
	return out
}

var profiles = map[Mode]Profile{
	ModeYoruba: {
		Mode: ModeYoruba,
		Form: "Yoruba-inspired praise poetry (Oríkì-inspired)",
		Style: []string{
			`Praise-naming structure: "The one who...", "She whose...", "He who walks..."`,
			"Anaphoric repetition: repeat opening phrases across lines for rhythm",
			"Incremental intensification: each line builds power",
			"Universal nature metaphors that anyone can understand",
		},
		Tone: []string{"unapologetically celebratory", "affirming", "protective"},
		Openings: []string{
			"The one who...",
			"She whose...",
			"He who walks...",
		},
		Metaphors: []Metaphor{
			{"lion", "courage"},
			{"river", "persistence"},
			{"mountain", "steadiness"},
			{"fire", "passion"},
			{"eagle", "vision"},
			{"sun", "radiance"},
			{"tree", "rootedness"},
			{"wind", "freedom"},
		},
		Forbidden: []string{
			"invented Yoruba names, clan names, or place-based lineages",
			"references to Òrìṣà deities (Ṣàngó, Òṣun, Ògún, Ọya, etc.)",
			"fabricated Yoruba proverbs or ancestral sayings",
			"Yoruba diacritical marks of any kind (ọ, ẹ, ṣ, etc.)",
			"spiritual associations, even with the approved metaphors",
			"metaphors outside the approved nature set",
		},
		Requirements: []string{
			`Uses "The one who..." or "She/He whose..." structure`,
			"Repeats opening phrases for rhythm (anaphora)",
			"Uses universal nature metaphors only",
			"Celebrates the user's actual values and strengths",
			"Builds intensity with each line",
		},
		Reminder: "This is INSPIRED by Yoruba tradition, not claiming to be authentic Oríkì. " +
			"Celebrate the aesthetic structure while respecting cultural boundaries.",
		MinLines: 3,
		MaxLines: 7,
	},
	ModeSecular: {
		Mode: ModeSecular,
		Form: "secular praise poetry with modern, psychological depth",
		Style: []string{
			"Modern, grounded language",
			"Focus on universal human experiences and emotions",
			"Contemporary imagery and accessible metaphors",
			"Clear, accessible language",
		},
		Tone: []string{"warm and affirming", "psychologically insightful", "celebratory but realistic", "empowering without being mystical"},
		Openings: []string{
			"You who...",
			"Here is someone who...",
			"In every...",
		},
		Metaphors: []Metaphor{
			{"bridge", "connection"},
			{"compass", "direction"},
			{"lighthouse", "steadiness"},
			{"garden", "patient growth"},
			{"open road", "possibility"},
		},
		Forbidden: []string{
			"religious or spiritual references",
			"mystical or supernatural framing",
		},
		Requirements: []string{
			"Uses modern, accessible language",
			"Celebrates real human qualities and achievements",
			"Grounds metaphors in everyday experience",
			"Affirms without spiritual or religious framing",
			"Feels contemporary and psychologically resonant",
		},
		MinLines: 3,
		MaxLines: 7,
	},
	ModeTurkish: {
		Mode: ModeTurkish,
		Form: "Turkish-style blessing poetry (Alkış)",
		Style: []string{
			`Alkış (blessing) structure: "May you..." or "Let your..."`,
			"Folkloric nature metaphors",
			"Themes of protection, prosperity, and good fortune",
			"Emphasis on blessings for the future",
		},
		Tone: []string{"protective and nurturing", "warm and familial", "hopeful and prosperous", "grounded in nature and community"},
		Openings: []string{
			"May you...",
			"Let your...",
			"May your path...",
		},
		Metaphors: []Metaphor{
			{"mountains", "strength, endurance"},
			{"rivers", "flow, life, abundance"},
			{"eagles", "freedom, vision"},
			{"stars", "guidance, hope"},
			{"gardens", "growth, beauty, cultivation"},
			{"light", "wisdom, clarity"},
		},
		Forbidden: []string{
			"curses or misfortune, even as contrast",
			"invented Turkish proverbs presented as traditional",
		},
		Requirements: []string{
			`Uses blessing structure: "May you..." or "Let your..."`,
			"Incorporates Turkish folk nature metaphors",
			"Emphasizes protection and prosperity",
			"Celebrates the user's path forward",
		},
		MinLines: 3,
		MaxLines: 7,
	},
	ModeBiblical: {
		Mode: ModeBiblical,
		Form: "Biblical-style praise poetry",
		Style: []string{
			"Scriptural cadence and rhythm (like Psalms or Beatitudes)",
			"Themes of covenant, purpose, and calling",
			"Affirmation of identity and purpose",
			"Parallel structure and repetition",
		},
		Tone: []string{"reverent and dignified", "affirming and uplifting", "prophetic and purposeful", "timeless and grounded"},
		Openings: []string{
			"Blessed are you who...",
			"You are called to...",
			"Like [biblical metaphor], you...",
		},
		Metaphors: []Metaphor{
			{"light", "guidance, truth"},
			{"salt", "preservation, influence"},
			{"trees planted by water", "stability, growth"},
			{"shepherd", "care, guidance"},
			{"cornerstone", "foundation, strength"},
			{"living water", "renewal, life"},
		},
		Forbidden: []string{
			"direct scripture quotations presented as the user's own words",
			"invented verses or chapter references",
		},
		Requirements: []string{
			"Uses scriptural cadence and blessing language",
			"Incorporates biblical metaphors naturally",
			"Emphasizes purpose, calling, and covenant",
			"Affirms the user's identity and mission",
		},
		MinLines: 3,
		MaxLines: 7,
	},
}
