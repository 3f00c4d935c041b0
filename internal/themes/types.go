package themes

import "github.com/nursen/oriki/internal/llm"

// ThemeData is what the extractor distills from one submission. The poem
// and affirmation stages both read it; nothing modifies it after Extract
// returns.
type ThemeData struct {
	Values          []string `json:"values" yaml:"values"`
	EmotionalTone   string   `json:"emotional_tone" yaml:"emotional_tone"`
	Metaphors       []string `json:"metaphors" yaml:"metaphors"`
	IdentityMarkers []string `json:"identity_markers" yaml:"identity_markers"`
	Aspirations     []string `json:"aspirations" yaml:"aspirations"`
	Strengths       []string `json:"strengths" yaml:"strengths"`
	KeyThemes       []string `json:"key_themes" yaml:"key_themes"`
}

// Requested list sizes. The prompt and schema descriptions ask for these;
// they are only enforced when Config.Strict is set.
var bounds = []struct {
	field    string
	lo, hi   int
	selector func(ThemeData) []string
}{
	{"values", 3, 7, func(t ThemeData) []string { return t.Values }},
	{"metaphors", 2, 5, func(t ThemeData) []string { return t.Metaphors }},
	{"identity_markers", 3, 5, func(t ThemeData) []string { return t.IdentityMarkers }},
	{"aspirations", 2, 5, func(t ThemeData) []string { return t.Aspirations }},
	{"strengths", 3, 5, func(t ThemeData) []string { return t.Strengths }},
	{"key_themes", 3, 5, func(t ThemeData) []string { return t.KeyThemes }},
}

// CheckBounds returns a *llm.BoundsError for the first list outside its
// requested size.
func (t ThemeData) CheckBounds() error {
	for _, b := range bounds {
		if err := llm.CheckBounds(b.field, len(b.selector(t)), b.lo, b.hi); err != nil {
			return err
		}
	}
	return nil
}
