package quiz

// Submission is one user's set of quiz answers. Field names on the wire
// match the web frontend's payload.
type Submission struct {
	TopValues         []string `json:"top_values"`
	GreatestStrength  string   `json:"greatest_strength"`
	AspirationalTrait string   `json:"aspirational_trait"`
	MetaphorArchetype string   `json:"metaphor_archetype"`
	EnergyStyle       string   `json:"energy_style"`
	LifeFocus         string   `json:"life_focus"`
	CulturalMode      string   `json:"cultural_mode"`
	Pronouns          string   `json:"pronouns"`
	FreeWriteLetter   string   `json:"free_write_letter"`

	// DisplayName is only used when Pronouns is "name_only".
	DisplayName string `json:"display_name,omitempty"`
}

// field pairs a submission field name with the question that governs it.
type field struct {
	name       string
	questionID string
}

// selectionFields lists the single-select fields in presentation order.
var selectionFields = []field{
	{"cultural_mode", QuestionCulturalMode},
	{"pronouns", QuestionPronouns},
	{"greatest_strength", QuestionStrength},
	{"aspirational_trait", QuestionAspiration},
	{"metaphor_archetype", QuestionMetaphor},
	{"energy_style", QuestionEnergy},
	{"life_focus", QuestionLifeFocus},
}

func (s Submission) selection(name string) string {
	switch name {
	case "cultural_mode":
		return s.CulturalMode
	case "pronouns":
		return s.Pronouns
	case "greatest_strength":
		return s.GreatestStrength
	case "aspirational_trait":
		return s.AspirationalTrait
	case "metaphor_archetype":
		return s.MetaphorArchetype
	case "energy_style":
		return s.EnergyStyle
	case "life_focus":
		return s.LifeFocus
	}
	return ""
}
