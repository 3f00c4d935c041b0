package culture

import "fmt"

// Pronoun is the pronoun selection from the quiz.
type Pronoun string

const (
	PronounHeHim    Pronoun = "he_him"
	PronounSheHer   Pronoun = "she_her"
	PronounTheyThem Pronoun = "they_them"
	PronounNameOnly Pronoun = "name_only"
)

var pronounPhrases = map[Pronoun]string{
	PronounHeHim:    "he/him",
	PronounSheHer:   "she/her",
	PronounTheyThem: "they/them",
	PronounNameOnly: "no pronouns (use 'The one who...' style instead)",
}

// Instruction renders the pronoun guidance placed in the poem prompt.
// displayName is only consulted for PronounNameOnly. Unrecognized
// selections fall back to they/them.
func (p Pronoun) Instruction(displayName string) string {
	if p == PronounNameOnly && displayName != "" {
		return fmt.Sprintf("the name '%s' (no pronouns, just use the name)", displayName)
	}
	if s, ok := pronounPhrases[p]; ok {
		return s
	}
	return pronounPhrases[PronounTheyThem]
}
