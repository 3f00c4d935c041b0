package quiz

import (
	"errors"
	"fmt"
)

// ErrQuestionNotFound is returned by GetQuestion for an unknown question ID.
var ErrQuestionNotFound = errors.New("question not found")

// Question IDs in presentation order.
const (
	QuestionTopValues    = "top_values"
	QuestionCulturalMode = "cultural_mode"
	QuestionPronouns     = "pronouns"
	QuestionStrength     = "greatest_strength"
	QuestionAspiration   = "aspirational_trait"
	QuestionMetaphor     = "metaphor"
	QuestionEnergy       = "energy_style"
	QuestionLifeFocus    = "life_focus"
	QuestionLetter       = "letter"
)

// Option is a single selectable answer.
type Option struct {
	Value string // internal identifier, e.g. "integrity"
	Label string // user-facing text, e.g. "Integrity"
}

// Question describes one quiz question and its selection rules.
type Question struct {
	ID          string
	Text        string
	Options     []Option
	MultiSelect bool

	// MaxSelections caps a multi-select answer. Zero for single-select
	// and free-text questions.
	MaxSelections int
}

// IsFreeText reports whether the question takes a written answer instead
// of a selection.
func (q Question) IsFreeText() bool {
	return len(q.Options) == 0
}

// HasOption reports whether value is one of the question's option values.
func (q Question) HasOption(value string) bool {
	for _, o := range q.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// Values returns the option values in display order.
func (q Question) Values() []string {
	out := make([]string, len(q.Options))
	for i, o := range q.Options {
		out[i] = o.Value
	}
	return out
}

// byID indexes the seed table. Built once in init and never mutated.
var byID map[string]*Question

func init() {
	byID = make(map[string]*Question, len(questions))
	for i := range questions {
		q := &questions[i]
		if _, dup := byID[q.ID]; dup {
			panic(fmt.Sprintf("quiz: duplicate question ID %q", q.ID))
		}
		byID[q.ID] = q
	}
}

// GetQuestion returns the question with the given ID.
func GetQuestion(id string) (Question, error) {
	q, ok := byID[id]
	if !ok {
		return Question{}, fmt.Errorf("%w: %q", ErrQuestionNotFound, id)
	}
	return clone(*q), nil
}

// AllQuestions returns every question in presentation order. The returned
// slice is a copy; callers may not mutate the seed table through it.
func AllQuestions() []Question {
	out := make([]Question, len(questions))
	for i, q := range questions {
		out[i] = clone(q)
	}
	return out
}

func clone(q Question) Question {
	q.Options = append([]Option(nil), q.Options...)
	return q
}
