package culture

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned by Lookup for a mode outside the four
// supported generator modes.
var ErrUnknownMode = errors.New("unknown cultural mode")

// QuizMode is the cultural-mode tag a user picks in the quiz.
type QuizMode string

const (
	QuizYorubaInspired QuizMode = "yoruba_inspired"
	QuizSecular        QuizMode = "secular"
	QuizTurkish        QuizMode = "turkish"
	QuizBiblical       QuizMode = "biblical"
)

// Mode is the cultural-mode tag the poem composer understands.
type Mode string

const (
	ModeYoruba   Mode = "yoruba"
	ModeSecular  Mode = "secular"
	ModeTurkish  Mode = "turkish"
	ModeBiblical Mode = "biblical"
)

// quizToInternal holds every quiz tag whose generator name differs.
var quizToInternal = map[QuizMode]Mode{
	QuizYorubaInspired: ModeYoruba,
}

// ToInternal maps a quiz-facing mode tag to the generator vocabulary.
// Tags without a mapping pass through unchanged; Lookup rejects them later
// if they are not generator modes either.
func ToInternal(mode string) string {
	if m, ok := quizToInternal[QuizMode(mode)]; ok {
		return string(m)
	}
	return mode
}

// AllModes returns the generator modes in quiz order.
func AllModes() []Mode {
	return []Mode{ModeYoruba, ModeSecular, ModeTurkish, ModeBiblical}
}

// Lookup returns the template profile for a generator mode. Matching is
// case-insensitive.
func Lookup(mode string) (Profile, error) {
	p, ok := profiles[Mode(strings.ToLower(strings.TrimSpace(mode)))]
	if !ok {
		names := make([]string, 0, len(profiles))
		for _, m := range AllModes() {
			names = append(names, string(m))
		}
		return Profile{}, fmt.Errorf("%w %q: must be one of %s", ErrUnknownMode, mode, strings.Join(names, ", "))
	}
	return p, nil
}
