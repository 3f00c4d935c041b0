package quiz

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidSubmission matches every validation failure via errors.Is.
var ErrInvalidSubmission = errors.New("invalid submission")

// ValidationError names the offending field and, for categorical fields,
// the set of allowed values.
type ValidationError struct {
	Field   string
	Message string
	Allowed []string
}

func (e *ValidationError) Error() string {
	if len(e.Allowed) > 0 {
		return fmt.Sprintf("%s: %s (must be one of: %s)", e.Field, e.Message, strings.Join(e.Allowed, ", "))
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidSubmission
}

// ValidationErrors collects every field failure of one submission.
type ValidationErrors []*ValidationError

func (es ValidationErrors) Error() string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

func (es ValidationErrors) Unwrap() []error {
	out := make([]error, len(es))
	for i, e := range es {
		out[i] = e
	}
	return out
}

// Limits holds the free-text bounds applied during validation.
type Limits struct {
	MaxLetterRunes      int `mapstructure:"max_letter_runes"`
	MaxDisplayNameRunes int `mapstructure:"max_display_name_runes"`
}

// DefaultLimits returns the limits the web frontend is built against.
func DefaultLimits() Limits {
	return Limits{
		MaxLetterRunes:      2000,
		MaxDisplayNameRunes: 80,
	}
}

// ValidateSubmission checks s against the quiz table using DefaultLimits.
func ValidateSubmission(s Submission) (Submission, error) {
	return DefaultLimits().Validate(s)
}

// Validate checks every field of s against the quiz table. On success it
// returns the normalized submission: the letter and display name are
// trimmed of surrounding whitespace. On failure the error is a
// ValidationErrors listing every offending field.
func (l Limits) Validate(s Submission) (Submission, error) {
	var errs ValidationErrors

	if e := checkMulti(QuestionTopValues, "top_values", s.TopValues); e != nil {
		errs = append(errs, e)
	}

	for _, f := range selectionFields {
		if e := checkSingle(f.questionID, f.name, s.selection(f.name)); e != nil {
			errs = append(errs, e)
		}
	}

	letter, e := checkText("free_write_letter", s.FreeWriteLetter, l.MaxLetterRunes, true)
	if e != nil {
		errs = append(errs, e)
	}
	s.FreeWriteLetter = letter

	name, e := checkText("display_name", s.DisplayName, l.MaxDisplayNameRunes, false)
	if e != nil {
		errs = append(errs, e)
	}
	s.DisplayName = name

	if len(errs) > 0 {
		return Submission{}, errs
	}

	s.TopValues = append([]string(nil), s.TopValues...)
	return s, nil
}

// ValidateAnswer reports whether answer is acceptable for the question.
// Free-text answers must be strings; single-select answers must be one of
// the option values; multi-select answers must be a []string (or a []any
// of strings, as produced by encoding/json) within the selection limit.
func ValidateAnswer(questionID string, answer any) bool {
	q, err := GetQuestion(questionID)
	if err != nil {
		return false
	}

	switch {
	case q.IsFreeText():
		s, ok := answer.(string)
		if !ok {
			return false
		}
		_, verr := checkText(questionID, s, DefaultLimits().MaxLetterRunes, true)
		return verr == nil

	case q.MultiSelect:
		values, ok := stringSlice(answer)
		if !ok {
			return false
		}
		return checkMulti(questionID, questionID, values) == nil

	default:
		s, ok := answer.(string)
		if !ok {
			return false
		}
		return checkSingle(questionID, questionID, s) == nil
	}
}

func checkSingle(questionID, name, value string) *ValidationError {
	q := byID[questionID]
	if !q.HasOption(value) {
		msg := fmt.Sprintf("invalid value %q", value)
		if value == "" {
			msg = "value is required"
		}
		return &ValidationError{Field: name, Message: msg, Allowed: q.Values()}
	}
	return nil
}

func checkMulti(questionID, name string, values []string) *ValidationError {
	q := byID[questionID]
	if len(values) == 0 {
		return &ValidationError{Field: name, Message: "at least one selection is required", Allowed: q.Values()}
	}
	if q.MaxSelections > 0 && len(values) > q.MaxSelections {
		return &ValidationError{
			Field:   name,
			Message: fmt.Sprintf("at most %d selections allowed, got %d", q.MaxSelections, len(values)),
		}
	}

	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if !q.HasOption(v) {
			return &ValidationError{Field: name, Message: fmt.Sprintf("invalid value %q", v), Allowed: q.Values()}
		}
		if seen[v] {
			return &ValidationError{Field: name, Message: fmt.Sprintf("duplicate selection %q", v)}
		}
		seen[v] = true
	}
	return nil
}

// checkText trims value and enforces the rune limit. Required text must be
// non-empty after trimming.
func checkText(name, value string, maxRunes int, required bool) (string, *ValidationError) {
	trimmed := strings.TrimSpace(value)
	if required && trimmed == "" {
		return "", &ValidationError{Field: name, Message: "cannot be empty"}
	}
	if maxRunes > 0 && utf8.RuneCountInString(trimmed) > maxRunes {
		return "", &ValidationError{
			Field:   name,
			Message: fmt.Sprintf("must be at most %d characters", maxRunes),
		}
	}
	return trimmed, nil
}

func stringSlice(v any) ([]string, bool) {
	switch vs := v.(type) {
	case []string:
		return vs, true
	case []any:
		out := make([]string, len(vs))
		for i, e := range vs {
			s, ok := e.(string)
			if !ok {
				return nil, false
			}
			out[i] = s
		}
		return out, true
	}
	return nil, false
}
