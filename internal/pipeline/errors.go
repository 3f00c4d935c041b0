package pipeline

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure.
type Kind string

const (
	KindInvalidInput Kind = "invalid_input"
	KindUnknownMode  Kind = "unknown_mode"
	KindStageFailure Kind = "stage_failure"
)

// Sentinels matched by errors.Is against any *StageError of that kind.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnknownMode  = errors.New("unknown cultural mode")
	ErrStageFailed  = errors.New("generation stage failed")
)

// StageError records which stage stopped the run and why.
type StageError struct {
	Stage Stage
	Kind  Kind
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

func (e *StageError) Is(target error) bool {
	switch target {
	case ErrInvalidInput:
		return e.Kind == KindInvalidInput
	case ErrUnknownMode:
		return e.Kind == KindUnknownMode
	case ErrStageFailed:
		return e.Kind == KindStageFailure
	}
	return false
}

// IsClientFault reports whether err was caused by the request rather than
// by a generation backend.
func IsClientFault(err error) bool {
	var se *StageError
	if !errors.As(err, &se) {
		return false
	}
	return se.Kind == KindInvalidInput || se.Kind == KindUnknownMode
}
