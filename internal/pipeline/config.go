package pipeline

import (
	"time"

	"github.com/nursen/oriki/internal/affirm"
	"github.com/nursen/oriki/internal/poetry"
	"github.com/nursen/oriki/internal/quiz"
	"github.com/nursen/oriki/internal/themes"
)

// Config holds pipeline settings.
type Config struct {
	// Concurrent runs poem composition and affirmation generation in
	// parallel once themes are extracted.
	Concurrent bool `mapstructure:"concurrent"`

	// StageTimeout bounds each stage call. Zero disables the bound.
	StageTimeout time.Duration `mapstructure:"stage_timeout"`

	Themes       themes.Config `mapstructure:"themes"`
	Poem         poetry.Config `mapstructure:"poem"`
	Affirmations affirm.Config `mapstructure:"affirmations"`

	Limits quiz.Limits `mapstructure:"limits"`
}

// DefaultConfig returns sequential execution with a 60s stage timeout.
func DefaultConfig() Config {
	return Config{
		StageTimeout: 60 * time.Second,
		Themes:       themes.DefaultConfig(),
		Poem:         poetry.DefaultConfig(),
		Affirmations: affirm.DefaultConfig(),
		Limits:       quiz.DefaultLimits(),
	}
}
