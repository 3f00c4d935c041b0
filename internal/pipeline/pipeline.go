// Package pipeline runs the three generation stages for one quiz
// submission and assembles the response.
//
// The run moves Start → ThemesExtracted → PoemComposed →
// AffirmationsGenerated → Complete. Any stage may fail the run; no partial
// result is ever returned.
package pipeline

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/nursen/oriki/internal/affirm"
	"github.com/nursen/oriki/internal/culture"
	"github.com/nursen/oriki/internal/llm"
	"github.com/nursen/oriki/internal/logger"
	"github.com/nursen/oriki/internal/poetry"
	"github.com/nursen/oriki/internal/quiz"
	"github.com/nursen/oriki/internal/themes"
)

// Stage names a step of the run.
type Stage string

const (
	StageValidate     Stage = "validation"
	StageThemes       Stage = "theme_extraction"
	StagePoem         Stage = "poem_composition"
	StageAffirmations Stage = "affirmation_generation"
)

// State is the progress of a run.
type State string

const (
	StateStart                 State = "start"
	StateThemesExtracted       State = "themes_extracted"
	StatePoemComposed          State = "poem_composed"
	StateAffirmationsGenerated State = "affirmations_generated"
	StateComplete              State = "complete"
	StateFailed                State = "failed"
)

const (
	traceScope = "github.com/nursen/oriki/internal/pipeline"

	attrStage  = "oriki.stage"
	attrMode   = "oriki.cultural_mode"
	attrStatus = "oriki.status"
)

// StageObserver is told about every finished stage call. err is nil on
// success.
type StageObserver interface {
	ObserveStage(stage string, err error, elapsed time.Duration)
}

// Deps are the optional collaborators of a Pipeline.
type Deps struct {
	Log      *logger.Logger
	Observer StageObserver
}

// Result is the terminal artifact of a successful run.
type Result struct {
	Poem         poetry.Poem         `json:"poem" yaml:"poem"`
	Affirmations affirm.Affirmations `json:"affirmations" yaml:"affirmations"`
	Themes       themes.ThemeData    `json:"themes" yaml:"themes"`

	// CulturalMode is the tag from the submission, before translation.
	CulturalMode string `json:"cultural_mode" yaml:"cultural_mode"`
}

// Pipeline orchestrates theme extraction, poem composition and affirmation
// generation. It is safe for concurrent use.
type Pipeline struct {
	extractor *themes.Extractor
	composer  *poetry.Composer
	generator *affirm.Generator
	cfg       Config
	log       *logger.Logger
	observer  StageObserver
}

// New builds a pipeline whose stages all use provider.
func New(provider llm.Provider, cfg Config, deps Deps) *Pipeline {
	if cfg.Limits == (quiz.Limits{}) {
		cfg.Limits = quiz.DefaultLimits()
	}
	return &Pipeline{
		extractor: themes.New(provider, cfg.Themes),
		composer:  poetry.New(provider, cfg.Poem),
		generator: affirm.New(provider, cfg.Affirmations),
		cfg:       cfg,
		log:       logger.OrNop(deps.Log),
		observer:  deps.Observer,
	}
}

// Run validates s and generates the full response.
func (p *Pipeline) Run(ctx context.Context, s quiz.Submission) (*Result, error) {
	valid, err := p.cfg.Limits.Validate(s)
	if err != nil {
		p.log.Info("submission rejected", "error", err)
		return nil, &StageError{Stage: StageValidate, Kind: KindInvalidInput, Err: err}
	}
	return p.RunValidated(ctx, valid)
}

// RunValidated generates the response for a submission that has already
// passed quiz validation. The cultural mode is still checked.
func (p *Pipeline) RunValidated(ctx context.Context, s quiz.Submission) (res *Result, err error) {
	ctx, span := otel.Tracer(traceScope).Start(ctx, "oriki.pipeline.run",
		trace.WithAttributes(attribute.String(attrMode, s.CulturalMode)))
	defer span.End()

	start := time.Now()
	log := p.log
	if id := llm.RequestIDFrom(ctx); id != "" {
		log = log.With("request_id", id)
	}

	state := StateStart
	defer func() {
		markSpan(span, err)
		if err != nil {
			log.Warn("generation failed", "state", state, "next", StateFailed, "error", err)
			return
		}
		log.Info("generation complete",
			"cultural_mode", res.CulturalMode,
			"poem_lines", len(res.Poem.Lines),
			"affirmations", len(res.Affirmations.Affirmations),
			"duration_ms", time.Since(start).Milliseconds())
	}()

	var td *themes.ThemeData
	err = p.runStage(ctx, StageThemes, func(ctx context.Context) error {
		var err error
		td, err = p.extractor.Extract(ctx, s)
		return err
	})
	if err != nil {
		return nil, stageError(StageThemes, err)
	}
	state = StateThemesExtracted
	log.Debug("pipeline state", "state", state)

	mode := culture.ToInternal(s.CulturalMode)
	if _, err := culture.Lookup(mode); err != nil {
		return nil, stageError(StagePoem, err)
	}

	in := poetry.ComposeInput{
		Themes:      *td,
		Mode:        mode,
		Pronoun:     culture.Pronoun(s.Pronouns),
		DisplayName: s.DisplayName,
		Letter:      s.FreeWriteLetter,
	}

	var (
		poem *poetry.Poem
		aff  *affirm.Affirmations
	)
	composeFn := func(ctx context.Context) error {
		err := p.runStage(ctx, StagePoem, func(ctx context.Context) error {
			var err error
			poem, err = p.composer.Compose(ctx, in)
			return err
		})
		if err != nil {
			return stageError(StagePoem, err)
		}
		return nil
	}
	affirmFn := func(ctx context.Context) error {
		err := p.runStage(ctx, StageAffirmations, func(ctx context.Context) error {
			var err error
			aff, err = p.generator.Generate(ctx, *td)
			return err
		})
		if err != nil {
			return stageError(StageAffirmations, err)
		}
		return nil
	}

	if p.cfg.Concurrent {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { return composeFn(gctx) })
		g.Go(func() error { return affirmFn(gctx) })
		if err = g.Wait(); err != nil {
			return nil, err
		}
		state = StateAffirmationsGenerated
	} else {
		if err = composeFn(ctx); err != nil {
			return nil, err
		}
		state = StatePoemComposed
		log.Debug("pipeline state", "state", state)

		if err = affirmFn(ctx); err != nil {
			return nil, err
		}
		state = StateAffirmationsGenerated
	}
	log.Debug("pipeline state", "state", state)

	res = &Result{
		Poem:         *poem,
		Affirmations: *aff,
		Themes:       *td,
		CulturalMode: s.CulturalMode,
	}
	state = StateComplete
	return res, nil
}

// runStage runs one stage call under its own span and timeout, and reports
// it to the observer.
func (p *Pipeline) runStage(ctx context.Context, stage Stage, fn func(context.Context) error) error {
	ctx, span := otel.Tracer(traceScope).Start(ctx, "oriki.pipeline."+string(stage),
		trace.WithAttributes(attribute.String(attrStage, string(stage))))
	defer span.End()

	if p.cfg.StageTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.StageTimeout)
		defer cancel()
	}

	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)

	markSpan(span, err)
	if p.observer != nil {
		p.observer.ObserveStage(string(stage), err, elapsed)
	}
	return err
}

func stageError(stage Stage, err error) *StageError {
	var se *StageError
	if errors.As(err, &se) {
		return se
	}
	kind := KindStageFailure
	if errors.Is(err, culture.ErrUnknownMode) {
		kind = KindUnknownMode
	}
	return &StageError{Stage: stage, Kind: kind, Err: err}
}

func markSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String(attrStatus, "error"))
		return
	}
	span.SetStatus(codes.Ok, "")
	span.SetAttributes(attribute.String(attrStatus, "success"))
}
