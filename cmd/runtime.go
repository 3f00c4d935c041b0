package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/nursen/oriki/internal/audio"
	"github.com/nursen/oriki/internal/config"
	"github.com/nursen/oriki/internal/llm"
	"github.com/nursen/oriki/internal/logger"
	"github.com/nursen/oriki/internal/observability"
	"github.com/nursen/oriki/internal/pipeline"
	"github.com/nursen/oriki/internal/store"
)

// runtime is the wired service graph shared by serve and generate.
type runtime struct {
	cfg      config.Config
	log      *logger.Logger
	store    *store.Store
	metrics  *observability.Metrics
	pipeline *pipeline.Pipeline
	renderer *audio.Renderer

	shutdownTracing observability.ShutdownFunc
}

// newRuntime validates cfg and builds every collaborator. The caller
// must Close the returned runtime.
func newRuntime(ctx context.Context, cfg config.Config) (*runtime, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration:\n%w", err)
	}

	log, err := logger.New(cfg.Log.Mode, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	rt := &runtime{cfg: cfg, log: log}

	if cfg.Telemetry.ServiceVersion == "" {
		cfg.Telemetry.ServiceVersion = version
	}

	rt.shutdownTracing, err = observability.InitTracing(ctx, log, cfg.Telemetry)
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	rt.metrics = observability.MustNewMetrics(reg)

	var events store.EventRepo
	if cfg.Store.Enabled {
		dbPath, err := resolveDBPath(cfg)
		if err != nil {
			rt.Close()
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
		rt.store, err = store.Open(dbPath)
		if err != nil {
			rt.Close()
			return nil, fmt.Errorf("open database: %w", err)
		}
		events = rt.store.EventRepo()
		log.Debug("event log opened", "path", dbPath)
	}

	provider, err := llm.NewProvider(ctx, cfg.LLM, llm.Deps{
		EventRepo: events,
		Log:       log,
		Usage:     rt.metrics,
	})
	if err != nil {
		rt.Close()
		return nil, err
	}
	log.Info("llm provider ready", "provider", cfg.LLM.Provider, "model", provider.ModelID())

	rt.pipeline = pipeline.New(provider, cfg.Pipeline, pipeline.Deps{
		Log:      log,
		Observer: rt.metrics,
	})

	speaker := llm.NewSpeaker(cfg.LLM)
	if speaker == nil {
		log.Warn("no OpenAI key for speech; audio rendering disabled")
	} else {
		rt.renderer = audio.NewRenderer(speaker, cfg.LLM.Speech.Voice)
	}

	return rt, nil
}

// Close releases the store and flushes spans and logs.
func (rt *runtime) Close() error {
	var errs []error
	if rt.shutdownTracing != nil {
		errs = append(errs, rt.shutdownTracing(context.Background()))
	}
	if rt.store != nil {
		errs = append(errs, rt.store.Close())
	}
	rt.log.Sync()
	return errors.Join(errs...)
}
