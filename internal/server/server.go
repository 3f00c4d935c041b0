// Package server exposes the generation pipeline over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/nursen/oriki/internal/audio"
	"github.com/nursen/oriki/internal/config"
	"github.com/nursen/oriki/internal/logger"
	"github.com/nursen/oriki/internal/observability"
	"github.com/nursen/oriki/internal/pipeline"
	"github.com/nursen/oriki/internal/quiz"
)

// Generator runs the full pipeline for one submission.
type Generator interface {
	Run(ctx context.Context, s quiz.Submission) (*pipeline.Result, error)
}

// Deps are the server's collaborators. Renderer, Metrics and Log may be nil.
type Deps struct {
	Generator Generator
	Renderer  *audio.Renderer
	Metrics   *observability.Metrics
	Log       *logger.Logger

	// ServiceName labels server spans. Empty disables otelgin.
	ServiceName string
}

type Server struct {
	cfg    config.ServerConfig
	deps   Deps
	log    *logger.Logger
	engine *gin.Engine
}

func New(cfg config.ServerConfig, deps Deps) *Server {
	s := &Server{
		cfg:  cfg,
		deps: deps,
		log:  logger.OrNop(deps.Log).With("component", "server"),
	}
	s.engine = s.newRouter()
	return s
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) newRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if s.deps.ServiceName != "" {
		r.Use(otelgin.Middleware(s.deps.ServiceName))
	}
	r.Use(attachTraceContext())
	r.Use(requestLogger(s.log))
	r.Use(httpMetrics(s.deps.Metrics))
	r.Use(corsMiddleware(s.cfg.AllowedOrigins))

	r.GET("/", s.handleRoot)
	r.GET("/health", s.handleHealth)
	if s.deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(s.deps.Metrics.Handler()))
	}

	api := r.Group("/api/v1")
	{
		api.POST("/generate", s.handleGenerate)
		api.GET("/quiz/questions", s.handleQuestions)
		api.GET("/health", s.handleAPIHealth)
		api.POST("/audio", s.handleAudio)
	}

	return r
}

// Run serves until ctx is cancelled, then drains in-flight requests for
// up to the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.engine,
		ReadTimeout:       s.cfg.ReadTimeout,
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	s.log.Info("shutting down", "timeout", timeout)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
