// Package observability holds the Prometheus collectors and the
// OpenTelemetry tracer setup.
package observability

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nursen/oriki/internal/llm"
)

const namespace = "oriki"

// Metrics exposes Prometheus collectors for generation and HTTP activity.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	gatherer prometheus.Gatherer

	stageDuration *prometheus.HistogramVec
	stageFailures *prometheus.CounterVec

	llmRequests *prometheus.CounterVec
	llmTokens   *prometheus.CounterVec
	llmLatency  *prometheus.HistogramVec
	llmCost     *prometheus.CounterVec

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// MustNewMetrics registers the collectors with reg and panics on a
// registration error. Tests pass prometheus.NewRegistry().
func MustNewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		gatherer: reg,
		stageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "stage_duration_seconds",
			Help:      "Duration of each generation stage call.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
		}, []string{"stage", "status"}),
		stageFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "stage_failures_total",
			Help:      "Generation stage calls that failed, by reason.",
		}, []string{"stage", "reason"}),
		llmRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "llm",
			Name:      "requests_total",
			Help:      "Calls to the text generation backend.",
		}, []string{"purpose", "model", "status"}),
		llmTokens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "llm",
			Name:      "tokens_total",
			Help:      "Tokens consumed, by direction.",
		}, []string{"purpose", "model", "direction"}),
		llmLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "llm",
			Name:      "request_duration_seconds",
			Help:      "Latency of calls to the text generation backend.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"purpose"}),
		llmCost: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "llm",
			Name:      "cost_usd_total",
			Help:      "Estimated spend for models with known pricing.",
		}, []string{"model"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests served.",
		}, []string{"method", "route", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		m.stageDuration, m.stageFailures,
		m.llmRequests, m.llmTokens, m.llmLatency, m.llmCost,
		m.httpRequests, m.httpDuration,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// ObserveStage records one finished pipeline stage call.
func (m *Metrics) ObserveStage(stage string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
		m.stageFailures.WithLabelValues(stage, FailureReason(err)).Inc()
	}
	m.stageDuration.WithLabelValues(stage, status).Observe(elapsed.Seconds())
}

// RecordLLMRequest records one call to the text generation backend.
func (m *Metrics) RecordLLMRequest(purpose, model string, err error, usage llm.Usage, latency time.Duration) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = llm.ErrorKind(err)
	}
	m.llmRequests.WithLabelValues(purpose, model, status).Inc()
	m.llmLatency.WithLabelValues(purpose).Observe(latency.Seconds())

	if usage.InputTokens > 0 {
		m.llmTokens.WithLabelValues(purpose, model, "input").Add(float64(usage.InputTokens))
	}
	if usage.OutputTokens > 0 {
		m.llmTokens.WithLabelValues(purpose, model, "output").Add(float64(usage.OutputTokens))
	}
	if cost := llm.LookupCost(model); cost != nil {
		m.llmCost.WithLabelValues(model).Add(cost.Cost(usage.InputTokens, usage.OutputTokens))
	}
}

// ObserveHTTP records one served request. route is the matched route
// pattern, not the raw path.
func (m *Metrics) ObserveHTTP(method, route string, code int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// FailureReason labels a stage error for metrics.
func FailureReason(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	}
	var be *llm.BoundsError
	if errors.As(err, &be) {
		return "out_of_bounds"
	}
	return llm.ErrorKind(err)
}
