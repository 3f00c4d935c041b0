package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nursen/oriki/internal/logger"
	"github.com/nursen/oriki/internal/store"
)

// UsageRecorder receives one observation per LLM call. The metrics
// registry implements it.
type UsageRecorder interface {
	RecordLLMRequest(purpose, model string, err error, usage Usage, latency time.Duration)
}

// LoggingProvider is a decorator that records every call to the event
// log, the usage recorder and the logger. Any of the three may be nil.
type LoggingProvider struct {
	inner         Provider
	provider      string
	eventRepo     store.EventRepo
	log           *logger.Logger
	usage         UsageRecorder
	captureBodies bool
}

// LoggingOptions configures WithLogging.
type LoggingOptions struct {
	// Provider is the backend name stored with each event, e.g. "openai".
	Provider      string
	EventRepo     store.EventRepo
	Log           *logger.Logger
	Usage         UsageRecorder
	CaptureBodies bool
}

// WithLogging wraps a Provider with event logging.
func WithLogging(p Provider, opts LoggingOptions) Provider {
	name := opts.Provider
	if name == "" {
		name = p.ModelID()
	}
	return &LoggingProvider{
		inner:         p,
		provider:      name,
		eventRepo:     opts.EventRepo,
		log:           logger.OrNop(opts.Log),
		usage:         opts.Usage,
		captureBodies: opts.CaptureBodies,
	}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)
	latency := time.Since(start)

	data := store.LLMRequestEventData{
		RequestID: RequestIDFrom(ctx),
		Provider:  l.provider,
		Model:     l.inner.ModelID(),
		Purpose:   purpose,
		LatencyMs: latency.Milliseconds(),
		Success:   err == nil,
	}
	var usage Usage
	if resp != nil {
		usage = resp.Usage
		data.InputTokens = usage.InputTokens
		data.OutputTokens = usage.OutputTokens
		if resp.Model != "" {
			data.Model = resp.Model
		}
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}
	if l.captureBodies {
		data.RequestBody = serializeRequest(req)
		if resp != nil {
			data.ResponseBody = string(resp.Content)
		}
	}

	if l.usage != nil {
		l.usage.RecordLLMRequest(purpose, data.Model, err, usage, latency)
	}

	kv := []any{
		"purpose", purpose,
		"model", data.Model,
		"latency_ms", data.LatencyMs,
		"input_tokens", data.InputTokens,
		"output_tokens", data.OutputTokens,
	}
	if data.RequestID != "" {
		kv = append(kv, "request_id", data.RequestID)
	}
	if err != nil {
		l.log.Warn("llm request failed", append(kv, "error_kind", ErrorKind(err), "error", err)...)
	} else {
		l.log.Debug("llm request", kv...)
	}

	// A broken event log must not fail the generation.
	if l.eventRepo != nil {
		if logErr := l.eventRepo.AppendLLMRequest(context.WithoutCancel(ctx), data); logErr != nil {
			l.log.Warn("failed to record llm request event", "error", logErr)
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}

	return b.String()
}
