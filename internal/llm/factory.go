package llm

import (
	"context"
	"fmt"

	"github.com/nursen/oriki/internal/logger"
	"github.com/nursen/oriki/internal/store"
)

// Deps are the optional collaborators wired around every provider.
type Deps struct {
	EventRepo store.EventRepo
	Log       *logger.Logger
	Usage     UsageRecorder
}

// NewProvider creates the configured backend wrapped as
// caller → retry → logging → backend, so each attempt is logged.
func NewProvider(ctx context.Context, cfg Config, deps Deps) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, LoggingOptions{
		Provider:      cfg.Provider,
		EventRepo:     deps.EventRepo,
		Log:           deps.Log,
		Usage:         deps.Usage,
		CaptureBodies: cfg.CaptureBodies,
	})
	return WithRetry(logged, cfg.Retry), nil
}

// NewSpeaker returns the text-to-speech backend, or nil when no OpenAI
// key is available. A nil Speaker disables audio rendering.
func NewSpeaker(cfg Config) Speaker {
	key := cfg.SpeechKey()
	if key == "" {
		return nil
	}
	s, err := NewOpenAISpeaker(key, cfg.Speech)
	if err != nil {
		return nil
	}
	return s
}
