package llm

import (
	"context"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

// Speaker turns text into encoded audio.
type Speaker interface {
	// Speak returns MP3 bytes for text read in the given voice.
	Speak(ctx context.Context, text, voice string) ([]byte, error)
}

// OpenAISpeaker implements Speaker with the OpenAI speech endpoint.
type OpenAISpeaker struct {
	client *openai.Client
	model  string
}

// NewOpenAISpeaker returns a speaker, or an error when no key is configured.
func NewOpenAISpeaker(apiKey string, cfg SpeechConfig) (*OpenAISpeaker, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key is required for speech")
	}
	model := cfg.Model
	if model == "" {
		model = string(openai.TTSModel1)
	}
	return &OpenAISpeaker{
		client: newOpenAIClient(apiKey, cfg.BaseURL),
		model:  model,
	}, nil
}

func (s *OpenAISpeaker) Speak(ctx context.Context, text, voice string) ([]byte, error) {
	resp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(s.model),
		Input:          text,
		Voice:          openai.SpeechVoice(voice),
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return nil, mapOpenAIError(err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, &ErrProviderUnavailable{Err: fmt.Errorf("read speech audio: %w", err)}
	}
	return audio, nil
}

// MockSpeaker returns fixed audio and records the texts it was asked to read.
type MockSpeaker struct {
	Audio []byte
	Err   error
	Texts []string
}

func (m *MockSpeaker) Speak(_ context.Context, text, _ string) ([]byte, error) {
	m.Texts = append(m.Texts, text)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Audio, nil
}
