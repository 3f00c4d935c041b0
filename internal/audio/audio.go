// Package audio renders poems and affirmations to speech.
package audio

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/nursen/oriki/internal/llm"
)

// DefaultVoice is used when a request names no voice.
const DefaultVoice = "nova"

// wordsPerSecond is an average speaking pace of 150 words per minute.
const wordsPerSecond = 2.5

// Voices lists the accepted voice names.
var Voices = []string{"alloy", "echo", "fable", "onyx", "nova", "shimmer"}

var (
	// ErrUnavailable means no speech backend is configured.
	ErrUnavailable = errors.New("audio rendering is not configured")
	ErrEmptyText   = errors.New("text cannot be empty")
	ErrBadVoice    = errors.New("unsupported voice")
)

// Audio is one rendered clip.
type Audio struct {
	MP3             []byte
	Voice           string
	DurationSeconds float64
}

// Base64 returns the clip encoded for JSON transport.
func (a *Audio) Base64() string {
	return base64.StdEncoding.EncodeToString(a.MP3)
}

// Renderer turns text into speech through a Speaker.
type Renderer struct {
	speaker      llm.Speaker
	defaultVoice string
}

// NewRenderer returns a renderer. A nil speaker yields a renderer whose
// Render always fails with ErrUnavailable.
func NewRenderer(speaker llm.Speaker, defaultVoice string) *Renderer {
	if defaultVoice == "" {
		defaultVoice = DefaultVoice
	}
	return &Renderer{speaker: speaker, defaultVoice: defaultVoice}
}

// Available reports whether a speech backend is configured.
func (r *Renderer) Available() bool {
	return r != nil && r.speaker != nil
}

// Render speaks text in voice. An empty voice selects the default.
func (r *Renderer) Render(ctx context.Context, text, voice string) (*Audio, error) {
	if !r.Available() {
		return nil, ErrUnavailable
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	if voice == "" {
		voice = r.defaultVoice
	}
	if !slices.Contains(Voices, voice) {
		return nil, fmt.Errorf("%w %q: must be one of %s", ErrBadVoice, voice, strings.Join(Voices, ", "))
	}

	data, err := r.speaker.Speak(llm.WithPurpose(ctx, "audio-render"), text, voice)
	if err != nil {
		return nil, fmt.Errorf("speech synthesis: %w", err)
	}

	return &Audio{
		MP3:             data,
		Voice:           voice,
		DurationSeconds: EstimateDuration(text),
	}, nil
}

// EstimateDuration guesses the spoken length of text in seconds, rounded
// to one decimal.
func EstimateDuration(text string) float64 {
	words := len(strings.Fields(text))
	return math.Round(float64(words)/wordsPerSecond*10) / 10
}

// Script joins poem lines and affirmations into one text for reading
// aloud, with a blank line between the two parts.
func Script(poemLines, affirmations []string) string {
	parts := make([]string, 0, 2)
	if len(poemLines) > 0 {
		parts = append(parts, strings.Join(poemLines, "\n"))
	}
	if len(affirmations) > 0 {
		parts = append(parts, strings.Join(affirmations, "\n"))
	}
	return strings.Join(parts, "\n\n")
}
