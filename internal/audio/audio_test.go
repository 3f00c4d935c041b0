package audio

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nursen/oriki/internal/llm"
)

func TestEstimateDuration(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"Hello world this is a test", 2.4},
		{"", 0},
		{"one", 0.4},
		{"  spaced   out\nwords  ", 1.2},
		{"a b c d e f g h i j", 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EstimateDuration(tt.text), "text %q", tt.text)
	}
}

func TestRender(t *testing.T) {
	speaker := &llm.MockSpeaker{Audio: []byte("ID3audio")}
	r := NewRenderer(speaker, "")

	a, err := r.Render(context.Background(), "  You are strong  ", "")
	require.NoError(t, err)

	assert.Equal(t, "nova", a.Voice)
	assert.Equal(t, []byte("ID3audio"), a.MP3)
	assert.Equal(t, 1.2, a.DurationSeconds)
	assert.Equal(t, []string{"You are strong"}, speaker.Texts)

	decoded, err := base64.StdEncoding.DecodeString(a.Base64())
	require.NoError(t, err)
	assert.Equal(t, a.MP3, decoded)
}

func TestRender_Rejects(t *testing.T) {
	speaker := &llm.MockSpeaker{Audio: []byte("x")}
	r := NewRenderer(speaker, "onyx")

	_, err := r.Render(context.Background(), "   ", "nova")
	assert.ErrorIs(t, err, ErrEmptyText)

	_, err = r.Render(context.Background(), "hello", "robot")
	assert.ErrorIs(t, err, ErrBadVoice)

	assert.Empty(t, speaker.Texts, "speaker must not be called for rejected input")
}

func TestRender_Unavailable(t *testing.T) {
	r := NewRenderer(nil, "")
	assert.False(t, r.Available())

	_, err := r.Render(context.Background(), "hello", "nova")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestRender_SpeakerError(t *testing.T) {
	cause := &llm.ErrProviderUnavailable{Err: errors.New("tts down")}
	r := NewRenderer(&llm.MockSpeaker{Err: cause}, "")

	_, err := r.Render(context.Background(), "hello", "shimmer")
	var unavail *llm.ErrProviderUnavailable
	require.ErrorAs(t, err, &unavail)
}

func TestScript(t *testing.T) {
	got := Script([]string{"line one", "line two"}, []string{"I am here"})
	assert.Equal(t, "line one\nline two\n\nI am here", got)
	assert.Equal(t, "I am here", Script(nil, []string{"I am here"}))
	assert.Empty(t, Script(nil, nil))
}
