// Package llm is the structured-completion capability behind every
// generation stage: send a prompt with a JSON schema, get back JSON that
// conforms to it, or a typed error.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is implemented by every text generation backend and by the
// decorators that wrap them.
type Provider interface {
	// Generate sends the request and returns the model's answer. When
	// req.Schema is set the returned Content has already been validated
	// against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request is one single-turn generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages normally holds a single user message.
	Messages []Message

	// Schema, when set, asks the backend for JSON conforming to it.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero leaves the backend default.
	Temperature float64
}

// UserRequest is shorthand for the common system + one user message shape.
func UserRequest(system, user string, schema *Schema, maxTokens int, temperature float64) Request {
	return Request{
		System:      system,
		Messages:    []Message{{Role: RoleUser, Content: user}},
		Schema:      schema,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema document.
type Schema struct {
	// Name is kebab-case, e.g. "praise-poem". It doubles as the OpenAI
	// schema name and the validation cache key, so it must be unique.
	Name        string
	Description string
	Definition  map[string]any
}

type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason string // "end" or "max_tokens"
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// finish validates content against the request schema and checks for
// truncation. Backends call it once they have extracted the raw text.
func finish(req Request, content json.RawMessage, stopReason string) (json.RawMessage, error) {
	if stopReason == "max_tokens" {
		return nil, &ErrMaxTokensExceeded{Content: content}
	}
	if req.Schema == nil {
		return content, nil
	}
	return validateResponse(req.Schema, content)
}
