package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider is a deterministic Provider for tests. It returns canned
// responses in FIFO order, records every request, and runs canned content
// through the same schema validation as the real backends.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	bySchema  map[string][]MockResponse
	Calls     []Request
}

func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// Generate returns the next canned response, or ErrProviderUnavailable
// once the queues are empty.
func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, req)
	resp, ok := m.next(req)
	m.mu.Unlock()
	if !ok {
		return nil, &ErrProviderUnavailable{}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if resp.Err != nil {
		return nil, resp.Err
	}

	content, err := finish(req, resp.Content, "end")
	if err != nil {
		return nil, err
	}
	return &Response{
		Content:    content,
		Usage:      resp.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

func (m *MockProvider) ModelID() string {
	return "mock"
}

// next pops the response queued for the request's schema, falling back to
// the shared FIFO queue. Callers hold m.mu.
func (m *MockProvider) next(req Request) (MockResponse, bool) {
	if req.Schema != nil {
		if q := m.bySchema[req.Schema.Name]; len(q) > 0 {
			m.bySchema[req.Schema.Name] = q[1:]
			return q[0], true
		}
	}
	if len(m.responses) == 0 {
		return MockResponse{}, false
	}
	resp := m.responses[0]
	m.responses = m.responses[1:]
	return resp, true
}

// AddResponseFor queues a response that is only returned for requests
// using the named schema. Useful when stages run concurrently and the
// call order is not fixed.
func (m *MockProvider) AddResponseFor(schemaName string, resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.bySchema == nil {
		m.bySchema = make(map[string][]MockResponse)
	}
	m.bySchema[schemaName] = append(m.bySchema[schemaName], resp)
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// CallsFor returns the recorded requests whose schema has the given name.
func (m *MockProvider) CallsFor(schemaName string) []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Request
	for _, c := range m.Calls {
		if c.Schema != nil && c.Schema.Name == schemaName {
			out = append(out, c)
		}
	}
	return out
}
