package invoker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/hupe1980/bedrockmesh/core"
)

// Func adapts an ordinary function to core.Invoker.
type Func func(ctx context.Context, in core.InvokeInput) (*core.InvokeOutput, error)

// InvokeModel implements core.Invoker.
func (f Func) InvokeModel(ctx context.Context, in core.InvokeInput) (*core.InvokeOutput, error) {
	return f(ctx, in)
}

// MockInvoker is a lightweight in‑memory Invoker useful for tests & examples.
// Responses are keyed by model id; unknown ids get an echo of the request.
type MockInvoker struct {
	mu        sync.Mutex
	responses map[string][]byte
	errs      map[string]error
	calls     []core.InvokeInput
}

// NewMockInvoker constructs an empty MockInvoker.
func NewMockInvoker() *MockInvoker {
	return &MockInvoker{
		responses: make(map[string][]byte),
		errs:      make(map[string]error),
	}
}

// AddResponse registers a canned raw response body for a model id.
func (m *MockInvoker) AddResponse(modelID string, raw []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[modelID] = raw
}

// AddError makes every invocation of modelID fail with err.
func (m *MockInvoker) AddError(modelID string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[modelID] = err
}

// Calls returns a snapshot of the recorded invocations.
func (m *MockInvoker) Calls() []core.InvokeInput {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]core.InvokeInput, len(m.calls))
	copy(out, m.calls)
	return out
}

// InvokeModel implements core.Invoker.
func (m *MockInvoker) InvokeModel(ctx context.Context, in core.InvokeInput) (*core.InvokeOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	recorded := in
	recorded.Body = append([]byte(nil), in.Body...)
	m.calls = append(m.calls, recorded)

	if err, ok := m.errs[in.ModelID]; ok {
		return nil, err
	}

	if raw, ok := m.responses[in.ModelID]; ok {
		return &core.InvokeOutput{Body: append([]byte(nil), raw...), ContentType: core.ContentTypeJSON}, nil
	}

	echo, err := json.Marshal(map[string]any{
		"model_id":   in.ModelID,
		"completion": fmt.Sprintf("Mock response to: %s", in.Body),
	})
	if err != nil {
		return nil, err
	}

	return &core.InvokeOutput{Body: echo, ContentType: core.ContentTypeJSON}, nil
}
