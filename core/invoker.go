package core

import "context"

// ContentTypeJSON is sent as both accept and content type on every invocation.
const ContentTypeJSON = "application/json"

// InvokeInput is a fully encoded model request.
type InvokeInput struct {
	ModelID     string
	Body        []byte // UTF-8 JSON
	Accept      string
	ContentType string
}

// NewJSONInput returns an InvokeInput with JSON accept and content type.
func NewJSONInput(modelID string, body []byte) InvokeInput {
	return InvokeInput{
		ModelID:     modelID,
		Body:        body,
		Accept:      ContentTypeJSON,
		ContentType: ContentTypeJSON,
	}
}

// InvokeOutput carries the raw response returned by the runtime.
type InvokeOutput struct {
	Body        []byte
	ContentType string
}

// Invoker performs a single synchronous model invocation. Implementations own
// transport concerns: credentials, region, timeouts and retries. Errors are
// surfaced to callers unchanged.
type Invoker interface {
	InvokeModel(ctx context.Context, in InvokeInput) (*InvokeOutput, error)
}

// Result is the decoded JSON document returned by a model invocation: any
// valid JSON value (object, array, scalar or nil). Its shape is model specific
// and passed through unvalidated.
type Result = any
