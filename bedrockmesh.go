// Package bedrockmesh provides a small session façade for building and sending
// text generation requests to Amazon Bedrock models. Most applications:
//  1. Create a Session via New() or NewBedrockSession() for one model id
//  2. Assemble a prompt (BuildPrompt) and a family specific body (BuildBody)
//  3. Send it through the injected invoker (Invoke), or do both with Generate
//
// Body shaping is pure and lives in the body package; the network call is
// delegated to a core.Invoker so the builder logic can be exercised without
// any AWS dependency.
package bedrockmesh

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/bedrockmesh/body"
	"github.com/hupe1980/bedrockmesh/core"
	"github.com/hupe1980/bedrockmesh/invoker/bedrock"
	"github.com/hupe1980/bedrockmesh/logging"
	"github.com/hupe1980/bedrockmesh/prompt"
)

// DefaultRegion is the Bedrock region used when none is configured.
const DefaultRegion = bedrock.DefaultRegion

var (
	// ErrNoInvoker is returned by Invoke when the session has no invoker.
	ErrNoInvoker = fmt.Errorf("no invoker configured")

	// ErrEmptyResponse is returned by Invoke when the invoker reports neither
	// an output nor an error.
	ErrEmptyResponse = fmt.Errorf("invoker returned no output")
)

// Options configures a Session.
type Options struct {
	// Region of the Bedrock runtime. Defaults to us-east-1.
	Region string

	// Invoker performs the remote call. NewBedrockSession fills it with a
	// Bedrock runtime invoker for Region when left nil.
	Invoker core.Invoker

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Session binds a model id and region to an invoker. It holds no mutable
// state and is safe for concurrent use when its invoker is.
type Session struct {
	modelID string
	opts    Options
}

// New creates a Session for modelID.
func New(modelID string, optFns ...func(o *Options)) *Session {
	opts := Options{
		Region: DefaultRegion,
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	return &Session{modelID: modelID, opts: opts}
}

// NewBedrockSession creates a Session backed by the Bedrock runtime in the
// configured region, using the default AWS credential chain. A caller
// supplied Invoker is kept as is.
func NewBedrockSession(ctx context.Context, modelID string, optFns ...func(o *Options)) (*Session, error) {
	s := New(modelID, optFns...)
	if s.opts.Invoker != nil {
		return s, nil
	}

	inv, err := bedrock.New(ctx, func(o *bedrock.Options) { o.Region = s.opts.Region })
	if err != nil {
		return nil, err
	}

	s.opts.Invoker = inv

	return s, nil
}

// ModelID returns the model id the session was created for.
func (s *Session) ModelID() string { return s.modelID }

// Region returns the configured Bedrock region.
func (s *Session) Region() string { return s.opts.Region }

// BuildPrompt assembles a prompt with optional dialogue framing and context.
func (s *Session) BuildPrompt(text string, optFns ...func(o *prompt.Options)) string {
	return prompt.Build(text, optFns...)
}

// BuildBody shapes input and params into the request body of the session's
// model family. It fails with *body.UnsupportedModelError for unknown ids.
func (s *Session) BuildBody(input string, params body.Params) (body.Body, error) {
	return body.Build(s.modelID, input, params)
}

// Invoke encodes b as JSON, sends it to the session's model and decodes the
// JSON response. Invoker errors and JSON syntax errors in the response are
// returned unchanged.
func (s *Session) Invoke(ctx context.Context, b body.Body) (core.Result, error) {
	if s.opts.Invoker == nil {
		return nil, ErrNoInvoker
	}

	payload, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("encode body: %w", err)
	}

	invocationID := uuid.NewString()
	s.opts.Logger.Debug("invoking model", "invocation_id", invocationID, "model_id", s.modelID, "region", s.opts.Region)

	start := time.Now()
	out, err := s.opts.Invoker.InvokeModel(ctx, core.NewJSONInput(s.modelID, payload))
	s.logInvocation(invocationID, len(payload), out, time.Since(start), err)

	if err != nil {
		return nil, err
	}

	if out == nil {
		return nil, ErrEmptyResponse
	}

	var result core.Result
	if err := json.Unmarshal(out.Body, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// Generate builds the body for input and params and invokes the model.
func (s *Session) Generate(ctx context.Context, input string, params body.Params) (core.Result, error) {
	b, err := s.BuildBody(input, params)
	if err != nil {
		return nil, err
	}

	return s.Invoke(ctx, b)
}

func (s *Session) logInvocation(invocationID string, reqBytes int, out *core.InvokeOutput, dur time.Duration, err error) {
	respBytes := 0
	if out != nil {
		respBytes = len(out.Body)
	}

	if sl, ok := s.opts.Logger.(*logging.StructuredLogger); ok {
		sl.WithComponent("session").WithInvocation(invocationID).LogInvocation(s.modelID, reqBytes, respBytes, dur, err)
		return
	}

	if err != nil {
		s.opts.Logger.Error("model invocation failed", "invocation_id", invocationID, "model_id", s.modelID, "duration", dur, "error", err)
		return
	}

	s.opts.Logger.Info("model invocation completed", "invocation_id", invocationID, "model_id", s.modelID, "duration", dur, "response_bytes", respBytes)
}
