// Package bedrock provides a core.Invoker backed by the Amazon Bedrock runtime
// InvokeModel API (aws-sdk-go-v2). Request bodies are sent as-is; shaping them
// per model family is the job of the body package.
package bedrock

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/hupe1980/bedrockmesh/core"
)

// DefaultRegion is used when no region is configured.
const DefaultRegion = "us-east-1"

// Client is the subset of *bedrockruntime.Client used by Invoker.
type Client interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

var _ Client = (*bedrockruntime.Client)(nil)

// Options configures the Bedrock invoker.
type Options struct {
	// Region of the Bedrock runtime endpoint.
	Region string
	// ConfigOptions are passed to config.LoadDefaultConfig after the region
	// (profiles, credential providers, retryers).
	ConfigOptions []func(*config.LoadOptions) error
}

// Invoker implements core.Invoker on top of a Bedrock runtime client.
type Invoker struct {
	client Client
}

// New creates an Invoker using the default AWS credential chain.
func New(ctx context.Context, optFns ...func(o *Options)) (*Invoker, error) {
	opts := Options{
		Region: DefaultRegion,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	loadOpts := append([]func(*config.LoadOptions) error{config.WithRegion(opts.Region)}, opts.ConfigOptions...)

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return NewFromClient(bedrockruntime.NewFromConfig(cfg)), nil
}

// NewFromClient creates an Invoker from an existing client.
func NewFromClient(client Client) *Invoker {
	return &Invoker{client: client}
}

// InvokeModel implements core.Invoker. SDK errors are returned unchanged.
func (i *Invoker) InvokeModel(ctx context.Context, in core.InvokeInput) (*core.InvokeOutput, error) {
	out, err := i.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(in.ModelID),
		Body:        in.Body,
		Accept:      aws.String(in.Accept),
		ContentType: aws.String(in.ContentType),
	})
	if err != nil {
		return nil, err
	}

	return &core.InvokeOutput{
		Body:        out.Body,
		ContentType: aws.ToString(out.ContentType),
	}, nil
}
