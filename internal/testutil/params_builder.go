package testutil

import (
	"github.com/hupe1980/bedrockmesh/body"
)

// ParamsBuilder helps construct body.Params with fluent chaining for tests.
// Example:
//
//	p := NewParamsBuilder().Temperature(0.1).TopP(0.9).MaxTokenCount(300).Build()
type ParamsBuilder struct {
	p body.Params
}

// NewParamsBuilder creates a builder with every parameter unset.
func NewParamsBuilder() *ParamsBuilder { return &ParamsBuilder{} }

// Temperature sets the sampling temperature (chainable).
func (b *ParamsBuilder) Temperature(v float64) *ParamsBuilder { b.p.Temperature = &v; return b }

// TopP sets the nucleus probability (chainable).
func (b *ParamsBuilder) TopP(v float64) *ParamsBuilder { b.p.TopP = &v; return b }

// TopK sets top-k sampling (chainable).
func (b *ParamsBuilder) TopK(v int) *ParamsBuilder { b.p.TopK = &v; return b }

// StopSequences sets the stop sequences (chainable). Calling it with no
// arguments sets an empty, non-nil slice.
func (b *ParamsBuilder) StopSequences(s ...string) *ParamsBuilder {
	b.p.StopSequences = append([]string{}, s...)
	return b
}

// MaxTokenCount sets the generation length limit (chainable).
func (b *ParamsBuilder) MaxTokenCount(v int) *ParamsBuilder { b.p.MaxTokenCount = &v; return b }

// Extra adds a provider specific field (chainable).
func (b *ParamsBuilder) Extra(key string, val any) *ParamsBuilder {
	if b.p.Extra == nil {
		b.p.Extra = map[string]any{}
	}
	b.p.Extra[key] = val
	return b
}

// All sets every portable parameter to a fixed, distinguishable value.
func (b *ParamsBuilder) All() *ParamsBuilder {
	return b.Temperature(0.1).TopP(0.9).TopK(50).StopSequences("User:").MaxTokenCount(300)
}

// Build returns the assembled params.
func (b *ParamsBuilder) Build() body.Params { return b.p }
