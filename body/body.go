package body

import "strings"

// Body is a request body keyed by provider specific field names. It encodes
// directly with encoding/json.
type Body map[string]any

func (b Body) setFloat(key string, v *float64) {
	if v != nil {
		b[key] = *v
	}
}

func (b Body) setInt(key string, v *int) {
	if v != nil {
		b[key] = *v
	}
}

func (b Body) setStrings(key string, v []string) {
	if v != nil {
		b[key] = v
	}
}

// mergeExtra copies non-nil extra fields into b. Called before the mapped
// parameters are written so those win on key collisions.
func (b Body) mergeExtra(extra map[string]any) {
	for k, v := range extra {
		if v != nil {
			b[k] = v
		}
	}
}

// Family describes one model family: the model id prefix that selects it and
// whether it merges Params.Extra into its body.
type Family struct {
	Prefix        string
	SupportsExtra bool
	build         func(input string, p Params) Body
}

// Build shapes input and p into the family's request body.
func (f Family) Build(input string, p Params) Body {
	b := Body{}
	if f.SupportsExtra {
		b.mergeExtra(p.Extra)
	}
	for k, v := range f.build(input, p) {
		b[k] = v
	}
	return b
}

// Match reports whether modelID belongs to the family.
func (f Family) Match(modelID string) bool {
	return strings.HasPrefix(modelID, f.Prefix)
}

// families is evaluated in declaration order; the first match wins.
var families = []Family{
	{Prefix: "amazon.titan-text", build: buildTitan},
	{Prefix: "anthropic.claude", build: buildClaude},
	{Prefix: "ai21", SupportsExtra: true, build: buildAI21},
	{Prefix: "cohere.command-text", SupportsExtra: true, build: buildCohere},
	{Prefix: "meta.llama", build: buildLlama},
}

// Families returns the known families in precedence order.
func Families() []Family {
	out := make([]Family, len(families))
	copy(out, families)
	return out
}

// Resolve returns the first family whose prefix modelID starts with.
func Resolve(modelID string) (Family, error) {
	return resolve(families, modelID)
}

func resolve(list []Family, modelID string) (Family, error) {
	for _, f := range list {
		if f.Match(modelID) {
			return f, nil
		}
	}
	return Family{}, &UnsupportedModelError{ModelID: modelID}
}

// Build resolves the family for modelID and returns the request body for
// input and p.
func Build(modelID, input string, p Params) (Body, error) {
	f, err := Resolve(modelID)
	if err != nil {
		return nil, err
	}
	return f.Build(input, p), nil
}

func buildTitan(input string, p Params) Body {
	cfg := Body{}
	cfg.setFloat("temperature", p.Temperature)
	cfg.setFloat("topP", p.TopP)
	cfg.setStrings("stopSequences", p.StopSequences)
	cfg.setInt("maxTokenCount", p.MaxTokenCount)

	// textGenerationConfig is always present, even when empty.
	return Body{
		"inputText":            input,
		"textGenerationConfig": cfg,
	}
}

func buildClaude(input string, p Params) Body {
	b := Body{"prompt": input}
	b.setFloat("temperature", p.Temperature)
	b.setFloat("top_p", p.TopP)
	b.setInt("top_k", p.TopK)
	b.setStrings("stop_sequences", p.StopSequences)
	b.setInt("max_tokens_to_sample", p.MaxTokenCount)
	return b
}

func buildAI21(input string, p Params) Body {
	b := Body{"prompt": input}
	b.setFloat("temperature", p.Temperature)
	b.setFloat("topP", p.TopP)
	b.setStrings("stopSequences", p.StopSequences)
	b.setInt("maxTokens", p.MaxTokenCount)
	return b
}

func buildCohere(input string, p Params) Body {
	b := Body{"prompt": input}
	b.setFloat("temperature", p.Temperature)
	b.setFloat("p", p.TopP)
	b.setInt("k", p.TopK)
	b.setStrings("stop_sequences", p.StopSequences)
	b.setInt("max_tokens", p.MaxTokenCount)
	return b
}

func buildLlama(input string, p Params) Body {
	b := Body{"prompt": input}
	b.setFloat("temperature", p.Temperature)
	b.setFloat("top_p", p.TopP)
	b.setInt("max_gen_len", p.MaxTokenCount)
	return b
}
