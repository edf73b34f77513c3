package body_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/hupe1980/bedrockmesh/body"
	"github.com/hupe1980/bedrockmesh/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const input = "Human: hi \\nAssistant: "

func TestBuild_AllParams(t *testing.T) {
	p := testutil.NewParamsBuilder().All().Build()
	stop := []string{"User:"}

	tests := []struct {
		modelID string
		want    body.Body
	}{
		{
			modelID: "amazon.titan-text-express-v1",
			want: body.Body{
				"inputText": input,
				"textGenerationConfig": body.Body{
					"temperature":   0.1,
					"topP":          0.9,
					"stopSequences": stop,
					"maxTokenCount": 300,
				},
			},
		},
		{
			modelID: "anthropic.claude-v2",
			want: body.Body{
				"prompt":               input,
				"temperature":          0.1,
				"top_p":                0.9,
				"top_k":                50,
				"stop_sequences":       stop,
				"max_tokens_to_sample": 300,
			},
		},
		{
			modelID: "ai21.j2-ultra-v1",
			want: body.Body{
				"prompt":        input,
				"temperature":   0.1,
				"topP":          0.9,
				"stopSequences": stop,
				"maxTokens":     300,
			},
		},
		{
			modelID: "cohere.command-text-v14",
			want: body.Body{
				"prompt":         input,
				"temperature":    0.1,
				"p":              0.9,
				"k":              50,
				"stop_sequences": stop,
				"max_tokens":     300,
			},
		},
		{
			modelID: "meta.llama2-13b-chat-v1",
			want: body.Body{
				"prompt":      input,
				"temperature": 0.1,
				"top_p":       0.9,
				"max_gen_len": 300,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.modelID, func(t *testing.T) {
			got, err := body.Build(tt.modelID, input, p)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuild_NoParams(t *testing.T) {
	tests := []struct {
		modelID string
		want    body.Body
	}{
		{"amazon.titan-text-lite-v1", body.Body{"inputText": input, "textGenerationConfig": body.Body{}}},
		{"anthropic.claude-instant-v1", body.Body{"prompt": input}},
		{"ai21.j2-mid-v1", body.Body{"prompt": input}},
		{"cohere.command-text-v14", body.Body{"prompt": input}},
		{"meta.llama2-70b-chat-v1", body.Body{"prompt": input}},
	}

	for _, tt := range tests {
		t.Run(tt.modelID, func(t *testing.T) {
			got, err := body.Build(tt.modelID, input, body.Params{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			encoded := testutil.MustJSON(t, got)
			assert.NotContains(t, string(encoded), "null")
		})
	}
}

func TestBuild_EmptyStopSequencesIsSet(t *testing.T) {
	p := testutil.NewParamsBuilder().StopSequences().Build()

	got, err := body.Build("anthropic.claude-v2", input, p)
	require.NoError(t, err)

	assert.Equal(t, []string{}, got["stop_sequences"])
	assert.JSONEq(t, `{"prompt":"Human: hi \\nAssistant: ","stop_sequences":[]}`, string(testutil.MustJSON(t, got)))
}

func TestBuild_UnsupportedModel(t *testing.T) {
	_, err := body.Build("totally.unknown-model", input, body.Params{})
	require.Error(t, err)

	var unsupported *body.UnsupportedModelError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "totally.unknown-model", unsupported.ModelID)
	assert.ErrorIs(t, err, body.ErrUnsupportedModel)
	assert.Contains(t, err.Error(), "totally.unknown-model")
}

func TestBuild_PrefixMustMatchAtStart(t *testing.T) {
	_, err := body.Build("us.anthropic.claude-v2", input, body.Params{})
	assert.ErrorIs(t, err, body.ErrUnsupportedModel)
}

func TestBuild_ExtraFields(t *testing.T) {
	p := testutil.NewParamsBuilder().
		Temperature(0.5).
		Extra("countPenalty", map[string]any{"scale": 0}).
		Extra("return_likelihoods", "NONE").
		Extra("dropped", nil).
		Extra("temperature", 2.0).
		Build()

	t.Run("ai21 merges", func(t *testing.T) {
		got, err := body.Build("ai21.j2-ultra-v1", input, p)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"scale": 0}, got["countPenalty"])
		assert.Equal(t, "NONE", got["return_likelihoods"])
		assert.NotContains(t, got, "dropped")
		assert.Equal(t, 0.5, got["temperature"], "mapped parameters take precedence")
	})

	t.Run("cohere merges", func(t *testing.T) {
		got, err := body.Build("cohere.command-text-v14", input, p)
		require.NoError(t, err)
		assert.Equal(t, "NONE", got["return_likelihoods"])
		assert.NotContains(t, got, "dropped")
	})

	for _, id := range []string{"amazon.titan-text-express-v1", "anthropic.claude-v2", "meta.llama2-13b-chat-v1"} {
		t.Run(id+" ignores", func(t *testing.T) {
			withExtra, err := body.Build(id, input, p)
			require.NoError(t, err)

			p2 := p
			p2.Extra = nil
			without, err := body.Build(id, input, p2)
			require.NoError(t, err)

			assert.Equal(t, without, withExtra)
		})
	}
}

func TestBuild_DoesNotMutateExtra(t *testing.T) {
	extra := map[string]any{"k": 1}
	p := body.Params{Extra: extra}

	got, err := body.Build("ai21.j2-mid-v1", input, p)
	require.NoError(t, err)
	got["k"] = 2

	assert.Equal(t, map[string]any{"k": 1}, extra)
}

func TestResolve_Precedence(t *testing.T) {
	list := []body.Family{
		body.NewMarkerFamily("anthropic"),
		body.NewMarkerFamily("anthropic.claude"),
	}

	for i := 0; i < 50; i++ {
		f, err := body.ResolveIn(list, "anthropic.claude-v2")
		require.NoError(t, err)
		assert.Equal(t, "anthropic", f.Prefix)
		assert.Equal(t, body.Body{"family": "anthropic"}, f.Build(input, body.Params{}))
	}

	reversed := []body.Family{list[1], list[0]}
	f, err := body.ResolveIn(reversed, "anthropic.claude-v2")
	require.NoError(t, err)
	assert.Equal(t, "anthropic.claude", f.Prefix)
}

func TestFamilies(t *testing.T) {
	fs := body.Families()

	prefixes := make([]string, 0, len(fs))
	for _, f := range fs {
		prefixes = append(prefixes, f.Prefix)
	}
	assert.Equal(t, []string{"amazon.titan-text", "anthropic.claude", "ai21", "cohere.command-text", "meta.llama"}, prefixes)

	fs[0].Prefix = "mutated"
	assert.Equal(t, "amazon.titan-text", body.Families()[0].Prefix)

	for _, f := range body.Families() {
		assert.Equal(t, f.Prefix == "ai21" || f.Prefix == "cohere.command-text", f.SupportsExtra, f.Prefix)
	}
}

func TestBody_JSONRoundTrip(t *testing.T) {
	p := testutil.NewParamsBuilder().All().Temperature(0.123456789012345).Build()

	for _, f := range body.Families() {
		t.Run(f.Prefix, func(t *testing.T) {
			b := f.Build(input, p)
			encoded := testutil.MustJSON(t, b)

			var decoded body.Body
			require.NoError(t, json.Unmarshal(encoded, &decoded))

			assert.JSONEq(t, string(encoded), string(testutil.MustJSON(t, decoded)))

			temp := decoded["temperature"]
			if cfg, ok := decoded["textGenerationConfig"].(map[string]any); ok {
				temp = cfg["temperature"]
			}
			assert.Equal(t, 0.123456789012345, temp)
		})
	}
}
