package body

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Params holds the optional generation parameters. A nil pointer or nil slice
// means unset; a non-nil empty StopSequences slice is a set value.
type Params struct {
	Temperature   *float64 `yaml:"temperature,omitempty" json:"temperature,omitempty"`
	TopP          *float64 `yaml:"top_p,omitempty" json:"top_p,omitempty"`
	TopK          *int     `yaml:"top_k,omitempty" json:"top_k,omitempty"`
	StopSequences []string `yaml:"stop_sequences,omitempty" json:"stop_sequences,omitempty"`
	MaxTokenCount *int     `yaml:"max_token_count,omitempty" json:"max_token_count,omitempty"`

	// Extra carries provider specific fields that have no portable name
	// (e.g. ai21 "countPenalty", cohere "return_likelihoods"). Entries with a
	// nil value are treated as unset.
	Extra map[string]any `yaml:"extra,omitempty" json:"extra,omitempty"`
}

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// LoadParams decodes a YAML parameter profile.
//
//	temperature: 0.1
//	top_p: 0.9
//	max_token_count: 300
//	stop_sequences: ["User:"]
func LoadParams(r io.Reader) (Params, error) {
	var p Params
	if err := yaml.NewDecoder(r).Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return Params{}, nil
		}
		return Params{}, fmt.Errorf("decode params: %w", err)
	}
	return p, nil
}

// LoadParamsJSON decodes a JSON parameter profile using the same field names
// as the YAML form. Unknown fields are rejected.
func LoadParamsJSON(r io.Reader) (Params, error) {
	var p Params
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return Params{}, nil
		}
		return Params{}, fmt.Errorf("decode params: %w", err)
	}
	return p, nil
}

// LoadParamsFile reads a parameter profile from path. Files ending in .json
// are decoded as JSON, everything else as YAML.
func LoadParamsFile(path string) (Params, error) {
	f, err := os.Open(path)
	if err != nil {
		return Params{}, fmt.Errorf("open params file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return LoadParamsJSON(f)
	}
	return LoadParams(f)
}
