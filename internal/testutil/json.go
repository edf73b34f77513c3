package testutil

import (
	"encoding/json"
	"testing"
)

// DecodeJSON unmarshals data into a generic map, failing the test on error.
func DecodeJSON(t *testing.T, data []byte) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("failed to unmarshal %q: %v", string(data), err)
	}

	return out
}

// MustJSON marshals v, failing the test on error.
func MustJSON(t *testing.T, v any) []byte {
	t.Helper()

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal %#v: %v", v, err)
	}

	return data
}
