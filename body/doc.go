// Package body maps a prompt and a set of optional generation parameters onto
// the JSON request body a Bedrock model family expects.
//
// Every family names the same sampling controls differently (temperature,
// nucleus probability, top-k, stop sequences, max tokens) and some nest them.
// The package keeps an ordered list of families keyed by model id prefix; the
// first prefix the model id starts with selects the body shape.
//
// Unset parameters are never emitted, not even as null. Extra fields are
// merged verbatim only by families that declare support for them (ai21 and
// cohere.command-text); the remaining families accept and ignore them.
package body
