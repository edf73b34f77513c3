// Package prompt assembles the single prompt string sent to text-completion
// style models. It optionally frames the text as a two party dialogue turn
// (human label, assistant label) and optionally appends a tagged context
// block.
//
// Usage:
//
//	p := prompt.Build("Explain black holes", prompt.WithLabels("Human", "Assistant"))
//	p = prompt.Build(p, prompt.WithContext(retrieved))
//
// Assembly is pure: no I/O, no failure modes.
package prompt
