// Package invoker holds provider-agnostic core.Invoker helpers.
//
//   - Func adapts a plain function to core.Invoker
//   - MockInvoker returns canned JSON responses and records every call
//
// Vendor backed implementations live in sub-packages (bedrock) so callers that
// only build request bodies do not pull in a cloud SDK.
package invoker
