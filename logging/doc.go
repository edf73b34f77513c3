// Package logging provides a minimal logging interface and adapters for bedrockmesh.
//
// The Logger interface defines the standard logging methods (Debug, Info, Warn, Error)
// that sessions and invokers use for observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping an existing *slog.Logger
//   - StructuredLogger with component / invocation context and invocation helpers
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	sess := bedrockmesh.New(modelID, func(o *bedrockmesh.Options) { o.Logger = logger })
//
// Arguments after the message are slog style key/value pairs.
package logging
