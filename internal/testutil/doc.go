// Package testutil contains helper builders used across tests to reduce
// boilerplate when constructing generation parameters and inspecting encoded
// request bodies. Not intended for production usage.
package testutil
