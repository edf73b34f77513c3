// Package core defines the contract between request building and the remote
// model runtime. It holds the small set of types both sides agree on:
//
//   - Invoker: the collaborator that performs one synchronous model call
//   - InvokeInput / InvokeOutput: the encoded request and raw response
//   - Result: the decoded JSON response handed back to callers
//
// Concrete invokers (Bedrock runtime, in-memory mocks) live in the invoker
// packages so this package stays free of vendor SDK dependencies.
package core
