// File: doc.go
// Role: Reference output contract named by §6 "Output" — a Result
// summary and a DOT graph dump. These are deliberately a reference
// implementation, not a shipped CLI/formatting tool (§1 Non-goals keep
// a textual front end external); callers that want another rendering
// read Result's fields or covgraph.Graph directly.
package output
