// Package jsonl reads a model response formatted as JSON-Lines: one
// JSON value per physical line, recovered per line through the full
// fallback chain of [github.com/leofalp/salvage/core/resolve]. An
// optional dot-separated path projects into each value before
// stringification.
//
// Reading is all-or-nothing: one unrecoverable line fails the whole
// call, because a single malformed line almost always means the entire
// response is not in the expected format and the caller should retry
// the request instead of keeping partial results.
package jsonl
