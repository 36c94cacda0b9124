// Package salvage recovers structured data from free-form LLM output.
//
// Model responses that should be a JSON object, a sequence of
// JSON-Lines records, or a run of tagged lines routinely arrive wrapped
// in reasoning preambles and markdown fences, or written in
// Python-literal syntax (single quotes, None/True/False, tuples,
// trailing commas). The top-level functions here run a layered recovery
// chain over caller-supplied text and hand back parsed values or a
// typed failure.
//
// All functions are pure and hold no cross-call state, so they are safe
// to call concurrently from independent workers. The individual stages
// live in the core packages (sanitize, extract, normalize, resolve,
// jsonl, tagline) for callers that need finer control.
package salvage

import (
	"github.com/leofalp/salvage/core/jsonl"
	"github.com/leofalp/salvage/core/resolve"
	"github.com/leofalp/salvage/core/sanitize"
	"github.com/leofalp/salvage/core/tagline"
)

// Error sentinels re-exported from the core packages. Inspect wrapped
// failures with [errors.Is].
var (
	ErrJSONLInvalid  = jsonl.ErrInvalid
	ErrListIndex     = jsonl.ErrListIndex
	ErrKeyNotFound   = jsonl.ErrKeyNotFound
	ErrInvalidPath   = jsonl.ErrInvalidPath
	ErrNoTaggedLines = tagline.ErrNoTaggedLines
)

// TaggedLineOptions configures [ParseTaggedLines]; see [tagline.Options].
type TaggedLineOptions = tagline.Options

// ResolveValue recovers a single JSON value from raw model output,
// returning nil when every recovery attempt fails. See [resolve.Value].
func ResolveValue(raw string) any {
	return resolve.Value(raw)
}

// ParseLines reads raw as JSON-Lines, optionally projecting the
// dot-separated path into each value. Pass "" to skip projection. See
// [jsonl.Lines].
func ParseLines(raw string, path string) ([]string, error) {
	return jsonl.Lines(raw, path)
}

// ParseTaggedLines extracts tagged records from raw and returns their
// text fields. A nil opts uses the defaults. See [tagline.Lines].
func ParseTaggedLines(raw string, opts *TaggedLineOptions) ([]string, error) {
	return tagline.Lines(raw, opts)
}

// StripThinkTags removes <think> reasoning blocks from raw. See
// [sanitize.StripThinkTags].
func StripThinkTags(raw string) string {
	return sanitize.StripThinkTags(raw)
}
