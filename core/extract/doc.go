// Package extract locates the first syntactically balanced JSON object
// or array inside free-form text. Bracket characters inside quoted
// strings are ignored, so prose like `the "result" is {"ok": true}` is
// handled correctly. It is the last resort of the recovery chain: when
// strict parsing and normalization both fail, a balanced block pulled
// out of the noise is often still parseable.
package extract
