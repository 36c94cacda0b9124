// Package normalize rewrites Python-literal syntax into strict JSON.
// Models trained on Python emit single-quoted strings, None/True/False
// keywords, parenthesized tuples, and trailing commas; Normalize
// converts all of these in a single left-to-right pass so a standard
// JSON decoder can take over.
//
// Normalize never fails. It always returns a string, which may or may
// not be valid JSON; the caller decides by attempting to parse it.
package normalize
