// Package resolve recovers a JSON value from raw LLM output by running
// an ordered fallback chain: strict parse, Python-literal
// normalization, automatic JSON repair, and balanced-block extraction.
// Cheap strict parsing runs first so well-behaved output pays nothing;
// the rewriting passes only run on malformed or noise-wrapped text.
//
// The main entry point is [Value], which returns nil when every attempt
// fails. "This candidate did not parse" is an expected outcome inside
// the chain, not an error.
package resolve
