// Package tagline extracts records from model output formatted as one
// tagged line per record, e.g.
//
//	@@1@@first translated line
//	@@2@@second translated line
//
// A configurable regular expression pulls an id and a text field out of
// each line; non-matching lines are skipped, and the collected records
// can be re-ordered by id so out-of-order model output still lines up
// with the source. Matching zero lines fails the whole call: a response
// with no tags at all is in the wrong format and should be retried
// upstream.
package tagline
