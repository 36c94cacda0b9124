// Package utils provides shared low-level helpers used throughout the
// salvage internals: JSON stringification that is always safe to embed
// in log output, and string truncation for error messages that quote
// the offending input.
package utils
