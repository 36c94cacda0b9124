package jsonl

import "errors"

// Sentinel errors returned by [Lines]. They are wrapped with positional
// context, so inspect them with [errors.Is].
var (
	// ErrInvalid reports that a non-blank line failed every recovery
	// attempt in the fallback chain.
	ErrInvalid = errors.New("salvage: jsonl line is not parseable")

	// ErrListIndex reports a path segment applied to an array that is
	// not a valid index for it.
	ErrListIndex = errors.New("salvage: list index invalid")

	// ErrKeyNotFound reports a path segment naming a key the object
	// does not have.
	ErrKeyNotFound = errors.New("salvage: key not found")

	// ErrInvalidPath reports a path segment applied to a value that is
	// neither an object nor an array.
	ErrInvalidPath = errors.New("salvage: invalid path")
)
