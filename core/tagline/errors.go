package tagline

import "errors"

// ErrNoTaggedLines is returned by [Lines] when the pattern matches no
// line at all. Inspect with [errors.Is]; the wrapped message carries the
// pattern that was tried.
var ErrNoTaggedLines = errors.New("salvage: no tagged lines matched")
