package jsonl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leofalp/salvage/core/resolve"
	"github.com/leofalp/salvage/core/sanitize"
	"github.com/leofalp/salvage/internal/utils"
)

// linePrefix is the label some models put in front of every record.
const linePrefix = "jsonline"

// fenceMarkers are opening/closing fence tokens that may survive inside
// a multi-line body after the outer layer was unwrapped.
var fenceMarkers = []string{"```", "'''", `"""`}

// Lines reads raw as JSON-Lines and returns the stringified value of
// each line, in input order. The whole input is cleaned once (reasoning
// blocks stripped, one fence layer unwrapped) before splitting on
// newlines.
//
// Blank lines are preserved as empty-string entries. Lines starting
// with a fence marker are dropped. A leading "jsonline" label is
// removed before the line is resolved. Every remaining non-blank line
// goes through the full recovery chain; the first line that fails makes
// the whole call fail with [ErrInvalid] — no partial results, since one
// malformed line usually means the whole response is in the wrong
// format.
//
// When path is non-empty it is applied to each value as a dot-separated
// projection before stringification: an array segment must parse as an
// in-range integer index ([ErrListIndex]), an object segment must name
// an existing key ([ErrKeyNotFound]), and a segment applied to a scalar
// fails with [ErrInvalidPath].
//
// String results are returned as-is; any other value is rendered as
// compact JSON.
//
// Example:
//
//	jsonl.Lines("{\"a\":1}\n\n{\"a\":2}", "a") // ["1", "", "2"]
func Lines(raw string, path string) ([]string, error) {
	cleaned := sanitize.Clean(raw)

	var results []string
	for i, line := range strings.Split(cleaned, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			results = append(results, "")
			continue
		}
		if isFenceLine(line) {
			continue
		}
		if rest, ok := strings.CutPrefix(line, linePrefix); ok {
			line = strings.TrimSpace(rest)
		}

		value := resolve.Value(line)
		if value == nil {
			return nil, fmt.Errorf("%w: line %d: %s", ErrInvalid, i+1, utils.TruncateString(line, 120))
		}

		if path != "" {
			projected, err := project(value, path)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			value = projected
		}

		results = append(results, stringify(value))
	}
	return results, nil
}

// project walks a dot-separated path into value, one segment at a time.
func project(value any, path string) (any, error) {
	for _, segment := range strings.Split(path, ".") {
		switch container := value.(type) {
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil {
				return nil, fmt.Errorf("%w: segment %q is not an array index", ErrListIndex, segment)
			}
			if index < 0 || index >= len(container) {
				return nil, fmt.Errorf("%w: index %d out of range for array of %d", ErrListIndex, index, len(container))
			}
			value = container[index]
		case map[string]any:
			child, ok := container[segment]
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, segment)
			}
			value = child
		default:
			return nil, fmt.Errorf("%w: segment %q applied to non-container value", ErrInvalidPath, segment)
		}
	}
	return value, nil
}

func stringify(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return utils.JSONToString(value)
}

func isFenceLine(line string) bool {
	for _, marker := range fenceMarkers {
		if strings.HasPrefix(line, marker) {
			return true
		}
	}
	return false
}
