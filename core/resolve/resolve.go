package resolve

import (
	"encoding/json"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/leofalp/salvage/core/extract"
	"github.com/leofalp/salvage/core/normalize"
	"github.com/leofalp/salvage/core/sanitize"
)

// Value recovers a JSON value from raw model output. The input is
// cleaned first (reasoning blocks stripped, one fence layer unwrapped),
// then candidates are tried in order:
//
//  1. strict parse of the cleaned text;
//  2. parse of the normalized text (Python literals rewritten);
//  3. parse of the repaired text (jsonrepair), when the candidate looks
//     like an object or array;
//  4. the first balanced {...}/[...] block extracted from the cleaned
//     text, put through steps 1-3 again when it differs from the whole.
//
// The first success wins. When nothing works, Value returns nil; it
// never fails. The returned value uses the standard decoding of
// encoding/json: map[string]any, []any, string, float64, bool, nil.
func Value(raw string) any {
	cleaned := sanitize.Clean(raw)
	if v, ok := parseCandidate(cleaned); ok {
		return v
	}
	if block := extract.FirstBlock(cleaned); block != "" && block != cleaned {
		if v, ok := parseCandidate(block); ok {
			return v
		}
	}
	return nil
}

// parseCandidate runs the strict -> normalized -> repaired attempts on
// one candidate string.
func parseCandidate(text string) (any, bool) {
	if v, ok := tryUnmarshal(text); ok {
		return v, true
	}
	if v, ok := tryUnmarshal(normalize.Normalize(text)); ok {
		return v, true
	}
	// Repair is restricted to bracketed candidates: jsonrepair will
	// happily quote arbitrary prose into a string, which would turn
	// "response not in expected format" into a bogus success.
	if looksStructured(text) {
		if repaired, err := jsonrepair.JSONRepair(text); err == nil {
			if v, ok := tryUnmarshal(repaired); ok {
				return v, true
			}
		}
	}
	return nil, false
}

func tryUnmarshal(text string) (any, bool) {
	if strings.TrimSpace(text) == "" {
		return nil, false
	}
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, false
	}
	return v, true
}

func looksStructured(text string) bool {
	trimmed := strings.TrimSpace(text)
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}
