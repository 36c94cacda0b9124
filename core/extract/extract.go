package extract

// FirstBlock returns the first balanced {...} or [...] span in text,
// delimiters included, or the empty string when no balanced block
// exists. Matching is first-match, not longest-match: scanning stops at
// the closer that returns the bracket stack to empty.
//
// The scan tracks double-quoted string state with escape handling, so
// brackets inside string literals never affect nesting. A closer that
// does not match the top of the stack still pops it; model output is
// sloppy with bracket kinds and the caller's parse attempt will reject
// anything genuinely broken. Unmatched closers before any opener are
// ignored. If the input ends with brackets still open, there is no
// balanced block and the empty string is returned.
//
// Example:
//
//	extract.FirstBlock(`noise {"a": [1,2]} trailing`) // `{"a": [1,2]}`
//	extract.FirstBlock(`{"a":`)                       // ""
func FirstBlock(text string) string {
	stack := make([]byte, 0, 8)
	inString := false
	escaped := false
	start := -1

	for i := 0; i < len(text); i++ {
		c := text[i]

		if escaped {
			escaped = false
			continue
		}

		if inString {
			switch c {
			case '\\':
				escaped = true
			case '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{', '[':
			if len(stack) == 0 {
				start = i
			}
			stack = append(stack, c)
		case '}', ']':
			if len(stack) == 0 {
				continue
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}
