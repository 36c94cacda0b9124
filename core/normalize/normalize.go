package normalize

import (
	"regexp"
)

// frame tracks one open bracket during the rewrite pass. Only '('
// frames use pos/hasComma/hasContent: pos is the output offset of the
// placeholder byte, hasComma records a top-level comma inside the
// frame, hasContent records any non-whitespace content.
type frame struct {
	kind       byte
	pos        int
	hasComma   bool
	hasContent bool
}

// Trailing comma directly before a closer, e.g. `[1,]` or `{"a":1, }`.
var trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)

// Normalize rewrites text from Python-literal syntax into strict JSON:
//
//   - single-quoted strings become double-quoted, with literal `"`
//     escaped and existing escape sequences preserved;
//   - a 1-3 letter cast prefix glued to a quote (r'...', b"...") is
//     stripped;
//   - the bare words None, True, False become null, true, false;
//   - a parenthesized group containing a top-level comma, or containing
//     nothing at all, becomes an array ((1,2) -> [1,2], (1,) -> [1],
//     () -> []); a comma-free group unwraps to its content ((1) -> 1);
//   - trailing commas before a closing bracket are removed.
//
// Everything else passes through untouched. Double-quoted strings are
// opaque: nothing inside them is rewritten. The output is balanced
// whenever the rewrite touches it, because every opener it emits is
// paired with a closer derived from the same source closure. Normalize
// never fails; the result may still be invalid JSON.
func Normalize(text string) string {
	out := make([]byte, 0, len(text))
	var stack []frame
	var word []byte

	// markContent flags the innermost frame as content-bearing when it
	// is a '(' frame. String state has already been handled by the time
	// this is called.
	markContent := func() {
		if n := len(stack); n > 0 && stack[n-1].kind == '(' {
			stack[n-1].hasContent = true
		}
	}

	// flushWord emits a buffered bare word, mapping Python keywords to
	// their JSON spelling.
	flushWord := func() {
		if len(word) == 0 {
			return
		}
		markContent()
		switch string(word) {
		case "None":
			out = append(out, "null"...)
		case "True":
			out = append(out, "true"...)
		case "False":
			out = append(out, "false"...)
		default:
			out = append(out, word...)
		}
		word = word[:0]
	}

	for i := 0; i < len(text); i++ {
		c := text[i]

		if isWordByte(c) {
			word = append(word, c)
			continue
		}

		if c == '\'' || c == '"' {
			// A short letter run glued to a quote is a cast prefix
			// (r'...', b"...", rb'...'): drop it. Longer words are real
			// content and flush normally.
			if n := len(word); n >= 1 && n <= 3 {
				word = word[:0]
			} else {
				flushWord()
			}
			markContent()
			if c == '\'' {
				i = copySingleQuoted(text, i, &out)
			} else {
				i = copyDoubleQuoted(text, i, &out)
			}
			continue
		}

		flushWord()

		switch c {
		case '(':
			markContent()
			stack = append(stack, frame{kind: '(', pos: len(out)})
			out = append(out, '(')
		case ')':
			if n := len(stack); n > 0 && stack[n-1].kind == '(' {
				top := stack[n-1]
				stack = stack[:n-1]
				if top.hasComma || !top.hasContent {
					// A top-level comma means tuple; no content at all
					// means the empty tuple. Both become arrays.
					out[top.pos] = '['
					out = append(out, ']')
				} else {
					// Single grouped expression: drop the parentheses.
					out = append(out[:top.pos], out[top.pos+1:]...)
				}
			} else {
				out = append(out, c)
			}
		case '{', '[':
			markContent()
			stack = append(stack, frame{kind: c})
			out = append(out, c)
		case '}', ']':
			if n := len(stack); n > 0 && stack[n-1].kind == matchingOpener(c) {
				stack = stack[:n-1]
			}
			out = append(out, c)
		case ',':
			if n := len(stack); n > 0 && stack[n-1].kind == '(' {
				stack[n-1].hasComma = true
			}
			out = append(out, c)
		case ' ', '\t', '\r', '\n':
			out = append(out, c)
		default:
			markContent()
			out = append(out, c)
		}
	}
	flushWord()

	return trailingCommaRe.ReplaceAllString(string(out), "$1")
}

// copySingleQuoted re-emits the single-quoted string starting at
// text[start] as a double-quoted string, escaping literal `"` and
// copying existing escape pairs verbatim. Returns the index of the
// closing quote (or the last consumed byte when the string is
// unterminated).
func copySingleQuoted(text string, start int, out *[]byte) int {
	*out = append(*out, '"')
	i := start + 1
	for i < len(text) {
		c := text[i]
		if c == '\\' && i+1 < len(text) {
			*out = append(*out, c, text[i+1])
			i += 2
			continue
		}
		if c == '\'' {
			break
		}
		if c == '"' {
			*out = append(*out, '\\', '"')
			i++
			continue
		}
		*out = append(*out, c)
		i++
	}
	*out = append(*out, '"')
	return i
}

// copyDoubleQuoted copies the double-quoted string starting at
// text[start] verbatim, tracking escapes so an escaped quote does not
// end it. Returns the index of the closing quote (or the last consumed
// byte when unterminated).
func copyDoubleQuoted(text string, start int, out *[]byte) int {
	*out = append(*out, '"')
	i := start + 1
	for i < len(text) {
		c := text[i]
		if c == '\\' && i+1 < len(text) {
			*out = append(*out, c, text[i+1])
			i += 2
			continue
		}
		*out = append(*out, c)
		if c == '"' {
			break
		}
		i++
	}
	return i
}

func isWordByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func matchingOpener(closer byte) byte {
	if closer == '}' {
		return '{'
	}
	return '['
}
