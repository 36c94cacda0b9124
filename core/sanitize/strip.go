package sanitize

import (
	"regexp"
	"strings"
)

var (
	// Well-formed <think>...</think> spans. Case-insensitive because some
	// models emit <Think> or <THINK>; (?s) so reasoning may span lines.
	thinkSpanRe = regexp.MustCompile(`(?is)<think>.*?</think>`)
	// An opener that never got closed: everything from it to end-of-text
	// is reasoning that was cut off mid-stream.
	thinkOpenRe = regexp.MustCompile(`(?is)<think>.*$`)
	// Stray tag tokens left behind (e.g. a lone closer with no opener).
	thinkTagRe = regexp.MustCompile(`(?i)</?think>`)
)

// StripThinkTags removes <think>...</think> reasoning blocks from raw.
// Some models (like DeepSeek) use these tags to show chain-of-thought
// reasoning; for structured parsing only the text outside them matters.
//
// Every well-formed span is removed. If an unterminated opener remains,
// everything from it to the end of the text is removed. Any stray tag
// token is dropped and the result is trimmed. Never fails.
func StripThinkTags(raw string) string {
	cleaned := thinkSpanRe.ReplaceAllString(raw, "")
	cleaned = thinkOpenRe.ReplaceAllString(cleaned, "")
	cleaned = thinkTagRe.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}
