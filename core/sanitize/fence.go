package sanitize

import (
	"regexp"
	"strings"
)

// Fence patterns tried in order. Models fence structured output with
// triple backticks most of the time, but ''' and """ show up when the
// model borrows string-literal syntax instead of markdown. The optional
// language tag covers the labels models actually emit.
var fenceRes = []*regexp.Regexp{
	regexp.MustCompile("(?s)```(?:jsonl|json|text)?\\s*(.*?)```"),
	regexp.MustCompile(`(?s)'''(?:jsonl|json|text)?\s*(.*?)'''`),
	regexp.MustCompile(`(?s)"""(?:jsonl|json|text)?\s*(.*?)"""`),
}

// UnwrapFence removes one layer of code fence from text, returning the
// inner content trimmed. If no fence matches, the trimmed input is
// returned unchanged. Only a single layer is unwrapped; nested fences
// inside the content are left alone.
func UnwrapFence(text string) string {
	trimmed := strings.TrimSpace(text)
	for _, re := range fenceRes {
		if m := re.FindStringSubmatch(trimmed); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return trimmed
}

// Clean applies the full pre-parse cleanup: reasoning blocks are
// stripped first, then one fence layer is unwrapped. Never fails.
func Clean(raw string) string {
	return UnwrapFence(StripThinkTags(raw))
}
