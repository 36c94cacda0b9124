package tagline

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/leofalp/salvage/core/sanitize"
)

// DefaultPattern matches the @@id@@text line shape used by the
// translation prompts. Named captures keep the id/text extraction
// independent of group order.
const DefaultPattern = `^@@(?P<id>\d+)@@(?P<text>.*)$`

// Zero-padding width for numeric id sort keys. Wide enough for any id
// a model will realistically emit.
const idKeyWidth = 20

// Options configures [Lines]. The zero value uses [DefaultPattern],
// no flags, and input order.
type Options struct {
	// Pattern is the regular expression applied to each trimmed line.
	// It should expose the record through named captures id and text;
	// patterns without named captures fall back to the first two
	// positional groups. Empty means [DefaultPattern].
	Pattern string

	// SortByID orders records by extracted id: ids that parse as
	// integers compare numerically, others fall back to plain string
	// comparison. If any record has an empty id, sorting is skipped
	// entirely and input order is preserved.
	SortByID bool

	// SortByLineNumber orders records by the line they were extracted
	// from. SortByID takes precedence when both are set.
	SortByLineNumber bool

	// Flags toggles regex behavior. Accepts a [FlagSet], a flag-name
	// list ([]string) or a separated name string; see [FlagSet].
	Flags any
}

// record is one extracted tagged line. The id stays a raw string until
// the sort step decides whether it is numeric.
type record struct {
	id     string
	lineNo int
	text   string
}

// Lines extracts tagged records from raw and returns their text fields
// in final order.
//
// Reasoning markup is stripped from the whole input first (fences are
// left alone: a fence marker line simply will not match the pattern).
// The compiled pattern is tested against each trimmed line;
// non-matching lines are skipped silently. Zero matches fail with
// [ErrNoTaggedLines] — all-or-nothing, like the JSONL reader.
//
// Example:
//
//	tagline.Lines("@@2@@second\n@@1@@first", &tagline.Options{SortByID: true})
//	// ["first", "second"]
func Lines(raw string, opts *Options) ([]string, error) {
	if opts == nil {
		opts = &Options{}
	}

	pattern := opts.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}
	re, err := compilePattern(pattern, normalizeFlags(opts.Flags))
	if err != nil {
		return nil, err
	}

	idIdx := re.SubexpIndex("id")
	textIdx := re.SubexpIndex("text")

	var records []record
	for i, line := range strings.Split(sanitize.StripThinkTags(raw), "\n") {
		m := re.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		records = append(records, record{
			id:     group(m, idIdx, 1),
			lineNo: i,
			text:   group(m, textIdx, 2),
		})
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: pattern %q", ErrNoTaggedLines, pattern)
	}

	switch {
	case opts.SortByID && allIDsPresent(records):
		sort.SliceStable(records, func(a, b int) bool {
			return idSortKey(records[a].id) < idSortKey(records[b].id)
		})
	case opts.SortByLineNumber:
		sort.SliceStable(records, func(a, b int) bool {
			return records[a].lineNo < records[b].lineNo
		})
	}

	texts := make([]string, len(records))
	for i, r := range records {
		texts[i] = r.text
	}
	return texts, nil
}

// compilePattern prepends the inline flag group and compiles. Matching
// is per line, so there is no global/streaming mode to translate.
func compilePattern(pattern string, flags FlagSet) (*regexp.Regexp, error) {
	re, err := regexp.Compile(flags.inline() + pattern)
	if err != nil {
		return nil, fmt.Errorf("salvage: invalid tagged-line pattern %q: %w", pattern, err)
	}
	return re, nil
}

// group returns the named capture when the pattern defines it,
// otherwise the positional fallback, otherwise "".
func group(m []string, namedIdx, positional int) string {
	if namedIdx >= 0 && namedIdx < len(m) {
		return m[namedIdx]
	}
	if positional < len(m) {
		return m[positional]
	}
	return ""
}

func allIDsPresent(records []record) bool {
	for _, r := range records {
		if r.id == "" {
			return false
		}
	}
	return true
}

// idSortKey zero-pads numeric ids to a fixed width so that plain
// lexicographic comparison orders them numerically; non-numeric ids
// compare as-is.
func idSortKey(id string) string {
	if n, err := strconv.ParseUint(id, 10, 64); err == nil {
		return fmt.Sprintf("%0*d", idKeyWidth, n)
	}
	return id
}
