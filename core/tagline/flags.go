package tagline

import (
	"strings"
)

// FlagSet is the canonical form of the regex flag toggles accepted by
// [Options.Flags]. Matching is always per line, so global/streaming
// flags from other regex dialects have no equivalent here and are
// ignored by the normalizers.
type FlagSet struct {
	// DotAll makes . match newlines ((?s)).
	DotAll bool
	// Multiline makes ^ and $ match at line boundaries ((?m)).
	Multiline bool
	// IgnoreCase makes matching case-insensitive ((?i)).
	IgnoreCase bool
}

// inline returns the (?ims) prefix for the enabled flags, or "" when
// none are set.
func (f FlagSet) inline() string {
	var letters []byte
	if f.IgnoreCase {
		letters = append(letters, 'i')
	}
	if f.Multiline {
		letters = append(letters, 'm')
	}
	if f.DotAll {
		letters = append(letters, 's')
	}
	if len(letters) == 0 {
		return ""
	}
	return "(?" + string(letters) + ")"
}

// normalizeFlags converts the dynamic flag value accepted at the API
// boundary into a canonical [FlagSet]. Accepted shapes:
//
//	nil                          no flags
//	FlagSet / *FlagSet           used as-is
//	[]string{"dotall", "i"}      name list
//	"dotall,ignorecase"          comma/space separated names
//
// Names are matched case-insensitively; both long names and the
// single-letter spellings (s, m, i) are understood. Unknown names,
// including global/streaming flags from other dialects, are ignored.
func normalizeFlags(value any) FlagSet {
	switch v := value.(type) {
	case nil:
		return FlagSet{}
	case FlagSet:
		return v
	case *FlagSet:
		if v == nil {
			return FlagSet{}
		}
		return *v
	case []string:
		return flagsFromNames(v)
	case string:
		return flagsFromNames(strings.FieldsFunc(v, func(r rune) bool {
			return r == ',' || r == ' ' || r == '|'
		}))
	default:
		return FlagSet{}
	}
}

func flagsFromNames(names []string) FlagSet {
	var flags FlagSet
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "dotall", "s":
			flags.DotAll = true
		case "multiline", "m":
			flags.Multiline = true
		case "ignorecase", "i":
			flags.IgnoreCase = true
		}
	}
	return flags
}
