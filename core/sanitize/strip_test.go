package sanitize

import (
	"testing"
)

func TestStripThinkTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no tags",
			input: `{"a": 1}`,
			want:  `{"a": 1}`,
		},
		{
			name:  "well-formed span",
			input: "pre<think>reasoning</think>post",
			want:  "prepost",
		},
		{
			name:  "multiple spans",
			input: "<think>one</think>a<think>two</think>b",
			want:  "ab",
		},
		{
			name:  "multiline reasoning",
			input: "<think>line one\nline two</think>result",
			want:  "result",
		},
		{
			name:  "case insensitive",
			input: "<Think>hidden</THINK>visible",
			want:  "visible",
		},
		{
			name:  "unterminated opener removes to end",
			input: "pre<think>reasoning",
			want:  "pre",
		},
		{
			name:  "stray closer",
			input: "</think>payload",
			want:  "payload",
		},
		{
			name:  "trims whitespace",
			input: "  <think>x</think>  {\"a\": 1}  ",
			want:  `{"a": 1}`,
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "only reasoning",
			input: "<think>everything</think>",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripThinkTags(tt.input); got != tt.want {
				t.Errorf("StripThinkTags(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
