package sanitize

import (
	"strings"
	"testing"
)

func TestFromHTML(t *testing.T) {
	got, err := FromHTML("<p>hello world</p>")
	if err != nil {
		t.Fatalf("FromHTML() error = %v", err)
	}
	if got != "hello world" {
		t.Errorf("FromHTML() = %q, want %q", got, "hello world")
	}
}

func TestFromHTML_CodeBlock(t *testing.T) {
	got, err := FromHTML(`<pre><code>{"status": "ok"}</code></pre>`)
	if err != nil {
		t.Fatalf("FromHTML() error = %v", err)
	}
	if !strings.Contains(got, `{"status": "ok"}`) {
		t.Errorf("FromHTML() = %q, want it to contain the code content", got)
	}
}
