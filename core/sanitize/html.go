package sanitize

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// FromHTML converts an HTML-wrapped transcript to Markdown text so the
// recovery pipeline can run on it. Text copied out of a chat UI or
// scraped from a rendered page arrives as HTML; converting it back to
// Markdown restores the fences and line structure the parsers expect.
//
// Example:
//
//	text, err := sanitize.FromHTML(`<p>{"status": "ok"}</p>`)
//	// text == `{"status": "ok"}`
func FromHTML(html string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("salvage: failed to convert HTML to markdown: %w", err)
	}
	return strings.TrimSpace(markdown), nil
}
