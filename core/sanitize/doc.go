// Package sanitize removes the noise that language models wrap around
// structured output before any parsing is attempted: <think> reasoning
// blocks, one layer of markdown-style code fence, and surrounding
// whitespace. It also offers HTML-to-Markdown preprocessing for raw text
// copied out of chat UIs or scraped pages.
//
// All cleaning functions are pure, never fail, and return the trimmed
// input unchanged when there is nothing to remove.
package sanitize
