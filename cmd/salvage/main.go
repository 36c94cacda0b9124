// Command salvage recovers structured data from LLM output on stdin
// (or a file) and prints it to stdout.
//
//	cat response.txt | salvage                      # resolve one JSON value
//	salvage -f response.txt -mode jsonl -path a     # JSON-Lines with projection
//	salvage -mode tagged -sort-by-id < response.txt # tagged lines
//
// Defaults for -mode and -pattern can come from the SALVAGE_MODE and
// SALVAGE_PATTERN environment variables; a .env file in the working
// directory is loaded automatically.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/tidwall/gjson"

	"github.com/leofalp/salvage/core/jsonl"
	"github.com/leofalp/salvage/core/resolve"
	"github.com/leofalp/salvage/core/sanitize"
	"github.com/leofalp/salvage/core/tagline"
	"github.com/leofalp/salvage/internal/utils"
)

func main() {
	var (
		mode       = flag.String("mode", envOr("SALVAGE_MODE", "value"), "parse mode: value, jsonl or tagged")
		file       = flag.String("f", "", "read input from file instead of stdin")
		path       = flag.String("path", "", "dot-separated projection path (jsonl mode)")
		pattern    = flag.String("pattern", envOr("SALVAGE_PATTERN", ""), "line pattern (tagged mode)")
		sortByID   = flag.Bool("sort-by-id", false, "sort tagged records by id")
		sortByLine = flag.Bool("sort-by-line", false, "sort tagged records by line number")
		flagNames  = flag.String("flags", "", "regex flags (tagged mode): dotall,multiline,ignorecase")
		html       = flag.Bool("html", false, "convert HTML input to markdown before parsing")
		query      = flag.String("query", "", "gjson path applied to the resolved value (value mode)")
		pretty     = flag.Bool("pretty", false, "indent JSON output")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	raw, err := readInput(*file)
	if err != nil {
		logger.Error("failed to read input", "error", err)
		os.Exit(1)
	}
	if *html {
		raw, err = sanitize.FromHTML(raw)
		if err != nil {
			logger.Error("failed to convert HTML input", "error", err)
			os.Exit(1)
		}
	}

	switch *mode {
	case "value":
		runValue(logger, raw, *query, *pretty)
	case "jsonl":
		runJSONL(logger, raw, *path)
	case "tagged":
		runTagged(logger, raw, &tagline.Options{
			Pattern:          *pattern,
			SortByID:         *sortByID,
			SortByLineNumber: *sortByLine,
			Flags:            *flagNames,
		})
	default:
		logger.Error("unknown mode", "mode", *mode)
		os.Exit(2)
	}
}

func runValue(logger *slog.Logger, raw, query string, pretty bool) {
	value := resolve.Value(raw)
	if value == nil {
		logger.Error("no JSON value could be recovered",
			"input", utils.TruncateStringDefault(raw))
		os.Exit(1)
	}
	out := utils.JSONToString(value, pretty)
	if query != "" {
		result := gjson.Get(utils.JSONToString(value), query)
		if !result.Exists() {
			logger.Error("query matched nothing", "query", query)
			os.Exit(1)
		}
		out = result.String()
	}
	fmt.Println(out)
}

func runJSONL(logger *slog.Logger, raw, path string) {
	lines, err := jsonl.Lines(raw, path)
	if err != nil {
		logger.Error("jsonl parse failed", "error", err,
			"invalid_line", errors.Is(err, jsonl.ErrInvalid))
		os.Exit(1)
	}
	for _, line := range lines {
		fmt.Println(line)
	}
}

func runTagged(logger *slog.Logger, raw string, opts *tagline.Options) {
	texts, err := tagline.Lines(raw, opts)
	if err != nil {
		logger.Error("tagged parse failed", "error", err)
		os.Exit(1)
	}
	for _, text := range texts {
		fmt.Println(text)
	}
}

func readInput(file string) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
