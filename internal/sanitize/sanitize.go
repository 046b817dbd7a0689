// Package sanitize turns HTML-bearing upstream text into bounded plain text.
package sanitize

import (
	"regexp"
	"strings"
)

// MaxLength bounds the cleaned text; longer output is truncated and marked
// with Ellipsis.
const (
	MaxLength = 300
	Ellipsis  = "..."
)

var (
	// tagPattern matches any tag markup, including unclosed fragments.
	tagPattern = regexp.MustCompile(`<[^>]*>`)
	// spacePattern collapses runs of whitespace left behind by tag removal.
	spacePattern = regexp.MustCompile(`\s+`)
)

// entityReplacer decodes the entity set job boards actually emit in
// descriptions. Tags are stripped first, so decoded < and > cannot
// reintroduce markup.
var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
)

// Clean strips tag markup, decodes entities, collapses whitespace, trims, and
// truncates to MaxLength characters. Pure and total: empty input yields "".
func Clean(raw string) string {
	if raw == "" {
		return ""
	}

	text := tagPattern.ReplaceAllString(raw, " ")
	text = entityReplacer.Replace(text)
	text = spacePattern.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	runes := []rune(text)
	if len(runes) > MaxLength {
		return string(runes[:MaxLength]) + Ellipsis
	}
	return text
}
