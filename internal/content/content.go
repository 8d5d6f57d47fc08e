// Package content holds small helpers for post bodies, which may be
// HTML or Markdown and are disambiguated by tag sniffing.
package content

import (
	"regexp"
	"strings"
)

// ExcerptLength is the maximum rune length of a derived excerpt.
const ExcerptLength = 150

var (
	tagSniff   = regexp.MustCompile(`(?i)</?[a-z][\s\S]*>`)
	tagStrip   = regexp.MustCompile(`<[^>]+>`)
	whitespace = regexp.MustCompile(`\s+`)
)

// IsHTML reports whether text contains markup tags and should be
// rendered as HTML rather than Markdown.
func IsHTML(text string) bool {
	return tagSniff.MatchString(text)
}

// Excerpt derives a short summary from an HTML body: tags stripped,
// whitespace collapsed, truncated to ExcerptLength runes with an
// ellipsis when the text is longer.
func Excerpt(html string) string {
	plain := tagStrip.ReplaceAllString(html, " ")
	plain = strings.TrimSpace(whitespace.ReplaceAllString(plain, " "))

	runes := []rune(plain)
	if len(runes) <= ExcerptLength {
		return plain
	}
	return string(runes[:ExcerptLength]) + "..."
}
