// ABOUTME: HTML utilities for turning feed markup into plain-text excerpts
// ABOUTME: Uses goquery so entity decoding and nested markup are handled by a real parser

package html

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML returns the visible text of an HTML fragment with whitespace collapsed.
// Script and style bodies are dropped. Input that fails to parse is returned trimmed.
func StripHTML(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}

	doc.Find("script, style, noscript").Remove()

	return strings.Join(strings.Fields(doc.Text()), " ")
}

// Excerpt strips fragment and keeps at most maxWords words, adding "..." when cut.
// maxWords <= 0 keeps everything.
func Excerpt(fragment string, maxWords int) string {
	text := StripHTML(fragment)
	if maxWords <= 0 {
		return text
	}

	words := strings.Fields(text)
	if len(words) <= maxWords {
		return text
	}

	return strings.Join(words[:maxWords], " ") + "..."
}
