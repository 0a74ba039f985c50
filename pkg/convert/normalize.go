package convert

import (
	"html"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy

	lineBreakTagPattern = regexp.MustCompile(`(?i)<\s*(?:br\s*/?|/p|/div|/h[1-6]|/li|/tr)\s*>`)
	blankRunPattern     = regexp.MustCompile(`\n{3,}`)
	spaceRunPattern     = regexp.MustCompile(`[ \t]{2,}`)
)

// Normalize collapses line endings to \n and strips control characters other
// than newline and tab. Detection offsets are only meaningful against text
// that went through this normalization.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	replaced := strings.ReplaceAll(text, "\r\n", "\n")
	replaced = strings.ReplaceAll(replaced, "\r", "\n")

	var out strings.Builder
	out.Grow(len(replaced))
	for _, r := range replaced {
		if r == '\n' || r == '\t' || (r >= 0x20 && r != 0x7f) {
			out.WriteRune(r)
		}
	}
	return out.String()
}

// HTMLToText strips markup from an HTML rendition and returns normalized
// plain text. Block-level closings become line breaks before tags are removed
// so adjacent paragraphs do not run together.
func HTMLToText(markup string) string {
	if strings.TrimSpace(markup) == "" {
		return ""
	}
	withBreaks := lineBreakTagPattern.ReplaceAllString(markup, "\n")
	stripped := strictTextPolicy().Sanitize(withBreaks)
	decoded := html.UnescapeString(stripped)

	normalized := Normalize(decoded)
	normalized = spaceRunPattern.ReplaceAllString(normalized, " ")
	normalized = blankRunPattern.ReplaceAllString(normalized, "\n\n")
	return strings.TrimSpace(normalized)
}

func strictTextPolicy() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
