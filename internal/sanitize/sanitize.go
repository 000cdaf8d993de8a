// Package sanitize strips markup and script content from free-text fields
// before they reach storage. Structured fields (IDs, enums, dates, amounts)
// are validated instead and never pass through here.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	scriptRe = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	styleRe  = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style>`)
	tagRe    = regexp.MustCompile(`(?s)<[^>]*>`)
	eventRe  = regexp.MustCompile(`(?i)\bjavascript:`)
)

// Text removes script/style blocks, remaining markup tags, and javascript:
// URL schemes from s, then trims surrounding whitespace.
func Text(s string) string {
	s = scriptRe.ReplaceAllString(s, "")
	s = styleRe.ReplaceAllString(s, "")
	s = tagRe.ReplaceAllString(s, "")
	s = eventRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// TextPtr sanitizes an optional string in place, preserving nil.
func TextPtr(p *string) *string {
	if p == nil {
		return nil
	}
	clean := Text(*p)
	return &clean
}
