package blogservice

import (
	"regexp"
	"strings"
)

var scriptTagPattern = regexp.MustCompile(`(?i)<\s*script[^>]*>(.*?)<\s*/\s*script\s*>`)

// sanitizeText strips script elements and surrounding whitespace from user supplied text.
func sanitizeText(s string) string {
	return strings.TrimSpace(scriptTagPattern.ReplaceAllString(s, ""))
}
