// Package imagepath canonicalizes admin-entered image references so that
// stored values are always absolute URLs or leading-slash site paths.
package imagepath

import (
	"regexp"
	"strings"
)

// absoluteURLRe matches anything with a URI scheme ("https:", "data:", ...).
var absoluteURLRe = regexp.MustCompile(`(?i)^[a-z][a-z0-9+.-]*:`)

// Normalize returns the canonical form of an image path. Empty input stays
// empty, absolute URLs and leading-slash paths are left alone, and bare
// relative paths get a leading slash. Normalize is idempotent.
func Normalize(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "/") {
		return trimmed
	}
	if absoluteURLRe.MatchString(trimmed) {
		return trimmed
	}
	return "/" + trimmed
}
