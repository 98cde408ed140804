package app

import (
	"net/url"
	"strings"
)

// extractOriginHost returns the "host[:port]" portion of an Origin header
// value. Values that do not parse as a URL pass through unchanged.
func extractOriginHost(origin string) string {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return origin
	}
	return u.Host
}

// matchOriginPattern reports whether host matches an allowed-origin pattern.
// "*.example.com" admits any subdomain; "localhost:*" admits any port.
func matchOriginPattern(pattern, host string) bool {
	if pattern == host {
		return true
	}
	if strings.HasPrefix(pattern, "*.") {
		return strings.HasSuffix(host, pattern[1:])
	}
	if strings.HasSuffix(pattern, ":*") {
		return strings.HasPrefix(host, pattern[:len(pattern)-1])
	}
	return false
}
