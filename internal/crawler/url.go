package crawler

import (
	"net/url"
	"strings"
)

// NormalizeURL normalizes an address for deduplication.
//
// Design decision: We normalize URLs because:
//  1. The same page can have different URL representations
//  2. Fragment (#anchor) doesn't change content
//  3. http://example.com and http://example.com/ are the same page
//
// The query string is preserved verbatim: reordering query keys produces
// a distinct address on purpose, since servers may treat them differently.
// The function is pure and idempotent; normalizing an already-normalized
// address returns it unchanged.
func NormalizeURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	// Remove fragment
	u.Fragment = ""

	// Normalize scheme and host to lowercase
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)

	// Empty path and "/" are equivalent
	if u.Path == "" {
		u.Path = "/"
	}

	return u.String()
}

// SameHost reports whether the target address is on the given host.
// Used when the crawl is scoped to the seed's host.
func SameHost(baseHost, targetURL string) bool {
	u, err := url.Parse(targetURL)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, baseHost)
}
