package urlutil

import (
	"strings"

	"golang.org/x/net/idna"
)

// BareDomain returns the host portion of a URL: the text after the
// scheme's "//" up to the next "/". Query and fragment never survive
// because they cannot appear before the first path slash. Inputs without
// a scheme pass through with only the path stripped.
func BareDomain(rawURL string) string {
	s := rawURL
	if i := strings.Index(s, "//"); i >= 0 {
		s = s[i+2:]
	}
	if i := strings.Index(s, "/"); i >= 0 {
		s = s[:i]
	}
	return s
}

// NormalizeDomain lowercases a domain and converts internationalized
// names to their punycode form, which is what WHOIS and archive services
// expect. On conversion failure the lowercased input is returned as-is.
func NormalizeDomain(domain string) string {
	d := strings.ToLower(strings.TrimSpace(domain))
	if puny, err := idna.Lookup.ToASCII(d); err == nil {
		return puny
	}
	return d
}
