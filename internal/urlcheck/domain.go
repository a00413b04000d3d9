package urlcheck

import (
	"net/url"
	"strings"
)

// ExtractDomain returns the hostname of rawURL, lowercased and without a
// leading "www.". Returns "" when no hostname can be determined.
func ExtractDomain(rawURL string) string {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return ""
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return ""
	}
	host := strings.ToLower(parsed.Hostname())
	return strings.TrimPrefix(host, "www.")
}

// IsSameDomain reports whether two URLs point at the same canonical
// host. The comparison ignores a leading "www." but treats subdomains
// as different domains: blog.example.com is not example.com. This keeps
// a crawl scoped to the site it started on rather than the whole
// domain tree.
func IsSameDomain(a, b string) bool {
	da := ExtractDomain(a)
	db := ExtractDomain(b)
	if da == "" || db == "" {
		return false
	}
	return da == db
}
