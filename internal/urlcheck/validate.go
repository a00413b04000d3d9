package urlcheck

import (
	"net/url"
	"strings"
)

// ValidateWebsiteURL sanitizes raw into a normalized absolute URL.
// Dangerous schemes (javascript:, data:, file:, vbscript:, blob:) are
// rejected; a missing scheme defaults to https; http and https are
// both accepted.
func ValidateWebsiteURL(raw string) (string, error) {
	return validate(raw, false)
}

// BookingURL is the result of booking-link validation, carrying the
// provider classification alongside the normalized URL.
type BookingURL struct {
	URL               string
	IsBookingProvider bool
	ProviderName      string
}

// ValidateBookingURL is the stricter variant used for links the
// assistant may hand to end users. Plain http is rejected (booking
// links must be HTTPS), and anything payment-related is rejected
// outright. URLs that match no known provider are still valid; the
// business may run a custom booking page.
func ValidateBookingURL(raw string) (*BookingURL, error) {
	normalized, err := validate(raw, true)
	if err != nil {
		return nil, err
	}

	lower := strings.ToLower(normalized)
	for _, kw := range paymentKeywords {
		if strings.Contains(lower, kw) {
			return nil, &ValidationError{URL: raw, Message: "payment-related URLs cannot be used as booking links"}
		}
	}

	// Processor domains are rejected anywhere in the URL, not just as
	// the host. A spoofed host (paypal.com.evil.example) or a redirect
	// path (/go/paypal.com) is as unsafe as the processor itself.
	for _, domain := range paymentDomains {
		if strings.Contains(lower, domain) {
			return nil, &ValidationError{URL: raw, Message: "payment processor domains cannot be used as booking links"}
		}
	}

	host := hostOf(normalized)
	result := &BookingURL{URL: normalized}
	for domain, name := range bookingProviders {
		if hostMatches(host, domain) {
			result.IsBookingProvider = true
			result.ProviderName = name
			break
		}
	}
	return result, nil
}

// validate implements the shared sanitization path. With httpsOnly set,
// plain http URLs are rejected instead of accepted.
func validate(raw string, httpsOnly bool) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", &ValidationError{URL: raw, Message: "URL is empty"}
	}

	lower := strings.ToLower(trimmed)
	for _, scheme := range blockedSchemes {
		if strings.HasPrefix(lower, scheme+":") {
			return "", &ValidationError{URL: raw, Message: "scheme " + scheme + " is not allowed"}
		}
	}

	// Default to https when no scheme is present.
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		if strings.Contains(trimmed, "://") {
			return "", &ValidationError{URL: raw, Message: "unsupported URL scheme"}
		}
		trimmed = "https://" + trimmed
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", &ValidationError{URL: raw, Message: "malformed URL", Cause: err}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", &ValidationError{URL: raw, Message: "unsupported URL scheme " + parsed.Scheme}
	}
	if httpsOnly && parsed.Scheme == "http" {
		return "", &ValidationError{URL: raw, Message: "booking links must use HTTPS"}
	}
	if parsed.Host == "" || !strings.Contains(parsed.Host, ".") {
		return "", &ValidationError{URL: raw, Message: "URL has no valid host"}
	}

	return parsed.String(), nil
}

// hostOf returns the lowercased hostname of an already-validated URL.
func hostOf(validated string) string {
	parsed, err := url.Parse(validated)
	if err != nil {
		return ""
	}
	return strings.ToLower(parsed.Hostname())
}

// hostMatches reports whether host is domain or a subdomain of it.
func hostMatches(host, domain string) bool {
	host = strings.TrimPrefix(host, "www.")
	return host == domain || strings.HasSuffix(host, "."+domain)
}
