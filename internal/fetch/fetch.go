// Package fetch performs bounded single-page HTTP fetches and converts
// raw HTML into normalized plain text for downstream extraction.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// DefaultTimeout is the HTTP request timeout for standalone fetches.
// The crawler drives fetches with a tighter per-page timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent mimics a current desktop browser; many business
// sites serve stripped or blocked responses to obvious bots.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

const acceptHeader = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"

// Error represents a failed page fetch. A single fetch failure never
// aborts a crawl run; callers log and move on.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures fetch behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string
	// RequireHTML rejects responses whose Content-Type is not HTML.
	// The crawler sets this; a non-HTML asset linked from a page is a
	// skipped entry, not page content.
	RequireHTML bool
}

// DefaultOptions returns sensible defaults for a standalone fetch.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// Result holds the raw markup and the two fields pulled from it.
type Result struct {
	URL             string
	HTML            string
	Title           string
	MetaDescription string
	ContentType     string
	StatusCode      int
}

var (
	titleRe    = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	metaDescRe = regexp.MustCompile(`(?is)<meta[^>]+name=["']description["'][^>]*>`)
	contentRe  = regexp.MustCompile(`(?is)content=["']([^"']*)["']`)
)

// Webpage performs one bounded GET and extracts title and
// meta-description from the raw markup. Pattern matching is deliberate
// here: two fields do not justify a DOM parse.
func Webpage(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	// Defaults are filled on a copy; callers share Options structs
	// across fetches.
	var o Options
	if opts != nil {
		o = *opts
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.UserAgent == "" {
		o.UserAgent = DefaultUserAgent
	}

	client := &http.Client{Timeout: o.Timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to create request", Cause: err}
	}

	req.Header.Set("User-Agent", o.UserAgent)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	for key, value := range o.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	contentType := resp.Header.Get("Content-Type")
	if o.RequireHTML && contentType != "" && !strings.Contains(strings.ToLower(contentType), "text/html") {
		return nil, &Error{URL: urlStr, Message: "non-HTML content type " + contentType}
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to read response body", Cause: err}
	}

	html := string(bodyBytes)
	return &Result{
		URL:             urlStr,
		HTML:            html,
		Title:           extractTitle(html),
		MetaDescription: extractMetaDescription(html),
		ContentType:     contentType,
		StatusCode:      resp.StatusCode,
	}, nil
}

func extractTitle(html string) string {
	m := titleRe.FindStringSubmatch(html)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(decodeEntities(m[1]))
}

func extractMetaDescription(html string) string {
	tag := metaDescRe.FindString(html)
	if tag == "" {
		return ""
	}
	m := contentRe.FindStringSubmatch(tag)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(decodeEntities(m[1]))
}
