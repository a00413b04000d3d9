package crawling

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractLinks extracts all absolute links from HTML content, resolved
// against baseURL. External links are kept: the extraction adapter
// mines them for booking and social-media providers. Fragments are
// stripped and trailing slashes removed so the same page dedupes to
// one entry.
func ExtractLinks(htmlContent string, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, &LinkExtractionError{Message: "failed to parse base URL", Cause: err}
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, &LinkExtractionError{
			Message: fmt.Sprintf("invalid base URL: %s (must have scheme and host)", baseURL),
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, &LinkExtractionError{Message: "failed to parse HTML", Cause: err}
	}

	linkSet := make(map[string]bool)
	links := make([]string, 0)

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists || href == "" {
			return
		}

		linkURL, err := url.Parse(href)
		if err != nil {
			return
		}

		absolute := base.ResolveReference(linkURL)
		if absolute.Scheme != "http" && absolute.Scheme != "https" {
			return
		}

		normalized := NormalizeURL(absolute)
		if !linkSet[normalized] {
			linkSet[normalized] = true
			links = append(links, normalized)
		}
	})

	return links, nil
}

// NormalizeURL canonicalizes a parsed URL for visited-set membership:
// lowercase host, no fragment, no trailing slash.
func NormalizeURL(u *url.URL) string {
	clone := *u
	clone.Fragment = ""
	clone.Host = strings.ToLower(clone.Host)
	return strings.TrimSuffix(clone.String(), "/")
}

// NormalizeURLString is NormalizeURL for raw strings; it returns the
// input unchanged when it cannot be parsed.
func NormalizeURLString(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return NormalizeURL(parsed)
}
