package crawling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLinks_ResolvesRelativeLinks(t *testing.T) {
	html := `<body>
		<a href="/services">Services</a>
		<a href="contact">Contact</a>
		<a href="https://example.com/about">About</a>
	</body>`

	links, err := ExtractLinks(html, "https://example.com/home")
	require.NoError(t, err)

	assert.Contains(t, links, "https://example.com/services")
	assert.Contains(t, links, "https://example.com/contact")
	assert.Contains(t, links, "https://example.com/about")
}

func TestExtractLinks_KeepsExternalLinks(t *testing.T) {
	html := `<body>
		<a href="https://calendly.com/mybiz">Book</a>
		<a href="https://www.facebook.com/mybiz">Facebook</a>
	</body>`

	links, err := ExtractLinks(html, "https://example.com")
	require.NoError(t, err)

	assert.Contains(t, links, "https://calendly.com/mybiz")
	assert.Contains(t, links, "https://www.facebook.com/mybiz")
}

func TestExtractLinks_StripsFragmentsAndDedupes(t *testing.T) {
	html := `<body>
		<a href="/pricing#top">Pricing</a>
		<a href="/pricing#plans">Plans</a>
		<a href="/pricing/">Pricing again</a>
	</body>`

	links, err := ExtractLinks(html, "https://example.com")
	require.NoError(t, err)

	assert.Equal(t, []string{"https://example.com/pricing"}, links)
}

func TestExtractLinks_SkipsNonHTTPSchemes(t *testing.T) {
	html := `<body>
		<a href="mailto:info@example.com">Email</a>
		<a href="tel:+15551234">Call</a>
		<a href="javascript:void(0)">Menu</a>
		<a href="/real">Real</a>
	</body>`

	links, err := ExtractLinks(html, "https://example.com")
	require.NoError(t, err)

	assert.Equal(t, []string{"https://example.com/real"}, links)
}

func TestExtractLinks_InvalidBaseURL(t *testing.T) {
	_, err := ExtractLinks("<a href='/x'>x</a>", "not-a-url")
	require.Error(t, err)

	var linkErr *LinkExtractionError
	assert.ErrorAs(t, err, &linkErr)
}

func TestNormalizeURLString_Canonicalizes(t *testing.T) {
	assert.Equal(t, "https://example.com/a", NormalizeURLString("https://EXAMPLE.com/a/#frag"))
	assert.Equal(t, "https://example.com", NormalizeURLString("https://example.com/"))
}
