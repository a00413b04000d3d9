package urlcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectBookingLinks_ClassifiesProviders(t *testing.T) {
	urls := []string{
		"https://example.com/about",
		"https://calendly.com/mybiz/30min",
		"https://www.facebook.com/mybiz",
	}

	suggestions := DetectBookingLinks(urls, "https://example.com")
	require.Len(t, suggestions, 1)

	assert.Equal(t, "Calendly", suggestions[0].Provider)
	assert.Equal(t, "https://calendly.com/mybiz/30min", suggestions[0].URL)
	assert.Equal(t, "https://example.com", suggestions[0].SourcePageURL)
	assert.InDelta(t, BookingLinkConfidence, suggestions[0].Confidence, 1e-9)
}

func TestDetectBookingLinks_OnePerProvider(t *testing.T) {
	urls := []string{
		"https://calendly.com/mybiz/30min",
		"https://calendly.com/mybiz/60min",
	}

	suggestions := DetectBookingLinks(urls, "https://example.com")
	assert.Len(t, suggestions, 1)
}

func TestDetectBookingLinks_SkipsPaymentLinks(t *testing.T) {
	urls := []string{
		"https://stripe.com/pay/mybiz",
		"https://example.com/checkout",
	}

	suggestions := DetectBookingLinks(urls, "https://example.com")
	assert.Empty(t, suggestions)
}

func TestDetectSocialLinks_ClassifiesPlatforms(t *testing.T) {
	urls := []string{
		"https://www.facebook.com/mybiz",
		"https://instagram.com/mybiz",
		"https://example.com/contact",
	}

	suggestions := DetectSocialLinks(urls, "https://example.com")
	require.Len(t, suggestions, 2)

	platforms := []string{suggestions[0].Platform, suggestions[1].Platform}
	assert.Contains(t, platforms, "facebook")
	assert.Contains(t, platforms, "instagram")
	for _, s := range suggestions {
		assert.InDelta(t, SocialLinkConfidence, s.Confidence, 1e-9)
		assert.Equal(t, "https://example.com", s.SourcePageURL)
	}
}

func TestDetectSocialLinks_OnePerPlatform(t *testing.T) {
	urls := []string{
		"https://twitter.com/mybiz",
		"https://x.com/mybiz",
	}

	suggestions := DetectSocialLinks(urls, "https://example.com")
	assert.Len(t, suggestions, 1)
	assert.Equal(t, "twitter", suggestions[0].Platform)
}
