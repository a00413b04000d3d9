package urlcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateWebsiteURL_RejectsDangerousSchemes(t *testing.T) {
	dangerous := []string{
		"javascript:alert(1)",
		"data:text/html,<script>alert(1)</script>",
		"file:///etc/passwd",
		"vbscript:msgbox(1)",
		"blob:https://example.com/uuid",
		"JavaScript:alert(1)",
	}

	for _, raw := range dangerous {
		_, err := ValidateWebsiteURL(raw)
		assert.Error(t, err, "should reject %q", raw)

		_, err = ValidateBookingURL(raw)
		assert.Error(t, err, "booking validator should reject %q", raw)
	}
}

func TestValidateWebsiteURL_DefaultsToHTTPS(t *testing.T) {
	normalized, err := ValidateWebsiteURL("example.com/about")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/about", normalized)
}

func TestValidateWebsiteURL_AcceptsPlainHTTP(t *testing.T) {
	normalized, err := ValidateWebsiteURL("http://x.com")
	require.NoError(t, err)
	assert.Equal(t, "http://x.com", normalized)
}

func TestValidateWebsiteURL_RejectsEmptyAndHostless(t *testing.T) {
	_, err := ValidateWebsiteURL("")
	assert.Error(t, err)

	_, err = ValidateWebsiteURL("   ")
	assert.Error(t, err)

	_, err = ValidateWebsiteURL("https://nodots")
	assert.Error(t, err)
}

func TestValidateBookingURL_RequiresHTTPS(t *testing.T) {
	_, err := ValidateBookingURL("http://x.com")
	assert.Error(t, err)
}

func TestValidateBookingURL_RejectsPaymentURLs(t *testing.T) {
	rejected := []string{
		"https://stripe.com/pay",
		"https://paypal.com/mybiz",
		"https://venmo.com/mybiz",
		"https://example.com/checkout",
		"https://pay.example.com/invoice",
		"https://example.com/payment-portal",
		"https://evil.example.com/go/paypal.com",
		"https://paypal.com.evil.example.com/book",
	}

	for _, raw := range rejected {
		_, err := ValidateBookingURL(raw)
		assert.Error(t, err, "should reject %q", raw)
	}
}

func TestValidateBookingURL_ClassifiesKnownProvider(t *testing.T) {
	booking, err := ValidateBookingURL("calendly.com/me")
	require.NoError(t, err)

	assert.Equal(t, "https://calendly.com/me", booking.URL)
	assert.True(t, booking.IsBookingProvider)
	assert.Equal(t, "Calendly", booking.ProviderName)
}

func TestValidateBookingURL_ProviderSubdomain(t *testing.T) {
	booking, err := ValidateBookingURL("https://mybiz.setmore.com")
	require.NoError(t, err)

	assert.True(t, booking.IsBookingProvider)
	assert.Equal(t, "Setmore", booking.ProviderName)
}

func TestValidateBookingURL_CustomProviderStillValid(t *testing.T) {
	booking, err := ValidateBookingURL("https://booking.mybarber.example")
	require.NoError(t, err)

	assert.False(t, booking.IsBookingProvider)
	assert.Empty(t, booking.ProviderName)
}

func TestExtractDomain_StripsWWW(t *testing.T) {
	assert.Equal(t, "a.com", ExtractDomain("https://www.a.com/path"))
	assert.Equal(t, "a.com", ExtractDomain("a.com"))
	assert.Equal(t, "blog.a.com", ExtractDomain("https://blog.a.com"))
	assert.Empty(t, ExtractDomain(""))
}

func TestIsSameDomain_WWWInsensitive(t *testing.T) {
	assert.True(t, IsSameDomain("https://www.a.com", "https://a.com"))
}

func TestIsSameDomain_SubdomainsDiffer(t *testing.T) {
	assert.False(t, IsSameDomain("https://a.com", "https://blog.a.com"))
}
