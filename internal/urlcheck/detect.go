package urlcheck

import (
	"github.com/jonathan/site-importer/internal/types"
)

// DetectBookingLinks classifies a pool of links against the booking
// provider table and returns a suggestion per recognized provider.
// Each provider is reported once; the first matching link wins.
// sourceURL attributes the suggestions to the page the links came from.
func DetectBookingLinks(urls []string, sourceURL string) []types.BookingLinkSuggestion {
	suggestions := make([]types.BookingLinkSuggestion, 0)
	seen := make(map[string]bool)

	for _, raw := range urls {
		booking, err := ValidateBookingURL(raw)
		if err != nil || !booking.IsBookingProvider {
			continue
		}
		if seen[booking.ProviderName] {
			continue
		}
		seen[booking.ProviderName] = true
		suggestions = append(suggestions, types.BookingLinkSuggestion{
			URL:           booking.URL,
			Provider:      booking.ProviderName,
			SourcePageURL: sourceURL,
			Confidence:    BookingLinkConfidence,
		})
	}
	return suggestions
}

// DetectSocialLinks classifies a pool of links against the social
// platform table. Each platform is reported once; the first matching
// link wins.
func DetectSocialLinks(urls []string, sourceURL string) []types.SocialLinkSuggestion {
	suggestions := make([]types.SocialLinkSuggestion, 0)
	seen := make(map[string]bool)

	for _, raw := range urls {
		normalized, err := ValidateWebsiteURL(raw)
		if err != nil {
			continue
		}
		host := hostOf(normalized)
		for domain, platform := range socialPlatforms {
			if !hostMatches(host, domain) {
				continue
			}
			if seen[platform] {
				break
			}
			seen[platform] = true
			suggestions = append(suggestions, types.SocialLinkSuggestion{
				Platform:      platform,
				URL:           normalized,
				SourcePageURL: sourceURL,
				Confidence:    SocialLinkConfidence,
			})
			break
		}
	}
	return suggestions
}
