package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/site-importer/internal/crawling"
	"github.com/jonathan/site-importer/internal/fetch"
	"github.com/jonathan/site-importer/internal/llm"
	"github.com/jonathan/site-importer/internal/prompts"
	"github.com/jonathan/site-importer/internal/schemas"
	"github.com/jonathan/site-importer/internal/types"
	"github.com/jonathan/site-importer/internal/urlcheck"
)

// Per-prompt text caps. Caps bound the cost of the one extraction call
// a run makes; pages beyond the total cap simply are not quoted.
const (
	PerPageTextCap = 5000
	TotalTextCap   = 30000
)

// pageHeader introduces each page section in the combined prompt. The
// model copies source_page_url values from these headers.
const pageHeader = "=== PAGE: %s ===\n"

// multiPagePayload mirrors the JSON the multi-page prompt requests.
type multiPagePayload struct {
	BusinessName string                    `json:"business_name"`
	Tagline      string                    `json:"tagline"`
	Description  string                    `json:"description"`
	Services     []types.ServiceSuggestion `json:"services"`
	Faqs         []types.FaqSuggestion     `json:"faqs"`
	Contacts     []types.ContactSuggestion `json:"contacts"`
	Policies     []types.PolicySuggestion  `json:"policies"`
}

// ExtractFromCrawl converts a crawl run into an ImportSuggestionBundle.
// Booking and social links are derived deterministically from the
// crawled link pool before the extraction service is consulted, so a
// service failure still produces those suggestions: partial success
// beats total failure. The transform is pure; nothing is persisted.
func (a *Adapter) ExtractFromCrawl(ctx context.Context, crawl *crawling.Result) *types.ImportSuggestionBundle {
	bundle := &types.ImportSuggestionBundle{
		Services:     make([]types.ServiceSuggestion, 0),
		Faqs:         make([]types.FaqSuggestion, 0),
		Contacts:     make([]types.ContactSuggestion, 0),
		BookingLinks: make([]types.BookingLinkSuggestion, 0),
		SocialLinks:  make([]types.SocialLinkSuggestion, 0),
		Policies:     make([]types.PolicySuggestion, 0),
		PagesScanned: len(crawl.Pages),
		SourceURLs:   make([]string, 0, len(crawl.Pages)),
	}
	bundle.ScanDurationMs = crawl.Duration.Milliseconds()

	crawled := make(map[string]bool, len(crawl.Pages))
	for _, page := range crawl.Pages {
		bundle.SourceURLs = append(bundle.SourceURLs, page.URL)
		crawled[page.URL] = true
	}

	a.detectLinkSuggestions(crawl.Pages, bundle)

	if len(crawl.Pages) == 0 {
		return bundle
	}

	prompt := prompts.Format(prompts.MustGet("extraction.json", "multi-page"), map[string]string{
		"Pages": combinePageTexts(crawl.Pages),
	})

	responseText, err := a.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		a.logf("extraction: multi-page call failed for %s: %v", crawl.StartURL, err)
		return bundle
	}

	if err := schemas.ValidateExtractionPayload(responseText); err != nil {
		a.logf("extraction: invalid multi-page payload for %s: %v", crawl.StartURL, err)
		return bundle
	}

	var payload multiPagePayload
	if err := json.Unmarshal([]byte(responseText), &payload); err != nil {
		a.logf("extraction: malformed multi-page response for %s: %v", crawl.StartURL,
			&ExtractionError{Message: "failed to unmarshal response", Cause: err})
		return bundle
	}

	a.mergePayload(bundle, &payload, crawled, crawl.StartURL)
	return bundle
}

// detectLinkSuggestions runs the deterministic booking/social
// classifiers over every page's outbound links. One suggestion per
// provider and platform across the whole run; the first page wins.
func (a *Adapter) detectLinkSuggestions(pages []types.PageRecord, bundle *types.ImportSuggestionBundle) {
	seenProviders := make(map[string]bool)
	seenPlatforms := make(map[string]bool)

	for _, page := range pages {
		for _, booking := range urlcheck.DetectBookingLinks(page.OutboundLinks, page.URL) {
			key := booking.Provider
			if key == "" {
				key = booking.URL
			}
			if seenProviders[key] {
				continue
			}
			seenProviders[key] = true
			bundle.BookingLinks = append(bundle.BookingLinks, booking)
		}

		for _, social := range urlcheck.DetectSocialLinks(page.OutboundLinks, page.URL) {
			if seenPlatforms[social.Platform] {
				continue
			}
			seenPlatforms[social.Platform] = true
			bundle.SocialLinks = append(bundle.SocialLinks, social)
		}
	}
}

// combinePageTexts concatenates capped page texts under PAGE headers.
func combinePageTexts(pages []types.PageRecord) string {
	var sb strings.Builder
	for _, page := range pages {
		text := fetch.TruncateOnRuneBoundary(page.Text, PerPageTextCap)

		section := fmt.Sprintf(pageHeader, page.URL) + text + "\n\n"
		if sb.Len()+len(section) > TotalTextCap {
			break
		}
		sb.WriteString(section)
	}
	return sb.String()
}

// mergePayload copies service-extracted suggestions into the bundle,
// pinning every source URL to the crawled set (falling back to the
// start URL) and clamping confidences into [0,1].
func (a *Adapter) mergePayload(bundle *types.ImportSuggestionBundle, payload *multiPagePayload, crawled map[string]bool, startURL string) {
	bundle.BusinessName = payload.BusinessName
	bundle.Tagline = payload.Tagline
	bundle.Description = payload.Description

	for _, svc := range payload.Services {
		if strings.TrimSpace(svc.Name) == "" {
			continue
		}
		svc.SourcePageURL = attributeSource(svc.SourcePageURL, crawled, startURL)
		svc.Confidence = clampConfidence(svc.Confidence)
		bundle.Services = append(bundle.Services, svc)
	}

	for _, faq := range payload.Faqs {
		if strings.TrimSpace(faq.Question) == "" {
			continue
		}
		faq.SourcePageURL = attributeSource(faq.SourcePageURL, crawled, startURL)
		faq.Confidence = clampConfidence(faq.Confidence)
		bundle.Faqs = append(bundle.Faqs, faq)
	}

	for _, c := range payload.Contacts {
		if strings.TrimSpace(c.Value) == "" {
			continue
		}
		c.SourcePageURL = attributeSource(c.SourcePageURL, crawled, startURL)
		c.Confidence = clampConfidence(c.Confidence)
		bundle.Contacts = append(bundle.Contacts, c)
	}

	for _, policy := range payload.Policies {
		if strings.TrimSpace(policy.Value) == "" {
			continue
		}
		policy.SourcePageURL = attributeSource(policy.SourcePageURL, crawled, startURL)
		policy.Confidence = clampConfidence(policy.Confidence)
		bundle.Policies = append(bundle.Policies, policy)
	}
}

// attributeSource keeps source attribution honest: a URL the model
// invented is replaced with the start URL.
func attributeSource(sourceURL string, crawled map[string]bool, startURL string) string {
	if crawled[sourceURL] {
		return sourceURL
	}
	return startURL
}

func clampConfidence(c float64) float64 {
	switch {
	case c < 0:
		return 0
	case c > 1:
		return 1
	default:
		return c
	}
}
