package extraction

import (
	"context"
	"encoding/json"

	"github.com/jonathan/site-importer/internal/llm"
	"github.com/jonathan/site-importer/internal/prompts"
	"github.com/jonathan/site-importer/internal/types"
	"github.com/jonathan/site-importer/internal/urlcheck"
)

// FallbackDescription marks records produced when the extraction
// service failed; callers can surface it and offer a retry.
const FallbackDescription = "extraction failed"

// ExtractSinglePage sends one page's normalized text to the extraction
// service. It always yields a usable record: on any failure (network,
// malformed JSON, empty response) it falls back to a minimal record
// named after the page title or, failing that, the domain.
func (a *Adapter) ExtractSinglePage(ctx context.Context, pageURL, title, text string) *types.WebsiteExtraction {
	prompt := prompts.Format(prompts.MustGet("extraction.json", "single-page"), map[string]string{
		"Title": title,
		"Text":  text,
	})

	responseText, err := a.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		a.logf("extraction: single-page call failed for %s: %v", pageURL, err)
		return fallbackExtraction(pageURL, title)
	}

	var extracted types.WebsiteExtraction
	if err := json.Unmarshal([]byte(responseText), &extracted); err != nil {
		a.logf("extraction: malformed single-page response for %s: %v", pageURL,
			&ExtractionError{Message: "failed to unmarshal response", Cause: err})
		return fallbackExtraction(pageURL, title)
	}

	if extracted.BusinessName == "" {
		extracted.BusinessName = titleOrDomain(pageURL, title)
	}
	for i := range extracted.Faqs {
		if extracted.Faqs[i].SourcePageURL == "" {
			extracted.Faqs[i].SourcePageURL = pageURL
		}
	}
	return &extracted
}

// fallbackExtraction is the minimal always-usable record.
func fallbackExtraction(pageURL, title string) *types.WebsiteExtraction {
	return &types.WebsiteExtraction{
		BusinessName: titleOrDomain(pageURL, title),
		Description:  FallbackDescription,
	}
}

func titleOrDomain(pageURL, title string) string {
	if title != "" {
		return title
	}
	if domain := urlcheck.ExtractDomain(pageURL); domain != "" {
		return domain
	}
	return pageURL
}
