package merge

import (
	"time"

	"github.com/jonathan/site-importer/internal/types"
)

// ProvenanceSource identifies this import path in provenance records.
const ProvenanceSource = "website_import"

// ProcessResult is the combined outcome of merging one suggestion
// bundle against an existing business record.
type ProcessResult struct {
	Services   types.MergeResult[types.ServiceSuggestion] `json:"services"`
	Faqs       types.MergeResult[types.FaqSuggestion]     `json:"faqs"`
	Contact    types.ContactMergeResult                   `json:"contact"`
	Provenance types.ProvenanceRecord                     `json:"provenance"`
}

// CreateProvenanceRecord documents where one import run's facts came
// from and how many were added per category.
func CreateProvenanceRecord(sourceURLs []string, counts types.ItemCounts) types.ProvenanceRecord {
	return types.ProvenanceRecord{
		Source:     ProvenanceSource,
		ScanDate:   time.Now().UTC(),
		SourceURLs: sourceURLs,
		ItemsAdded: counts,
	}
}

// ProcessSuggestionsForMerge is the single orchestration entry point:
// it runs the service, FAQ and contact merges and assembles the
// provenance record. It is pure over its inputs; persistence is the
// caller's concern.
func ProcessSuggestionsForMerge(bundle *types.ImportSuggestionBundle, existing *types.ExistingBusinessRecord) *ProcessResult {
	if existing == nil {
		existing = &types.ExistingBusinessRecord{}
	}

	services := DedupeServices(bundle.Services, existing.Services)
	faqs := DedupeFaqs(bundle.Faqs, existing.Faqs)
	contact := MergeContactInfo(bundle.Contacts, existing.Contact)

	counts := types.ItemCounts{
		Services:     len(services.ToAdd),
		Faqs:         len(faqs.ToAdd),
		Contacts:     len(contact.Filled),
		BookingLinks: len(bundle.BookingLinks),
		SocialLinks:  len(bundle.SocialLinks),
		Policies:     len(bundle.Policies),
	}

	return &ProcessResult{
		Services:   services,
		Faqs:       faqs,
		Contact:    contact,
		Provenance: CreateProvenanceRecord(bundle.SourceURLs, counts),
	}
}
