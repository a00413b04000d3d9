// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/site-importer/internal/merge"
	"github.com/jonathan/site-importer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max-3] + "..."
	}
	return s
}

// PrintCrawlSummary outputs a human-readable summary of a crawl run.
func (p *Printer) PrintCrawlSummary(pages []types.PageRecord, reason string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Pages fetched: %d\n", len(pages)))
	sb.WriteString(fmt.Sprintf("Stopped:       %s\n", reason))

	if len(pages) > 0 {
		sb.WriteString("\n")
		count := min(len(pages), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("• %s\n", truncate(pages[i].URL, 50)))
		}
		if len(pages) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more pages\n", len(pages)-maxItemsToShow))
		}
	}

	p.printBox("CRAWL SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestionBundle outputs the extracted suggestion bundle.
func (p *Printer) PrintSuggestionBundle(bundle *types.ImportSuggestionBundle) {
	if bundle == nil {
		return
	}

	var sb strings.Builder
	if bundle.BusinessName != "" {
		sb.WriteString(fmt.Sprintf("Business: %s\n", truncate(bundle.BusinessName, 40)))
	}
	sb.WriteString(fmt.Sprintf("Pages scanned: %d  (%.1fs)\n\n", bundle.PagesScanned, float64(bundle.ScanDurationMs)/1000))

	if len(bundle.Services) > 0 {
		sb.WriteString(fmt.Sprintf("Services (%d):\n", len(bundle.Services)))
		count := min(len(bundle.Services), maxItemsToShow)
		for i := 0; i < count; i++ {
			svc := bundle.Services[i]
			sb.WriteString(fmt.Sprintf("  • %s", truncate(svc.Name, 35)))
			if svc.Price != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", svc.Price))
			}
			sb.WriteString("\n")
		}
		if len(bundle.Services) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(bundle.Services)-maxItemsToShow))
		}
	}

	if len(bundle.Faqs) > 0 {
		sb.WriteString(fmt.Sprintf("FAQs (%d):\n", len(bundle.Faqs)))
		count := min(len(bundle.Faqs), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", truncate(bundle.Faqs[i].Question, 45)))
		}
		if len(bundle.Faqs) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(bundle.Faqs)-3))
		}
	}

	for _, booking := range bundle.BookingLinks {
		sb.WriteString(fmt.Sprintf("Booking: %s (%s)\n", truncate(booking.URL, 35), booking.Provider))
	}
	for _, social := range bundle.SocialLinks {
		sb.WriteString(fmt.Sprintf("Social:  %s\n", truncate(social.URL, 42)))
	}
	if len(bundle.Contacts) > 0 {
		sb.WriteString(fmt.Sprintf("Contacts: %d  Policies: %d\n", len(bundle.Contacts), len(bundle.Policies)))
	}

	p.printBox("EXTRACTED SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMergeResult outputs what a merge decided per category.
func (p *Printer) PrintMergeResult(result *merge.ProcessResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Services: %d to add, %d duplicates\n",
		len(result.Services.ToAdd), len(result.Services.Duplicates)))
	sb.WriteString(fmt.Sprintf("FAQs:     %d to add, %d duplicates\n",
		len(result.Faqs.ToAdd), len(result.Faqs.Duplicates)))

	if len(result.Contact.Filled) > 0 {
		sb.WriteString(fmt.Sprintf("Contact filled:  %s\n", strings.Join(result.Contact.Filled, ", ")))
	}
	if len(result.Contact.Skipped) > 0 {
		sb.WriteString(fmt.Sprintf("Contact skipped: %s\n", strings.Join(result.Contact.Skipped, ", ")))
	}

	count := min(len(result.Services.Duplicates), 3)
	if count > 0 {
		sb.WriteString("\nDuplicate services:\n")
		for i := 0; i < count; i++ {
			dup := result.Services.Duplicates[i]
			sb.WriteString(fmt.Sprintf("  • %s ≈ %s\n",
				truncate(dup.Item.Name, 22), truncate(dup.ExistingMatch, 22)))
		}
	}

	p.printBox("MERGE RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProvenance outputs the audit record for an applied import.
func (p *Printer) PrintProvenance(record types.ProvenanceRecord) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source:    %s\n", record.Source))
	sb.WriteString(fmt.Sprintf("Scan date: %s\n", record.ScanDate.Format("2006-01-02 15:04 MST")))
	sb.WriteString(fmt.Sprintf("Pages:     %d\n\n", len(record.SourceURLs)))
	sb.WriteString("Items added:\n")
	sb.WriteString(fmt.Sprintf("  services %d, faqs %d, contacts %d\n",
		record.ItemsAdded.Services, record.ItemsAdded.Faqs, record.ItemsAdded.Contacts))
	sb.WriteString(fmt.Sprintf("  booking %d, social %d, policies %d",
		record.ItemsAdded.BookingLinks, record.ItemsAdded.SocialLinks, record.ItemsAdded.Policies))

	p.printBox("IMPORT PROVENANCE", sb.String())
}
