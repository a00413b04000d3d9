package types

// ServiceSuggestion is a candidate service offering extracted from a page.
type ServiceSuggestion struct {
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	Price         string  `json:"price,omitempty"`
	SourcePageURL string  `json:"source_page_url"`
	Confidence    float64 `json:"confidence"`
}

// FaqSuggestion is a candidate question/answer pair extracted from a page.
type FaqSuggestion struct {
	Question      string  `json:"question"`
	Answer        string  `json:"answer"`
	SourcePageURL string  `json:"source_page_url"`
	Confidence    float64 `json:"confidence"`
}

// ContactType identifies which contact field a ContactSuggestion targets.
type ContactType string

// Contact field types recognized by the merge engine.
const (
	ContactPhone   ContactType = "phone"
	ContactEmail   ContactType = "email"
	ContactAddress ContactType = "address"
	ContactHours   ContactType = "hours"
)

// ContactSuggestion is a candidate contact detail extracted from a page.
type ContactSuggestion struct {
	Type          ContactType `json:"type"`
	Value         string      `json:"value"`
	SourcePageURL string      `json:"source_page_url"`
	Confidence    float64     `json:"confidence"`
}

// BookingLinkSuggestion is a candidate online-booking link found in the
// crawled link pool. Provider is set when the URL matches a known
// booking platform; custom booking pages leave it empty.
type BookingLinkSuggestion struct {
	URL           string  `json:"url"`
	Provider      string  `json:"provider,omitempty"`
	SourcePageURL string  `json:"source_page_url"`
	Confidence    float64 `json:"confidence"`
}

// SocialLinkSuggestion is a candidate social-media profile link.
type SocialLinkSuggestion struct {
	Platform      string  `json:"platform"`
	URL           string  `json:"url"`
	SourcePageURL string  `json:"source_page_url"`
	Confidence    float64 `json:"confidence"`
}

// PolicySuggestion is a candidate business policy statement
// (cancellation, refund, scheduling rules and similar).
type PolicySuggestion struct {
	Value         string  `json:"value"`
	Category      string  `json:"category"`
	SourcePageURL string  `json:"source_page_url"`
	Confidence    float64 `json:"confidence"`
}

// ImportSuggestionBundle aggregates everything one import run proposes,
// for human review before any of it is committed to the business record.
type ImportSuggestionBundle struct {
	BusinessName string `json:"business_name,omitempty"`
	Tagline      string `json:"tagline,omitempty"`
	Description  string `json:"description,omitempty"`

	Services     []ServiceSuggestion     `json:"services"`
	Faqs         []FaqSuggestion         `json:"faqs"`
	Contacts     []ContactSuggestion     `json:"contacts"`
	BookingLinks []BookingLinkSuggestion `json:"booking_links"`
	SocialLinks  []SocialLinkSuggestion  `json:"social_links"`
	Policies     []PolicySuggestion      `json:"policies"`

	PagesScanned   int      `json:"pages_scanned"`
	ScanDurationMs int64    `json:"scan_duration_ms"`
	SourceURLs     []string `json:"source_urls"`
}

// TotalSuggestions counts every suggestion in the bundle.
func (b *ImportSuggestionBundle) TotalSuggestions() int {
	return len(b.Services) + len(b.Faqs) + len(b.Contacts) +
		len(b.BookingLinks) + len(b.SocialLinks) + len(b.Policies)
}
