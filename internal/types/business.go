package types

// ContactInfo holds the curated contact fields of a business record.
// Hours maps weekday name to an opening-hours string
// (e.g. "Monday" -> "9am-5pm").
type ContactInfo struct {
	Phone   string            `json:"phone,omitempty"`
	Email   string            `json:"email,omitempty"`
	Address string            `json:"address,omitempty"`
	Hours   map[string]string `json:"hours,omitempty"`
}

// ExistingService is a service already present on the business record.
type ExistingService struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price,omitempty"`
}

// ExistingFaq is an FAQ already present on the business record.
type ExistingFaq struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ExistingBusinessRecord is a read-only snapshot of curated business
// data, supplied by the caller's storage layer. The merge engine never
// mutates it; it only reports what could be added alongside it.
type ExistingBusinessRecord struct {
	Services []ExistingService `json:"services"`
	Faqs     []ExistingFaq     `json:"faqs"`
	Contact  ContactInfo       `json:"contact"`
}

// WebsiteExtraction is the structured result of single-page extraction.
// It is intentionally broader than ImportSuggestionBundle: a single
// page scan captures descriptive material (team, testimonials,
// features) that multi-page import does not track.
type WebsiteExtraction struct {
	BusinessName string   `json:"business_name"`
	Tagline      string   `json:"tagline,omitempty"`
	Description  string   `json:"description,omitempty"`
	Services     []string `json:"services,omitempty"`
	Products     []string `json:"products,omitempty"`
	Faqs         []FaqSuggestion `json:"faqs,omitempty"`
	ContactPhone string   `json:"contact_phone,omitempty"`
	ContactEmail string   `json:"contact_email,omitempty"`
	Address      string   `json:"address,omitempty"`
	SocialLinks  []string `json:"social_links,omitempty"`
	Team         []string `json:"team,omitempty"`
	Testimonials []string `json:"testimonials,omitempty"`
	Features     []string `json:"features,omitempty"`
	Pricing      []string `json:"pricing,omitempty"`
	AboutText    string   `json:"about_text,omitempty"`
}
