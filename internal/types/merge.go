package types

import "time"

// Duplicate pairs a rejected suggestion with the existing value it
// matched, so review UIs can show why it was not added.
type Duplicate[T any] struct {
	Item          T      `json:"item"`
	ExistingMatch string `json:"existing_match"`
}

// MergeResult partitions one suggestion category after deduplication.
type MergeResult[T any] struct {
	ToAdd      []T            `json:"to_add"`
	Duplicates []Duplicate[T] `json:"duplicates"`
	Unchanged  []T            `json:"unchanged"`
}

// ContactUpdates holds the contact fields a merge decided to fill.
// A zero-valued field means no update for that field; Filled on
// ContactMergeResult is the authoritative list.
type ContactUpdates struct {
	Phone   string            `json:"phone,omitempty"`
	Email   string            `json:"email,omitempty"`
	Address string            `json:"address,omitempty"`
	Hours   map[string]string `json:"hours,omitempty"`
}

// ContactMergeResult reports exactly which contact fields were filled
// and which were skipped because curated data already existed (or, for
// hours, because no weekday could be parsed).
type ContactMergeResult struct {
	Updates ContactUpdates `json:"updates"`
	Filled  []string       `json:"filled"`
	Skipped []string       `json:"skipped"`
}

// ItemCounts tallies what one import run added per category.
type ItemCounts struct {
	Services     int `json:"services"`
	Faqs         int `json:"faqs"`
	Contacts     int `json:"contacts"`
	BookingLinks int `json:"booking_links"`
	SocialLinks  int `json:"social_links"`
	Policies     int `json:"policies"`
}

// ProvenanceRecord documents the origin of imported facts for audit.
type ProvenanceRecord struct {
	Source     string     `json:"source"`
	ScanDate   time.Time  `json:"scan_date"`
	SourceURLs []string   `json:"source_urls"`
	ItemsAdded ItemCounts `json:"items_added"`
}
