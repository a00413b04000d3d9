// Package types provides type definitions for structured data used throughout the site-importer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// CrawlBudget bounds a single crawl run. A run stops as soon as any
// budget dimension is exhausted; exhaustion is a normal termination,
// not an error.
type CrawlBudget struct {
	MaxPages          int           `json:"max_pages"`
	MaxDepth          int           `json:"max_depth"`
	PageTimeout       time.Duration `json:"page_timeout"`
	TotalTimeout      time.Duration `json:"total_timeout"`
	InterRequestDelay time.Duration `json:"inter_request_delay"`
}

// DefaultCrawlBudget returns the standard budget for a business-site crawl.
func DefaultCrawlBudget() CrawlBudget {
	return CrawlBudget{
		MaxPages:          15,
		MaxDepth:          2,
		PageTimeout:       15 * time.Second,
		TotalTimeout:      120 * time.Second,
		InterRequestDelay: 500 * time.Millisecond,
	}
}

// Normalize fills zero-valued fields with defaults so a partially
// specified budget is always usable.
func (b CrawlBudget) Normalize() CrawlBudget {
	def := DefaultCrawlBudget()
	if b.MaxPages <= 0 {
		b.MaxPages = def.MaxPages
	}
	if b.MaxDepth <= 0 {
		b.MaxDepth = def.MaxDepth
	}
	if b.PageTimeout <= 0 {
		b.PageTimeout = def.PageTimeout
	}
	if b.TotalTimeout <= 0 {
		b.TotalTimeout = def.TotalTimeout
	}
	if b.InterRequestDelay <= 0 {
		b.InterRequestDelay = def.InterRequestDelay
	}
	return b
}

// PageRecord is one successfully fetched page from a crawl run.
// Records are consumed once by the extraction adapter and are not
// persisted by the crawl core.
type PageRecord struct {
	URL           string   `json:"url"`
	Title         string   `json:"title"`
	Text          string   `json:"text"`
	OutboundLinks []string `json:"outbound_links,omitempty"`
	Depth         int      `json:"depth"`
}
