package crawling

import (
	"context"
	"time"

	"github.com/jonathan/site-importer/internal/fetch"
	"github.com/jonathan/site-importer/internal/types"
	"github.com/jonathan/site-importer/internal/urlcheck"
)

// TerminationReason records why a crawl run stopped. All reasons are
// valid endings; none is an error.
type TerminationReason string

// Crawl termination reasons.
const (
	ReasonQueueExhausted TerminationReason = "queue_exhausted"
	ReasonPageBudget     TerminationReason = "page_budget"
	ReasonTimeBudget     TerminationReason = "time_budget"
	ReasonCanceled       TerminationReason = "canceled"
)

// Result holds everything a crawl run collected.
type Result struct {
	StartURL string
	Pages    []types.PageRecord
	Duration time.Duration
	Reason   TerminationReason
	// Skipped counts pages that failed to fetch and were passed over.
	Skipped int
}

// Crawler performs sequential BFS crawls of a single site. A Crawler
// holds no per-run state, so one instance can serve concurrent runs
// for different businesses.
type Crawler struct {
	budget     types.CrawlBudget
	fetchOpts  fetch.Options
	useBrowser bool
	logf       func(format string, args ...any)
}

// Option configures a Crawler.
type Option func(*Crawler)

// WithFetchOptions overrides the HTTP options used for page fetches.
// Per-page timeout and the HTML gate are still enforced by the budget.
func WithFetchOptions(opts fetch.Options) Option {
	return func(c *Crawler) { c.fetchOpts = opts }
}

// WithBrowserFallback re-renders thin pages in a headless browser.
// Business sites built as JavaScript SPAs serve an empty shell over
// plain HTTP; rendering recovers their content at the cost of speed.
func WithBrowserFallback() Option {
	return func(c *Crawler) { c.useBrowser = true }
}

// WithLogf sets the sink for per-page skip messages.
func WithLogf(logf func(format string, args ...any)) Option {
	return func(c *Crawler) { c.logf = logf }
}

// New creates a Crawler with the given budget. Zero budget fields are
// filled with defaults.
func New(budget types.CrawlBudget, opts ...Option) *Crawler {
	c := &Crawler{
		budget:    budget.Normalize(),
		fetchOpts: *fetch.DefaultOptions(),
		logf:      func(string, ...any) {},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// queueEntry is one pending fetch in BFS order.
type queueEntry struct {
	url   string
	depth int
}

// Run crawls from startURL until a budget dimension or the queue is
// exhausted and returns whatever pages were collected. The only error
// case is an unusable start URL; everything after a successful start
// terminates normally.
func (c *Crawler) Run(ctx context.Context, startURL string) (*Result, error) {
	normalized, err := urlcheck.ValidateWebsiteURL(startURL)
	if err != nil {
		return nil, &CrawlError{Message: "invalid start URL", Cause: err}
	}
	start := NormalizeURLString(normalized)

	// Visited is updated at enqueue time, not fetch time, so a URL
	// linked from several pages is enqueued exactly once.
	visited := map[string]bool{start: true}
	queue := []queueEntry{{url: start, depth: 0}}
	pages := make([]types.PageRecord, 0, c.budget.MaxPages)
	startTime := time.Now()
	skipped := 0
	fetched := 0

	reason := ReasonQueueExhausted
	for len(queue) > 0 {
		if len(pages) >= c.budget.MaxPages {
			reason = ReasonPageBudget
			break
		}
		if time.Since(startTime) >= c.budget.TotalTimeout {
			reason = ReasonTimeBudget
			break
		}

		entry := queue[0]
		queue = queue[1:]

		// Politeness delay before every fetch after the first.
		if fetched > 0 {
			select {
			case <-time.After(c.budget.InterRequestDelay):
			case <-ctx.Done():
				reason = ReasonCanceled
			}
			if reason == ReasonCanceled {
				break
			}
		}
		fetched++

		opts := c.fetchOpts
		opts.Timeout = c.budget.PageTimeout
		opts.RequireHTML = true

		result, err := fetch.Webpage(ctx, entry.url, &opts)
		if err != nil {
			// A single page failing never aborts the run.
			c.logf("crawl: skipping %s: %v", entry.url, err)
			skipped++
			continue
		}

		html := result.HTML
		text := fetch.ExtractText(html)
		if c.useBrowser && fetch.ShouldUseBrowser(text) {
			rendered, err := fetch.WithBrowser(ctx, entry.url, c.budget.PageTimeout)
			if err != nil {
				c.logf("crawl: browser fallback failed for %s: %v", entry.url, err)
			} else {
				html = rendered
				text = fetch.ExtractText(html)
			}
		}

		links, err := ExtractLinks(html, entry.url)
		if err != nil {
			c.logf("crawl: no links from %s: %v", entry.url, err)
			links = nil
		}

		pages = append(pages, types.PageRecord{
			URL:           entry.url,
			Title:         result.Title,
			Text:          text,
			OutboundLinks: links,
			Depth:         entry.depth,
		})

		if entry.depth < c.budget.MaxDepth {
			queue = append(queue, c.enqueueable(start, links, visited, entry.depth+1)...)
		}
	}

	c.logf("crawl: finished %s: %d pages, %d skipped, reason=%s", start, len(pages), skipped, reason)
	return &Result{
		StartURL: start,
		Pages:    pages,
		Duration: time.Since(startTime),
		Reason:   reason,
		Skipped:  skipped,
	}, nil
}

// enqueueable filters links to unvisited same-domain pages, orders them
// by keyword relevance, and marks them visited.
func (c *Crawler) enqueueable(start string, links []string, visited map[string]bool, depth int) []queueEntry {
	candidates := make([]string, 0, len(links))
	for _, link := range links {
		if !urlcheck.IsSameDomain(start, link) {
			continue
		}
		normalized := NormalizeURLString(link)
		if visited[normalized] {
			continue
		}
		visited[normalized] = true
		candidates = append(candidates, normalized)
	}

	sortByRelevance(candidates)

	entries := make([]queueEntry, 0, len(candidates))
	for _, link := range candidates {
		entries = append(entries, queueEntry{url: link, depth: depth})
	}
	return entries
}
