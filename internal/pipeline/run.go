// Package pipeline provides the high-level orchestration for the website import process.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/site-importer/internal/crawling"
	"github.com/jonathan/site-importer/internal/extraction"
	"github.com/jonathan/site-importer/internal/fetch"
	"github.com/jonathan/site-importer/internal/llm"
	"github.com/jonathan/site-importer/internal/merge"
	"github.com/jonathan/site-importer/internal/observability"
	"github.com/jonathan/site-importer/internal/store"
	"github.com/jonathan/site-importer/internal/types"
	"github.com/jonathan/site-importer/internal/urlcheck"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the import pipeline
type RunOptions struct {
	StartURL    string
	BusinessID  uuid.UUID // Optional: merge against this business's curated record
	Budget      types.CrawlBudget
	APIKey      string
	ModelConfig *llm.Config
	UseBrowser  bool
	Apply       bool // Persist the merge outcome instead of only reporting it
	Verbose     bool
	DatabaseURL string
	OnProgress  ProgressCallback
}

// RunResult is the outcome of one full import run.
type RunResult struct {
	RunID  uuid.UUID                     `json:"run_id,omitempty"`
	Crawl  *crawling.Result              `json:"-"`
	Bundle *types.ImportSuggestionBundle `json:"bundle"`
	Merge  *merge.ProcessResult          `json:"merge"`
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			Content: content,
		})
	}
}

// RunImport orchestrates the full import pipeline: crawl the site,
// extract suggestions, and merge them against the curated business
// record. Persistence is best-effort; a missing or failing database
// downgrades the run to report-only rather than aborting it.
func RunImport(ctx context.Context, opts RunOptions) (*RunResult, error) {
	printer := observability.NewPrinter(os.Stdout)

	if _, err := urlcheck.ValidateWebsiteURL(opts.StartURL); err != nil {
		return nil, fmt.Errorf("invalid start URL: %w", err)
	}

	// Initialize database connection if configured
	var db *store.Store
	var runID uuid.UUID
	if opts.DatabaseURL != "" {
		var err error
		db, err = store.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			fmt.Printf("Warning: Failed to connect to database: %v\n", err)
			fmt.Printf("Continuing without database persistence...\n")
			db = nil
		} else {
			defer db.Close()
			if opts.Verbose {
				fmt.Printf("[VERBOSE] Connected to database\n")
			}
		}
	}

	if db != nil && opts.BusinessID != uuid.Nil {
		var err error
		runID, err = db.CreateImportRun(ctx, opts.BusinessID, opts.StartURL)
		if err != nil {
			fmt.Printf("Warning: Failed to create import run: %v\n", err)
		} else if opts.Verbose {
			fmt.Printf("[VERBOSE] Created import run: %s\n", runID)
		}
	}

	// =========================================================================
	// PARALLEL EXECUTION: Crawl Branch + Record Branch
	// =========================================================================
	g, gCtx := errgroup.WithContext(ctx)

	var crawlResult *crawling.Result
	var existing *types.ExistingBusinessRecord

	// Crawl Branch: fetch the site within budget
	g.Go(func() error {
		fmt.Printf("Step 1/3: Crawling %s...\n", opts.StartURL)

		crawlerOpts := []crawling.Option{
			crawling.WithFetchOptions(fetch.Options{RequireHTML: true}),
		}
		if opts.UseBrowser {
			crawlerOpts = append(crawlerOpts, crawling.WithBrowserFallback())
		}
		if opts.Verbose {
			crawlerOpts = append(crawlerOpts, crawling.WithLogf(func(format string, args ...any) {
				fmt.Printf("[Crawl] "+format+"\n", args...)
			}))
		}

		crawler := crawling.New(opts.Budget, crawlerOpts...)
		result, err := crawler.Run(gCtx, opts.StartURL)
		if err != nil {
			return fmt.Errorf("crawl failed: %w", err)
		}
		crawlResult = result
		return nil
	})

	// Record Branch: load the curated record the merge dedupes against
	g.Go(func() error {
		if db == nil || opts.BusinessID == uuid.Nil {
			existing = &types.ExistingBusinessRecord{}
			return nil
		}
		record, err := db.LoadBusinessRecord(gCtx, opts.BusinessID)
		if err != nil {
			return fmt.Errorf("loading business record failed: %w", err)
		}
		existing = record
		return nil
	})

	if err := g.Wait(); err != nil {
		if db != nil && runID != uuid.Nil {
			_ = db.CompleteImportRun(ctx, runID, "failed")
		}
		return nil, err
	}

	if opts.Verbose {
		printer.PrintCrawlSummary(crawlResult.Pages, string(crawlResult.Reason))
	}
	emitProgress(&opts, store.StepCrawl,
		fmt.Sprintf("Crawled %d pages from %s", len(crawlResult.Pages), opts.StartURL), nil)
	if db != nil && runID != uuid.Nil {
		_ = db.SaveArtifact(ctx, runID, store.StepCrawl, crawlResult)
	}

	// Step 2: Extract suggestions from the crawled corpus
	fmt.Printf("Step 2/3: Extracting suggestions from %d pages...\n", len(crawlResult.Pages))

	client, err := llm.NewGeminiClient(ctx, opts.ModelConfig, opts.APIKey)
	if err != nil {
		if db != nil && runID != uuid.Nil {
			_ = db.CompleteImportRun(ctx, runID, "failed")
		}
		return nil, fmt.Errorf("initializing extraction client failed: %w", err)
	}
	defer client.Close()

	adapterOpts := []extraction.Option{}
	if opts.Verbose {
		adapterOpts = append(adapterOpts, extraction.WithLogf(func(format string, args ...any) {
			fmt.Printf("[Extract] "+format+"\n", args...)
		}))
	}
	adapter := extraction.NewAdapter(client, adapterOpts...)

	bundle := adapter.ExtractFromCrawl(ctx, crawlResult)
	if opts.Verbose {
		printer.PrintSuggestionBundle(bundle)
	}
	emitProgress(&opts, store.StepSuggestions,
		fmt.Sprintf("Extracted %d suggestions", bundle.TotalSuggestions()), bundle)
	if db != nil && runID != uuid.Nil {
		_ = db.SaveArtifact(ctx, runID, store.StepSuggestions, bundle)
	}

	// Step 3: Merge against the curated record
	fmt.Printf("Step 3/3: Merging suggestions against existing record...\n")
	mergeResult := merge.ProcessSuggestionsForMerge(bundle, existing)
	if opts.Verbose {
		printer.PrintMergeResult(mergeResult)
		printer.PrintProvenance(mergeResult.Provenance)
	}
	emitProgress(&opts, store.StepMerge,
		fmt.Sprintf("Merge complete: %d services and %d FAQs to add",
			len(mergeResult.Services.ToAdd), len(mergeResult.Faqs.ToAdd)), mergeResult)
	if db != nil && runID != uuid.Nil {
		_ = db.SaveArtifact(ctx, runID, store.StepMerge, mergeResult)
	}

	if opts.Apply {
		if db == nil || opts.BusinessID == uuid.Nil {
			fmt.Printf("Warning: --apply requires a database and business ID; skipping apply.\n")
		} else if err := db.ApplyMergeResult(ctx, opts.BusinessID, runID, mergeResult); err != nil {
			if runID != uuid.Nil {
				_ = db.CompleteImportRun(ctx, runID, "failed")
			}
			return nil, fmt.Errorf("applying merge failed: %w", err)
		} else {
			fmt.Printf("Applied: %d services, %d FAQs, %d contact fields.\n",
				len(mergeResult.Services.ToAdd), len(mergeResult.Faqs.ToAdd),
				len(mergeResult.Contact.Filled))
		}
	}

	if db != nil && runID != uuid.Nil {
		_ = db.CompleteImportRun(ctx, runID, "completed")
	}

	return &RunResult{
		RunID:  runID,
		Crawl:  crawlResult,
		Bundle: bundle,
		Merge:  mergeResult,
	}, nil
}
