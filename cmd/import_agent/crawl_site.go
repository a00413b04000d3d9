package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/site-importer/internal/crawling"
	"github.com/jonathan/site-importer/internal/fetch"
	"github.com/jonathan/site-importer/internal/types"
)

var crawlCmd = &cobra.Command{
	Use:   "crawl-site",
	Short: "Crawl a business website and dump the collected pages",
	Long:  "Crawls a business website within the page, depth, and time budgets and writes the collected page records as JSON. No extraction is performed.",
	RunE:  runCrawl,
}

var (
	crawlURL        string
	crawlMaxPages   int
	crawlMaxDepth   int
	crawlUseBrowser bool
	crawlOutputDir  string
	crawlVerbose    bool
)

func init() {
	crawlCmd.Flags().StringVarP(&crawlURL, "url", "u", "", "Business website URL (required)")
	crawlCmd.Flags().IntVar(&crawlMaxPages, "max-pages", 0, "Maximum pages to crawl (default: 15)")
	crawlCmd.Flags().IntVar(&crawlMaxDepth, "max-depth", 0, "Maximum crawl depth (default: 2)")
	crawlCmd.Flags().BoolVar(&crawlUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	crawlCmd.Flags().StringVarP(&crawlOutputDir, "out", "o", "", "Output directory (required)")
	crawlCmd.Flags().BoolVarP(&crawlVerbose, "verbose", "v", false, "Print per-page progress")

	if err := crawlCmd.MarkFlagRequired("url"); err != nil {
		panic(fmt.Sprintf("failed to mark url flag as required: %v", err))
	}
	if err := crawlCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(crawlCmd)
}

func runCrawl(_ *cobra.Command, _ []string) error {
	if err := os.MkdirAll(crawlOutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", crawlOutputDir, err)
	}

	budget := types.CrawlBudget{
		MaxPages: crawlMaxPages,
		MaxDepth: crawlMaxDepth,
	}

	opts := []crawling.Option{
		crawling.WithFetchOptions(fetch.Options{RequireHTML: true}),
	}
	if crawlUseBrowser {
		opts = append(opts, crawling.WithBrowserFallback())
	}
	if crawlVerbose {
		opts = append(opts, crawling.WithLogf(func(format string, args ...any) {
			_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	}

	crawler := crawling.New(budget, opts...)
	result, err := crawler.Run(context.Background(), crawlURL)
	if err != nil {
		return fmt.Errorf("failed to crawl site: %w", err)
	}

	pagesPath := filepath.Join(crawlOutputDir, "pages.json")
	pagesJSON, err := json.MarshalIndent(result.Pages, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal pages to JSON: %w", err)
	}
	if err := os.WriteFile(pagesPath, pagesJSON, 0644); err != nil {
		return fmt.Errorf("failed to write pages file %s: %w", pagesPath, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully crawled %d pages (%d skipped, stopped: %s)\n",
		len(result.Pages), result.Skipped, result.Reason)
	_, _ = fmt.Fprintf(os.Stdout, "Pages: %s\n", pagesPath)

	return nil
}
