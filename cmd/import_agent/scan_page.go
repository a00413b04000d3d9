package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/site-importer/internal/extraction"
	"github.com/jonathan/site-importer/internal/fetch"
	"github.com/jonathan/site-importer/internal/llm"
	"github.com/jonathan/site-importer/internal/urlcheck"
)

var scanPageCmd = &cobra.Command{
	Use:   "scan-page",
	Short: "Fetch a single page and extract business details from it",
	Long:  "Fetches one webpage, extracts its readable text, and runs structured extraction over it. Prints the extraction result as JSON. Extraction failures produce a minimal fallback record, never an error.",
	RunE:  runScanPage,
}

var (
	scanPageURL        string
	scanPageAPIKey     string
	scanPageUseBrowser bool
)

func init() {
	scanPageCmd.Flags().StringVarP(&scanPageURL, "url", "u", "", "Page URL to scan (required)")
	scanPageCmd.Flags().StringVar(&scanPageAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	scanPageCmd.Flags().BoolVar(&scanPageUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")

	if err := scanPageCmd.MarkFlagRequired("url"); err != nil {
		panic(fmt.Sprintf("failed to mark url flag as required: %v", err))
	}

	rootCmd.AddCommand(scanPageCmd)
}

func runScanPage(_ *cobra.Command, _ []string) error {
	apiKey := scanPageAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key required: set --api-key flag or GEMINI_API_KEY environment variable")
	}

	ctx := context.Background()

	normalized, err := urlcheck.ValidateWebsiteURL(scanPageURL)
	if err != nil {
		return fmt.Errorf("invalid page URL: %w", err)
	}

	result, err := fetch.Webpage(ctx, normalized, &fetch.Options{RequireHTML: true})
	if err != nil {
		return fmt.Errorf("failed to fetch page: %w", err)
	}

	html := result.HTML
	text := fetch.ExtractText(html)
	if scanPageUseBrowser && fetch.ShouldUseBrowser(text) {
		rendered, err := fetch.WithBrowser(ctx, normalized, fetch.DefaultTimeout)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: browser rendering failed: %v\n", err)
		} else {
			html = rendered
			text = fetch.ExtractText(html)
		}
	}

	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to initialize extraction client: %w", err)
	}
	defer client.Close()

	adapter := extraction.NewAdapter(client, extraction.WithLogf(func(format string, args ...any) {
		_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	}))

	extracted := adapter.ExtractSinglePage(ctx, normalized, result.Title, text)

	out, err := json.MarshalIndent(extracted, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal extraction result: %w", err)
	}
	fmt.Println(string(out))

	return nil
}
