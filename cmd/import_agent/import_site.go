package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/site-importer/internal/config"
	"github.com/jonathan/site-importer/internal/merge"
	"github.com/jonathan/site-importer/internal/pipeline"
	"github.com/jonathan/site-importer/internal/types"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Run the full website import pipeline end-to-end",
	Long: `Crawls the business website, extracts import suggestions, and merges them
against the existing business record: crawl -> extract -> merge.

Without --apply the merge outcome is only reported. Configuration can be
loaded from a JSON file using --config; command-line arguments override
config file values.`,
	RunE: runImportCmd,
}

var (
	importConfigPath  string
	importURL         string
	importBusinessID  string
	importExisting    string
	importMaxPages    int
	importMaxDepth    int
	importAPIKey      string
	importUseBrowser  bool
	importApply       bool
	importVerbose     bool
	importDatabaseURL string
	importOutPath     string
)

func init() {
	// Config file flag (processed first)
	importCmd.Flags().StringVar(&importConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	importCmd.Flags().StringVarP(&importURL, "url", "u", "", "Business website URL to import from")
	importCmd.Flags().StringVar(&importBusinessID, "business-id", "", "Business UUID to merge into (requires database)")
	importCmd.Flags().StringVar(&importExisting, "existing", "", "Path to existing-record JSON for file-based merge (mutually exclusive with --business-id)")
	importCmd.Flags().IntVar(&importMaxPages, "max-pages", 0, "Maximum pages to crawl (default: 15)")
	importCmd.Flags().IntVar(&importMaxDepth, "max-depth", 0, "Maximum crawl depth from the start URL (default: 2)")
	importCmd.Flags().BoolVar(&importUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	importCmd.Flags().BoolVar(&importApply, "apply", false, "Persist merge results to the database instead of only reporting")
	importCmd.Flags().BoolVarP(&importVerbose, "verbose", "v", false, "Print detailed debug information")
	importCmd.Flags().StringVarP(&importOutPath, "out", "o", "", "Write the merge outcome JSON to this path")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	importCmd.Flags().StringVar(&importAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for artifact persistence
	importCmd.Flags().StringVar(&importDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(importCmd)
}

func runImportCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if importConfigPath != "" {
		loadedCfg, err := config.LoadConfig(importConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
		if importVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", importConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("url") {
		cfg.URL = importURL
	}
	if cmd.Flags().Changed("business-id") {
		cfg.BusinessID = importBusinessID
	}
	if cmd.Flags().Changed("existing") {
		cfg.Existing = importExisting
	}
	if cmd.Flags().Changed("max-pages") {
		cfg.MaxPages = importMaxPages
	}
	if cmd.Flags().Changed("max-depth") {
		cfg.MaxDepth = importMaxDepth
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = importAPIKey
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = importUseBrowser
	}
	if cmd.Flags().Changed("apply") {
		cfg.Apply = importApply
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = importVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = importDatabaseURL
	}

	// Step 3: Validate required fields
	if cfg.URL == "" {
		return fmt.Errorf("--url must be provided (via flag or config)")
	}
	if cfg.BusinessID != "" && cfg.Existing != "" {
		return fmt.Errorf("--business-id and --existing are mutually exclusive; provide only one")
	}
	if cfg.Apply && cfg.BusinessID == "" {
		return fmt.Errorf("--apply requires --business-id")
	}

	// Step 4: API Key handling
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("API key required: set --api-key flag or GEMINI_API_KEY environment variable")
	}

	// Step 5: Database URL handling (optional; report-only without it)
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.BusinessID != "" && cfg.DatabaseURL == "" {
		return fmt.Errorf("--business-id requires a database: set --db-url flag or DATABASE_URL environment variable")
	}

	var businessID uuid.UUID
	if cfg.BusinessID != "" {
		var err error
		businessID, err = uuid.Parse(cfg.BusinessID)
		if err != nil {
			return fmt.Errorf("invalid business-id format: %w", err)
		}
	}

	opts := pipeline.RunOptions{
		StartURL:    cfg.URL,
		BusinessID:  businessID,
		Budget:      cfg.Budget(),
		APIKey:      cfg.APIKey,
		UseBrowser:  cfg.UseBrowser,
		Apply:       cfg.Apply,
		Verbose:     cfg.Verbose,
		DatabaseURL: cfg.DatabaseURL,
	}

	result, err := pipeline.RunImport(ctx, opts)
	if err != nil {
		return err
	}

	// File-based merge: redo the merge against the provided record so
	// callers without a database still get deduplication.
	if cfg.Existing != "" {
		existing, err := loadExistingRecord(cfg.Existing)
		if err != nil {
			return err
		}
		result.Merge = merge.ProcessSuggestionsForMerge(result.Bundle, existing)
	}

	if importOutPath != "" {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		if err := os.WriteFile(importOutPath, out, 0644); err != nil {
			return fmt.Errorf("failed to write result file %s: %w", importOutPath, err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Result written to %s\n", importOutPath)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Import complete: %d pages scanned, %d suggestions, %d services and %d FAQs to add.\n",
		result.Bundle.PagesScanned, result.Bundle.TotalSuggestions(),
		len(result.Merge.Services.ToAdd), len(result.Merge.Faqs.ToAdd))
	return nil
}

func loadExistingRecord(path string) (*types.ExistingBusinessRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read existing-record file %s: %w", path, err)
	}
	var record types.ExistingBusinessRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse existing-record JSON: %w", err)
	}
	return &record, nil
}
