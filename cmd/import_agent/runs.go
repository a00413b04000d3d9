package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/site-importer/internal/pipeline/steps"
	"github.com/jonathan/site-importer/internal/store"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect stored import runs",
	Long:  "Lists stored import runs for a business, or shows one run's artifacts and which pipeline steps are still available for it.",
	RunE:  runRuns,
}

var (
	runsBusinessID  string
	runsRunID       string
	runsStep        string
	runsDatabaseURL string
	runsLimit       int
)

func init() {
	runsCmd.Flags().StringVar(&runsBusinessID, "business-id", "", "Business UUID to list runs for")
	runsCmd.Flags().StringVar(&runsRunID, "run-id", "", "Run UUID to inspect")
	runsCmd.Flags().StringVar(&runsStep, "step", "", "Print this run artifact as JSON (crawl, suggestions, merge)")
	runsCmd.Flags().StringVar(&runsDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	runsCmd.Flags().IntVar(&runsLimit, "limit", 20, "Maximum runs to list")

	rootCmd.AddCommand(runsCmd)
}

func runRuns(_ *cobra.Command, _ []string) error {
	databaseURL := runsDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("database required: set --db-url flag or DATABASE_URL environment variable")
	}
	if runsBusinessID == "" && runsRunID == "" {
		return fmt.Errorf("either --business-id or --run-id must be provided")
	}

	ctx := context.Background()
	db, err := store.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if runsRunID != "" {
		runID, err := uuid.Parse(runsRunID)
		if err != nil {
			return fmt.Errorf("invalid run-id format: %w", err)
		}
		return inspectRun(ctx, db, runID)
	}

	businessID, err := uuid.Parse(runsBusinessID)
	if err != nil {
		return fmt.Errorf("invalid business-id format: %w", err)
	}

	runs, err := db.ListImportRuns(ctx, businessID, runsLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		_, _ = fmt.Fprintln(os.Stdout, "No import runs found.")
		return nil
	}
	for _, run := range runs {
		_, _ = fmt.Fprintf(os.Stdout, "%s  %-9s  %s  %s\n", run.ID, run.Status, run.CreatedAt, run.StartURL)
	}
	return nil
}

func inspectRun(ctx context.Context, db *store.Store, runID uuid.UUID) error {
	run, err := db.GetImportRun(ctx, runID)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("run not found: %s", runID)
	}

	if runsStep != "" {
		content, err := db.GetArtifact(ctx, runID, runsStep)
		if err != nil {
			return err
		}
		if content == nil {
			return fmt.Errorf("no %s artifact stored for run %s", runsStep, runID)
		}
		var pretty json.RawMessage = content
		out, err := json.MarshalIndent(pretty, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format artifact: %w", err)
		}
		_, _ = fmt.Fprintln(os.Stdout, string(out))
		return nil
	}

	_, _ = fmt.Fprintf(os.Stdout, "Run:      %s\n", run.ID)
	_, _ = fmt.Fprintf(os.Stdout, "Status:   %s\n", run.Status)
	_, _ = fmt.Fprintf(os.Stdout, "URL:      %s\n", run.StartURL)
	_, _ = fmt.Fprintf(os.Stdout, "Created:  %s\n", run.CreatedAt)

	available, err := steps.GetAvailableSteps(ctx, db, runID)
	if err != nil {
		return err
	}
	if len(available) == 0 {
		_, _ = fmt.Fprintln(os.Stdout, "Steps:    all completed")
	} else {
		_, _ = fmt.Fprintf(os.Stdout, "Steps:    pending: %s\n", strings.Join(available, ", "))
	}
	return nil
}
