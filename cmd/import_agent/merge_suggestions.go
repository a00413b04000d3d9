package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/site-importer/internal/merge"
	"github.com/jonathan/site-importer/internal/types"
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge a suggestion bundle against an existing record",
	Long: `Reads a suggestion bundle JSON (as produced by import --out or stored as
a run artifact) and an existing-record JSON, and reports which suggestions
would be added, which are duplicates of curated data, and which contact
fields would be filled. Nothing is persisted.`,
	RunE: runMergeSuggestions,
}

var (
	mergeBundlePath   string
	mergeExistingPath string
	mergeOutPath      string
)

func init() {
	mergeCmd.Flags().StringVarP(&mergeBundlePath, "bundle", "b", "", "Path to suggestion bundle JSON (required)")
	mergeCmd.Flags().StringVarP(&mergeExistingPath, "existing", "e", "", "Path to existing-record JSON (optional; empty record if omitted)")
	mergeCmd.Flags().StringVarP(&mergeOutPath, "out", "o", "", "Write the merge outcome JSON to this path instead of stdout")

	if err := mergeCmd.MarkFlagRequired("bundle"); err != nil {
		panic(fmt.Sprintf("failed to mark bundle flag as required: %v", err))
	}

	rootCmd.AddCommand(mergeCmd)
}

func runMergeSuggestions(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(mergeBundlePath)
	if err != nil {
		return fmt.Errorf("failed to read bundle file %s: %w", mergeBundlePath, err)
	}
	var bundle types.ImportSuggestionBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return fmt.Errorf("failed to parse bundle JSON: %w", err)
	}

	existing := &types.ExistingBusinessRecord{}
	if mergeExistingPath != "" {
		existing, err = loadExistingRecord(mergeExistingPath)
		if err != nil {
			return err
		}
	}

	result := merge.ProcessSuggestionsForMerge(&bundle, existing)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal merge result: %w", err)
	}

	if mergeOutPath != "" {
		if err := os.WriteFile(mergeOutPath, out, 0644); err != nil {
			return fmt.Errorf("failed to write result file %s: %w", mergeOutPath, err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Merge result written to %s\n", mergeOutPath)
	} else {
		_, _ = fmt.Fprintln(os.Stdout, string(out))
	}

	_, _ = fmt.Fprintf(os.Stdout, "To add: %d services, %d FAQs. Duplicates: %d services, %d FAQs. Contact fields filled: %d.\n",
		len(result.Services.ToAdd), len(result.Faqs.ToAdd),
		len(result.Services.Duplicates), len(result.Faqs.Duplicates),
		len(result.Contact.Filled))
	return nil
}
