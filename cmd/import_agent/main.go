// Package main provides the site-importer CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "import_agent",
	Short: "Business website import agent",
	Long:  "import_agent crawls a business website, extracts services, FAQs, contact details and links, and merges the suggestions into an existing business record without overwriting curated data.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
