package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/site-importer/internal/urlcheck"
)

var checkURLCmd = &cobra.Command{
	Use:   "check-url",
	Short: "Validate a website or booking URL",
	Long:  "Validates a URL against the import safety rules. With --booking the stricter booking-link rules apply: HTTPS only, no payment processors, and the booking provider is reported when recognized.",
	RunE:  runCheckURL,
}

var (
	checkURLValue   string
	checkURLBooking bool
)

func init() {
	checkURLCmd.Flags().StringVarP(&checkURLValue, "url", "u", "", "URL to validate (required)")
	checkURLCmd.Flags().BoolVar(&checkURLBooking, "booking", false, "Apply booking-link validation rules")

	if err := checkURLCmd.MarkFlagRequired("url"); err != nil {
		panic(fmt.Sprintf("failed to mark url flag as required: %v", err))
	}

	rootCmd.AddCommand(checkURLCmd)
}

func runCheckURL(_ *cobra.Command, _ []string) error {
	if checkURLBooking {
		booking, err := urlcheck.ValidateBookingURL(checkURLValue)
		if err != nil {
			return fmt.Errorf("invalid booking URL: %w", err)
		}
		out, marshalErr := json.MarshalIndent(booking, "", "  ")
		if marshalErr != nil {
			return fmt.Errorf("failed to marshal result: %w", marshalErr)
		}
		_, _ = fmt.Fprintln(os.Stdout, string(out))
		return nil
	}

	normalized, err := urlcheck.ValidateWebsiteURL(checkURLValue)
	if err != nil {
		return fmt.Errorf("invalid website URL: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "OK: %s (domain: %s)\n", normalized, urlcheck.ExtractDomain(normalized))
	return nil
}
