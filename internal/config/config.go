// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/site-importer/internal/types"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Target
	URL        string `json:"url,omitempty" validate:"omitempty,url"`              // Website URL to import from
	BusinessID string `json:"business_id,omitempty" validate:"omitempty,uuid4"`    // Business UUID to merge into
	Existing   string `json:"existing,omitempty"`                                  // Path to existing-record JSON (file-based merge)

	// Crawl limits
	MaxPages          int `json:"max_pages,omitempty" validate:"min=0"`            // Maximum pages per crawl
	MaxDepth          int `json:"max_depth,omitempty" validate:"min=0"`            // Maximum link depth from the start URL
	PageTimeoutSec    int `json:"page_timeout_sec,omitempty" validate:"min=0"`     // Per-page fetch timeout in seconds
	TotalTimeoutSec   int `json:"total_timeout_sec,omitempty" validate:"min=0"`    // Whole-crawl timeout in seconds
	RequestDelayMs    int `json:"request_delay_ms,omitempty" validate:"min=0"`     // Delay between page fetches in milliseconds

	// Behavior
	APIKey      string `json:"api_key,omitempty"`                                  // Gemini API key
	UseBrowser  bool   `json:"use_browser,omitempty"`                              // Use headless browser for SPA sites
	Apply       bool   `json:"apply,omitempty"`                                    // Persist merge results instead of only reporting
	Verbose     bool   `json:"verbose,omitempty"`                                  // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"`                             // PostgreSQL connection URL
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	// Mutually exclusive merge targets
	if c.BusinessID != "" && c.Existing != "" {
		return fmt.Errorf("config error: 'business_id' and 'existing' are mutually exclusive")
	}

	if c.Existing != "" {
		if _, err := os.Stat(c.Existing); os.IsNotExist(err) {
			return fmt.Errorf("config error: existing-record file not found: %s", c.Existing)
		}
	}

	return nil
}

// Budget converts the crawl limit fields into a CrawlBudget. Zero
// fields stay zero; the crawler fills them with its defaults.
func (c *Config) Budget() types.CrawlBudget {
	return types.CrawlBudget{
		MaxPages:          c.MaxPages,
		MaxDepth:          c.MaxDepth,
		PageTimeout:       time.Duration(c.PageTimeoutSec) * time.Second,
		TotalTimeout:      time.Duration(c.TotalTimeoutSec) * time.Second,
		InterRequestDelay: time.Duration(c.RequestDelayMs) * time.Millisecond,
	}
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.URL == "" {
		result.URL = defaults.URL
	}
	if result.BusinessID == "" {
		result.BusinessID = defaults.BusinessID
	}
	if result.Existing == "" {
		result.Existing = defaults.Existing
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.MaxPages == 0 {
		result.MaxPages = defaults.MaxPages
	}
	if result.MaxDepth == 0 {
		result.MaxDepth = defaults.MaxDepth
	}
	if result.PageTimeoutSec == 0 {
		result.PageTimeoutSec = defaults.PageTimeoutSec
	}
	if result.TotalTimeoutSec == 0 {
		result.TotalTimeoutSec = defaults.TotalTimeoutSec
	}
	if result.RequestDelayMs == 0 {
		result.RequestDelayMs = defaults.RequestDelayMs
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
