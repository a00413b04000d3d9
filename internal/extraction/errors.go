// Package extraction turns crawled pages into typed, source-attributed
// import suggestions via an external structured-extraction service,
// with deterministic link classification that works even when the
// service does not.
package extraction

import "fmt"

// ExtractionError represents a failure of the external extraction
// service or of decoding its response. It is logged, never surfaced:
// single-page extraction substitutes a fallback record and multi-page
// extraction still returns its deterministic link suggestions.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
