// Package urlcheck classifies and sanitizes arbitrary strings into safe
// absolute URLs, and recognizes known booking and social-media providers.
package urlcheck

import "fmt"

// ValidationError reports an unsafe or malformed URL. It is surfaced to
// the caller as-is; an unsafe URL is never silently rewritten into
// something fetchable.
type ValidationError struct {
	URL     string
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid URL %q: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid URL %q: %s", e.URL, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}
