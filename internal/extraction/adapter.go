package extraction

import (
	"github.com/jonathan/site-importer/internal/llm"
)

// Adapter is the extraction component shared by single-page scans and
// multi-page imports. It holds no per-call state and is safe for
// concurrent use across businesses.
type Adapter struct {
	client llm.Client
	logf   func(format string, args ...any)
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithLogf sets the sink for fail-soft extraction messages.
func WithLogf(logf func(format string, args ...any)) Option {
	return func(a *Adapter) { a.logf = logf }
}

// NewAdapter creates an Adapter backed by the given extraction client.
func NewAdapter(client llm.Client, opts ...Option) *Adapter {
	a := &Adapter{
		client: client,
		logf:   func(string, ...any) {},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
