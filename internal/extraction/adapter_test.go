package extraction

import (
	"context"
	"errors"

	"github.com/jonathan/site-importer/internal/llm"
)

// stubClient returns a canned response (or error) and records the
// prompt it was called with.
type stubClient struct {
	response   string
	err        error
	lastPrompt string
	calls      int
}

func (s *stubClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	s.calls++
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubClient) Close() error { return nil }

var errServiceDown = errors.New("service unavailable")
