package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/site-importer/internal/merge"
	"github.com/jonathan/site-importer/internal/types"
)

// Artifact step names. One artifact per (run, step).
const (
	StepCrawl       = "crawl"
	StepSuggestions = "suggestions"
	StepMerge       = "merge"
)

// GetSuggestionBundleByRunID loads the extracted suggestion bundle for a run
func (s *Store) GetSuggestionBundleByRunID(ctx context.Context, runID uuid.UUID) (*types.ImportSuggestionBundle, error) {
	content, err := s.GetArtifact(ctx, runID, StepSuggestions)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	var bundle types.ImportSuggestionBundle
	if err := json.Unmarshal(content, &bundle); err != nil {
		return nil, fmt.Errorf("failed to unmarshal suggestion bundle: %w", err)
	}
	return &bundle, nil
}

// GetMergeResultByRunID loads the merge outcome for a run
func (s *Store) GetMergeResultByRunID(ctx context.Context, runID uuid.UUID) (*merge.ProcessResult, error) {
	content, err := s.GetArtifact(ctx, runID, StepMerge)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	var result merge.ProcessResult
	if err := json.Unmarshal(content, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal merge result: %w", err)
	}
	return &result, nil
}
