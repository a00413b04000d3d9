// Package steps defines the import pipeline's step graph and checks
// which steps of a stored run can be re-executed.
package steps

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/site-importer/internal/store"
)

// StepDefinition defines metadata for a pipeline step
type StepDefinition struct {
	Name         string
	Dependencies []string
}

// Registry holds all step definitions. A step's dependencies name the
// artifacts that must exist on the run before it can execute.
var Registry = map[string]StepDefinition{
	store.StepCrawl: {
		Name:         store.StepCrawl,
		Dependencies: []string{},
	},
	store.StepSuggestions: {
		Name:         store.StepSuggestions,
		Dependencies: []string{store.StepCrawl},
	},
	store.StepMerge: {
		Name:         store.StepMerge,
		Dependencies: []string{store.StepSuggestions},
	},
}

// DependencyError represents a dependency validation error
type DependencyError struct {
	Step                string
	MissingDependencies []string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("missing dependencies: %v", e.MissingDependencies)
}

// ValidateDependencies checks that every artifact a step depends on has
// been saved for the run.
func ValidateDependencies(ctx context.Context, s *store.Store, runID uuid.UUID, stepName string) error {
	def, ok := Registry[stepName]
	if !ok {
		return fmt.Errorf("unknown step: %s", stepName)
	}

	var missing []string
	for _, dep := range def.Dependencies {
		artifact, err := s.GetArtifact(ctx, runID, dep)
		if err != nil {
			return fmt.Errorf("failed to check dependency %s: %w", dep, err)
		}
		if artifact == nil {
			missing = append(missing, dep)
		}
	}

	if len(missing) > 0 {
		return &DependencyError{
			Step:                stepName,
			MissingDependencies: missing,
		}
	}
	return nil
}

// GetAvailableSteps returns steps whose dependencies are met but whose
// own artifact has not been saved yet.
func GetAvailableSteps(ctx context.Context, s *store.Store, runID uuid.UUID) ([]string, error) {
	var available []string

	// Walk in pipeline order so output is stable.
	for _, stepName := range []string{store.StepCrawl, store.StepSuggestions, store.StepMerge} {
		existing, err := s.GetArtifact(ctx, runID, stepName)
		if err != nil {
			return nil, fmt.Errorf("failed to check step %s: %w", stepName, err)
		}
		if existing != nil {
			continue // Already completed
		}
		if err := ValidateDependencies(ctx, s, runID, stepName); err != nil {
			continue // Dependencies not met
		}
		available = append(available, stepName)
	}

	return available, nil
}
