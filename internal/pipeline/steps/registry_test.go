package steps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/site-importer/internal/store"
)

func TestRegistry_CoversPipelineOrder(t *testing.T) {
	require.Len(t, Registry, 3)

	assert.Empty(t, Registry[store.StepCrawl].Dependencies)
	assert.Equal(t, []string{store.StepCrawl}, Registry[store.StepSuggestions].Dependencies)
	assert.Equal(t, []string{store.StepSuggestions}, Registry[store.StepMerge].Dependencies)
}

func TestRegistry_DependenciesExist(t *testing.T) {
	for name, def := range Registry {
		for _, dep := range def.Dependencies {
			_, ok := Registry[dep]
			assert.True(t, ok, "step %s depends on unknown step %s", name, dep)
		}
	}
}

func TestDependencyError_Message(t *testing.T) {
	err := &DependencyError{Step: store.StepMerge, MissingDependencies: []string{store.StepSuggestions}}
	assert.Contains(t, err.Error(), "suggestions")
}
