package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/site-importer/internal/types"
)

func svc(name string) types.ServiceSuggestion {
	return types.ServiceSuggestion{Name: name, SourcePageURL: "https://example.com", Confidence: 0.8}
}

func faq(question string) types.FaqSuggestion {
	return types.FaqSuggestion{Question: question, Answer: "yes", SourcePageURL: "https://example.com", Confidence: 0.8}
}

func TestDedupeServices_ExactMatchIsDuplicate(t *testing.T) {
	result := DedupeServices(
		[]types.ServiceSuggestion{svc("HAIRCUT")},
		[]types.ExistingService{{Name: "Haircut"}},
	)

	assert.Empty(t, result.ToAdd)
	require.Len(t, result.Duplicates, 1)
	assert.Equal(t, "Haircut", result.Duplicates[0].ExistingMatch)
}

func TestDedupeServices_SimilarityMatchIsDuplicate(t *testing.T) {
	result := DedupeServices(
		[]types.ServiceSuggestion{svc("Deep Tissue Massage Therapy")},
		[]types.ExistingService{{Name: "Deep Tissue Massage"}},
	)

	// Jaccard 3/4 >= 0.7 threshold.
	assert.Empty(t, result.ToAdd)
	require.Len(t, result.Duplicates, 1)
}

func TestDedupeServices_DistinctServiceIsAdded(t *testing.T) {
	result := DedupeServices(
		[]types.ServiceSuggestion{svc("Hot Towel Shave")},
		[]types.ExistingService{{Name: "Haircut"}},
	)

	require.Len(t, result.ToAdd, 1)
	assert.Empty(t, result.Duplicates)
}

func TestDedupeServices_SelfDedupWithinRun(t *testing.T) {
	result := DedupeServices(
		[]types.ServiceSuggestion{svc("Beard Trim"), svc("Beard Trim")},
		nil,
	)

	assert.Len(t, result.ToAdd, 1)
	require.Len(t, result.Duplicates, 1)
	assert.Equal(t, "Beard Trim", result.Duplicates[0].ExistingMatch)
}

func TestDedupeServices_FirstExistingMatchWins(t *testing.T) {
	result := DedupeServices(
		[]types.ServiceSuggestion{svc("Haircut")},
		[]types.ExistingService{{Name: "haircut"}, {Name: "Haircut!"}},
	)

	require.Len(t, result.Duplicates, 1)
	assert.Equal(t, "haircut", result.Duplicates[0].ExistingMatch)
}

func TestDedupeServices_SkipsEmptyNames(t *testing.T) {
	result := DedupeServices(
		[]types.ServiceSuggestion{svc(""), svc("!!!")},
		nil,
	)

	assert.Empty(t, result.ToAdd)
	assert.Empty(t, result.Duplicates)
}

func TestDedupeServices_Deterministic(t *testing.T) {
	suggestions := []types.ServiceSuggestion{svc("Haircut"), svc("Beard Trim"), svc("haircut!")}
	existing := []types.ExistingService{{Name: "Hot Towel Shave"}}

	first := DedupeServices(suggestions, existing)
	second := DedupeServices(suggestions, existing)

	assert.Equal(t, first, second)
}

func TestDedupeFaqs_PhrasingVarianceIsDuplicate(t *testing.T) {
	result := DedupeFaqs(
		[]types.FaqSuggestion{faq("What are your opening hours?")},
		[]types.ExistingFaq{{Question: "Are your opening hours posted?", Answer: "9-5"}},
	)

	// After stripping interrogatives: "are your opening hours" vs
	// "your opening hours posted" share {your, opening, hours}: 3/5 >= 0.6.
	assert.Empty(t, result.ToAdd)
	require.Len(t, result.Duplicates, 1)
	assert.Equal(t, "Are your opening hours posted?", result.Duplicates[0].ExistingMatch)
}

func TestDedupeFaqs_DistinctQuestionIsAdded(t *testing.T) {
	result := DedupeFaqs(
		[]types.FaqSuggestion{faq("Do you accept credit cards?")},
		[]types.ExistingFaq{{Question: "Where can I park?", Answer: "Behind the shop"}},
	)

	assert.Len(t, result.ToAdd, 1)
	assert.Empty(t, result.Duplicates)
}

func TestDedupeFaqs_SelfDedup(t *testing.T) {
	result := DedupeFaqs(
		[]types.FaqSuggestion{faq("Do you take walk-ins?"), faq("Can you take walk-ins?")},
		nil,
	)

	assert.Len(t, result.ToAdd, 1)
	assert.Len(t, result.Duplicates, 1)
}
