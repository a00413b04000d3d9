package merge

import (
	"github.com/jonathan/site-importer/internal/types"
)

// Duplicate-detection thresholds. A pair is a duplicate when normalized
// forms are identical or Jaccard similarity meets the threshold. FAQs
// use a lower bar because interrogative-word stripping removes shared
// vocabulary before comparison. Variables so callers can tune them.
var (
	ServiceSimilarityThreshold = 0.7
	FaqSimilarityThreshold     = 0.6
)

// DedupeServices partitions service suggestions against the existing
// services and against each other. The scan is linear with first match
// winning; per-import batches are tens of items, not corpora.
func DedupeServices(suggestions []types.ServiceSuggestion, existing []types.ExistingService) types.MergeResult[types.ServiceSuggestion] {
	result := types.MergeResult[types.ServiceSuggestion]{
		ToAdd:      make([]types.ServiceSuggestion, 0),
		Duplicates: make([]types.Duplicate[types.ServiceSuggestion], 0),
		Unchanged:  make([]types.ServiceSuggestion, 0),
	}

	acceptedKeys := make([]string, 0)
	acceptedNames := make([]string, 0)

	for _, suggestion := range suggestions {
		key := NormalizeServiceName(suggestion.Name)
		if key == "" {
			continue
		}

		if match, found := findServiceMatch(key, existing); found {
			result.Duplicates = append(result.Duplicates, types.Duplicate[types.ServiceSuggestion]{
				Item:          suggestion,
				ExistingMatch: match,
			})
			continue
		}

		// Self-dedup: the same run may suggest one service twice.
		if match, found := findKeyMatch(key, acceptedKeys, acceptedNames, ServiceSimilarityThreshold); found {
			result.Duplicates = append(result.Duplicates, types.Duplicate[types.ServiceSuggestion]{
				Item:          suggestion,
				ExistingMatch: match,
			})
			continue
		}

		acceptedKeys = append(acceptedKeys, key)
		acceptedNames = append(acceptedNames, suggestion.Name)
		result.ToAdd = append(result.ToAdd, suggestion)
	}

	return result
}

// DedupeFaqs partitions FAQ suggestions the same way, keyed on
// normalized questions.
func DedupeFaqs(suggestions []types.FaqSuggestion, existing []types.ExistingFaq) types.MergeResult[types.FaqSuggestion] {
	result := types.MergeResult[types.FaqSuggestion]{
		ToAdd:      make([]types.FaqSuggestion, 0),
		Duplicates: make([]types.Duplicate[types.FaqSuggestion], 0),
		Unchanged:  make([]types.FaqSuggestion, 0),
	}

	acceptedKeys := make([]string, 0)
	acceptedQuestions := make([]string, 0)

	for _, suggestion := range suggestions {
		key := NormalizeFaqQuestion(suggestion.Question)
		if key == "" {
			continue
		}

		if match, found := findFaqMatch(key, existing); found {
			result.Duplicates = append(result.Duplicates, types.Duplicate[types.FaqSuggestion]{
				Item:          suggestion,
				ExistingMatch: match,
			})
			continue
		}

		if match, found := findKeyMatch(key, acceptedKeys, acceptedQuestions, FaqSimilarityThreshold); found {
			result.Duplicates = append(result.Duplicates, types.Duplicate[types.FaqSuggestion]{
				Item:          suggestion,
				ExistingMatch: match,
			})
			continue
		}

		acceptedKeys = append(acceptedKeys, key)
		acceptedQuestions = append(acceptedQuestions, suggestion.Question)
		result.ToAdd = append(result.ToAdd, suggestion)
	}

	return result
}

// findServiceMatch scans existing services for the first duplicate of
// key, returning the matched existing name for the audit trail.
func findServiceMatch(key string, existing []types.ExistingService) (string, bool) {
	for _, svc := range existing {
		existingKey := NormalizeServiceName(svc.Name)
		if existingKey == "" {
			continue
		}
		if existingKey == key || StringSimilarity(key, existingKey) >= ServiceSimilarityThreshold {
			return svc.Name, true
		}
	}
	return "", false
}

func findFaqMatch(key string, existing []types.ExistingFaq) (string, bool) {
	for _, faq := range existing {
		existingKey := NormalizeFaqQuestion(faq.Question)
		if existingKey == "" {
			continue
		}
		if existingKey == key || StringSimilarity(key, existingKey) >= FaqSimilarityThreshold {
			return faq.Question, true
		}
	}
	return "", false
}

// findKeyMatch scans already-accepted keys, returning the original
// (pre-normalization) value that matched.
func findKeyMatch(key string, acceptedKeys, originals []string, threshold float64) (string, bool) {
	for i, accepted := range acceptedKeys {
		if accepted == key || StringSimilarity(key, accepted) >= threshold {
			return originals[i], true
		}
	}
	return "", false
}
