package merge

import "strings"

// minSimilarityWordLength excludes short glue words ("a", "of", "to")
// from similarity word sets.
const minSimilarityWordLength = 2

// StringSimilarity computes Jaccard similarity (|A∩B| / |A∪B|) over
// the word sets of two normalized strings, keeping only words longer
// than minSimilarityWordLength. Word-set overlap fits business-fact
// phrasing, which varies by word choice more than by typos.
func StringSimilarity(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for word := range setA {
		if setB[word] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(s)) {
		if len(word) > minSimilarityWordLength {
			set[word] = true
		}
	}
	return set
}
