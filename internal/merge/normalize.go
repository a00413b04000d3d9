// Package merge combines freshly extracted suggestions with existing
// business data using lexical similarity, partitioning each category
// into additions and duplicates without ever overwriting curated
// fields.
package merge

import (
	"regexp"
	"strings"
)

var (
	punctRe      = regexp.MustCompile(`[^\p{L}\p{N}\s]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	trailingRe   = regexp.MustCompile(`[?!.]+$`)
)

// interrogatives are leading question words stripped from FAQ
// questions so that "What are your hours" and "Your hours" compare as
// the same question.
var interrogatives = map[string]bool{
	"what": true, "how": true, "when": true, "where": true, "why": true,
	"do": true, "does": true, "is": true, "are": true, "can": true,
	"will": true,
}

// NormalizeServiceName lowercases, trims, collapses whitespace and
// strips punctuation: "Men's Haircut!" becomes "mens haircut".
func NormalizeServiceName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = punctRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizeFaqQuestion applies service-name normalization plus
// question-specific cleanup: trailing punctuation and a single leading
// interrogative word are stripped, absorbing phrasing variance.
func NormalizeFaqQuestion(question string) string {
	s := strings.ToLower(strings.TrimSpace(question))
	s = trailingRe.ReplaceAllString(s, "")
	s = punctRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)

	words := strings.Fields(s)
	if len(words) > 1 && interrogatives[words[0]] {
		words = words[1:]
	}
	return strings.Join(words, " ")
}
