package crawling

import (
	"sort"
	"strings"
)

// linkKeywords mark URL paths likely to hold importable business facts.
// Under a tight page budget, pages matching more of these are fetched
// first within each depth tier.
var linkKeywords = []string{
	"service", "services",
	"about", "about-us",
	"contact", "contact-us",
	"faq", "faqs", "help",
	"pricing", "prices", "price", "rates", "menu",
	"hours", "location", "locations",
	"book", "booking", "appointment", "appointments", "schedule",
	"policy", "policies", "terms",
	"team", "staff",
}

// scoreLink counts keyword hits in the lowercased URL.
func scoreLink(link string) int {
	lower := strings.ToLower(link)
	score := 0
	for _, kw := range linkKeywords {
		if strings.Contains(lower, kw) {
			score++
		}
	}
	return score
}

// sortByRelevance orders links by descending keyword score. The sort is
// stable so equally scored links keep document order.
func sortByRelevance(links []string) {
	sort.SliceStable(links, func(i, j int) bool {
		return scoreLink(links[i]) > scoreLink(links[j])
	})
}
