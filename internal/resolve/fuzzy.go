package resolve

import (
	"regexp"
	"strings"

	"github.com/agnivade/levenshtein"
)

var fuzzyPunctuation = regexp.MustCompile(`[^\p{L}\p{M}\p{N}_\s]`)

// partySimilarity implements spec.md §4.7's normalized Levenshtein:
// similarity(a, b) = 1 - distance(a, b) / max(|a|, |b|), computed over
// lowercased, punctuation-stripped strings.
func partySimilarity(a, b string) float64 {
	a = normalizeForFuzzyMatch(a)
	b = normalizeForFuzzyMatch(b)
	if a == "" && b == "" {
		return 1
	}
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 1
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(maxLen)
}

func normalizeForFuzzyMatch(s string) string {
	s = strings.ToLower(s)
	s = fuzzyPunctuation.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
