package citation

import (
	"sort"

	"github.com/coolbeans/lexcite/internal/cpattern"
)

// Dedup implements spec.md §4.6: sort tokens by (cleanStart, pattern
// priority) and, when two tokens overlap, keep the one whose pattern has
// the lower priority number (neutral > short-form > case > statute >
// journal > publicLaw > federalRegister, per cpattern.DefaultPriority).
func Dedup(tokens []cpattern.Token) []cpattern.Token {
	sorted := make([]cpattern.Token, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Span.CleanStart != sorted[j].Span.CleanStart {
			return sorted[i].Span.CleanStart < sorted[j].Span.CleanStart
		}
		return sorted[i].Priority < sorted[j].Priority
	})

	var kept []cpattern.Token
	for _, tok := range sorted {
		overlaps := false
		for _, k := range kept {
			if spansOverlap(tok, k) {
				overlaps = true
				break
			}
		}
		if !overlaps {
			kept = append(kept, tok)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Span.CleanStart < kept[j].Span.CleanStart
	})
	return kept
}

func spansOverlap(a, b cpattern.Token) bool {
	return a.Span.CleanStart < b.Span.CleanEnd && b.Span.CleanStart < a.Span.CleanEnd
}
