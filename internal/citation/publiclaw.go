package citation

import (
	"regexp"

	"github.com/coolbeans/lexcite/internal/cpattern"
)

var publicLawShape = regexp.MustCompile(`(\d+)-(\d+)`)

// ExtractPublicLaw implements spec.md §4.5's public-law extractor: congress
// number and law number from "Pub. L. No. NNN-MMM".
func ExtractPublicLaw(tok cpattern.Token) *PublicLaw {
	p := &PublicLaw{
		BaseFields: BaseFields{
			Span:            tok.Span,
			MatchedText:     tok.MatchedText,
			Confidence:      0.9,
			PatternsChecked: []string{tok.PatternID},
		},
	}

	m := publicLawShape.FindStringSubmatch(tok.MatchedText)
	if m == nil {
		p.Confidence = 0.3
		return p
	}
	p.Congress = m[1]
	p.LawNumber = m[2]
	return p
}
