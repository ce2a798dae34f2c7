package citation

import (
	"regexp"

	"github.com/coolbeans/lexcite/internal/cpattern"
)

var fedRegShape = regexp.MustCompile(`^(\d+)\s+Fed\.\s?Reg\.\s+(\d+)$`)

// ExtractFederalRegister implements spec.md §4.5's Federal Register
// extractor: volume and starting page, with an optional year pulled from a
// trailing parenthetical (mirroring the journal extractor).
func ExtractFederalRegister(tok cpattern.Token, cleaned string) *FederalRegister {
	f := &FederalRegister{
		BaseFields: BaseFields{
			Span:            tok.Span,
			MatchedText:     tok.MatchedText,
			Confidence:      0.7,
			PatternsChecked: []string{tok.PatternID},
		},
	}

	m := fedRegShape.FindStringSubmatch(tok.MatchedText)
	if m == nil {
		return f
	}
	f.Volume = m[1]
	f.Page = m[2]

	if tok.Span.CleanEnd <= len(cleaned) {
		if ym := trailingYearParenthetical.FindStringSubmatch(cleaned[tok.Span.CleanEnd:]); ym != nil {
			if y, ok := lastYear(ym[1]); ok {
				f.Year = y
			}
		}
	}

	f.Confidence = 0.85
	f.clampConfidence()
	return f
}
