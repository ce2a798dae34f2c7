package citation

import (
	"regexp"

	"github.com/coolbeans/lexcite/internal/cpattern"
)

var shortFormShape = regexp.MustCompile(`^(\d+)\s+([A-Z][A-Za-z.]+)\s+at\s+(\d+)$`)

// ExtractShortFormCase implements spec.md §4.5's short-form case extractor:
// a bare "123 U.S. at 456" reference with no case name of its own.
func ExtractShortFormCase(tok cpattern.Token) *ShortFormCase {
	s := &ShortFormCase{BaseFields: BaseFields{
		Span:            tok.Span,
		MatchedText:     tok.MatchedText,
		Confidence:      0.5,
		PatternsChecked: []string{tok.PatternID},
	}}

	m := shortFormShape.FindStringSubmatch(tok.MatchedText)
	if m == nil {
		return s
	}
	s.Volume = m[1]
	s.Reporter = NormalizeReporter(m[2])
	s.Pincite = m[3]

	if IsCommonReporter(s.Reporter) {
		s.Confidence = 0.8
	}
	s.clampConfidence()
	return s
}
