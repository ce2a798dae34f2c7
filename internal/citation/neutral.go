package citation

import (
	"regexp"

	"github.com/coolbeans/lexcite/internal/cpattern"
)

var neutralShape = regexp.MustCompile(`^(\d{4})\s+(WL|U\.S\.\s+LEXIS)\s+(\d+)$`)

// ExtractNeutral implements spec.md §4.5's neutral-citation extractor
// (Westlaw / Lexis vendor-neutral citations): year, vendor identifier
// (reused as Court since the shape has no separate court field), document
// number.
func ExtractNeutral(tok cpattern.Token) *Neutral {
	n := &Neutral{
		BaseFields: BaseFields{
			Span:            tok.Span,
			MatchedText:     tok.MatchedText,
			Confidence:      0.7,
			PatternsChecked: []string{tok.PatternID},
		},
	}

	m := neutralShape.FindStringSubmatch(tok.MatchedText)
	if m == nil {
		return n
	}
	y, _ := lastYear(m[1])
	n.Year = y
	n.Court = NormalizeReporter(m[2])
	n.DocumentNumber = m[3]

	n.Confidence = 0.9
	n.clampConfidence()
	return n
}
