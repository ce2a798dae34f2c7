package citation

import (
	"regexp"

	"github.com/coolbeans/lexcite/internal/cpattern"
)

var journalShape = regexp.MustCompile(`^(\d+)\s+([A-Z][A-Za-z. ]+?)\s+(\d+)$`)
var trailingYearParenthetical = regexp.MustCompile(`^\s*\((\d{4})\)`)

// ExtractJournal implements spec.md §4.5's journal extractor: volume,
// abbreviation, page, with an optional year pulled from a trailing
// parenthetical immediately following the match.
func ExtractJournal(tok cpattern.Token, cleaned string) *Journal {
	j := &Journal{
		BaseFields: BaseFields{
			Span:            tok.Span,
			MatchedText:     tok.MatchedText,
			Confidence:      0.4,
			PatternsChecked: []string{tok.PatternID},
		},
	}

	m := journalShape.FindStringSubmatch(tok.MatchedText)
	if m == nil {
		return j
	}
	j.Volume = m[1]
	j.Abbreviation = NormalizeReporter(m[2])
	j.JournalName = j.Abbreviation
	j.Page = m[3]

	if tok.Span.CleanEnd <= len(cleaned) {
		if ym := trailingYearParenthetical.FindStringSubmatch(cleaned[tok.Span.CleanEnd:]); ym != nil {
			if y, ok := lastYear(ym[1]); ok {
				j.Year = y
			}
		}
	}

	j.Confidence = 0.6
	j.clampConfidence()
	return j
}
