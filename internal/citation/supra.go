package citation

import (
	"regexp"
	"strings"

	"github.com/coolbeans/lexcite/internal/cpattern"
)

var supraPincitePattern = regexp.MustCompile(`supra,\s+at\s+(\d+)`)
var supraPartyPattern = regexp.MustCompile(`^([A-Z][A-Za-z]+(?:\s+v\.?\s+[A-Z][A-Za-z]+)?)`)

// ExtractSupra implements spec.md §4.5's supra extractor: the party name
// preceding "supra", and an optional pincite after "at".
func ExtractSupra(tok cpattern.Token) *Supra {
	s := &Supra{BaseFields: BaseFields{
		Span:            tok.Span,
		MatchedText:     tok.MatchedText,
		Confidence:      0.5,
		PatternsChecked: []string{tok.PatternID},
	}}

	if m := supraPartyPattern.FindStringSubmatch(tok.MatchedText); m != nil {
		s.PartyName = strings.TrimSuffix(m[1], ",")
	}
	if m := supraPincitePattern.FindStringSubmatch(tok.MatchedText); m != nil {
		s.Pincite = m[1]
	}
	return s
}
