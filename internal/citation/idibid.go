package citation

import (
	"regexp"

	"github.com/coolbeans/lexcite/internal/cpattern"
)

var idPincitePattern = regexp.MustCompile(`(\d+)\s*$`)

// ExtractID implements spec.md §4.5's "Id." extractor: optional pincite,
// no other metadata, and a fixed 0.6 confidence. Whether an antecedent
// actually resolves is judged by the resolver, which reports its own
// confidence on the resolved link.
func ExtractID(tok cpattern.Token) *ID {
	i := &ID{BaseFields: BaseFields{
		Span:            tok.Span,
		MatchedText:     tok.MatchedText,
		Confidence:      0.6,
		PatternsChecked: []string{tok.PatternID},
	}}
	if m := idPincitePattern.FindStringSubmatch(tok.MatchedText); m != nil {
		i.Pincite = m[1]
	}
	return i
}

// ExtractIbid implements spec.md §4.5's "Ibid." extractor.
func ExtractIbid(tok cpattern.Token) *Ibid {
	ib := &Ibid{BaseFields: BaseFields{
		Span:            tok.Span,
		MatchedText:     tok.MatchedText,
		Confidence:      0.6,
		PatternsChecked: []string{tok.PatternID},
	}}
	if m := idPincitePattern.FindStringSubmatch(tok.MatchedText); m != nil {
		ib.Pincite = m[1]
	}
	return ib
}
