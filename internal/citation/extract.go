package citation

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/coolbeans/lexcite/internal/cpattern"
	"github.com/coolbeans/lexcite/internal/reporterdb"
	"github.com/coolbeans/lexcite/internal/txtspan"
)

// Extract runs tokenize -> dedup -> parallel-group-detect -> per-kind
// extraction over already-cleaned text, per the pipeline in spec.md §2.
func Extract(cleaned string, originalText string, offsetMap *txtspan.Map, patterns []cpattern.Pattern, db reporterdb.ReporterDB, currentYear int, logger *zap.Logger) ([]Citation, []txtspan.Warning) {
	if logger == nil {
		logger = zap.NewNop()
	}

	rawTokens, tokenizeWarnings := cpattern.Tokenize(cleaned, patterns, offsetMap, logger)
	tokens := Dedup(rawTokens)
	groups := DetectParallel(tokens, cleaned)

	secondaryOf := make(map[int]int)
	for primary, secondaries := range groups {
		for _, s := range secondaries {
			secondaryOf[s] = primary
		}
	}

	citations := make([]Citation, 0, len(tokens))
	var warnings []txtspan.Warning
	warnings = append(warnings, tokenizeWarnings...)

	caseIndexByTokenIndex := make(map[int]*Case)

	for i, tok := range tokens {
		start := time.Now()
		var cit Citation

		switch tok.Kind {
		case cpattern.KindCase:
			c := ExtractCase(tok, offsetMap, cleaned, originalText, db, currentYear)
			if RejectHistorical(c) {
				continue
			}
			caseIndexByTokenIndex[i] = c
			cit = c
		case cpattern.KindStatute:
			cit = ExtractStatute(tok, cleaned)
		case cpattern.KindJournal:
			cit = ExtractJournal(tok, cleaned)
		case cpattern.KindNeutral:
			cit = ExtractNeutral(tok)
		case cpattern.KindPublicLaw:
			cit = ExtractPublicLaw(tok)
		case cpattern.KindFederalRegister:
			cit = ExtractFederalRegister(tok, cleaned)
		case cpattern.KindID:
			cit = ExtractID(tok)
		case cpattern.KindIbid:
			cit = ExtractIbid(tok)
		case cpattern.KindSupra:
			cit = ExtractSupra(tok)
		case cpattern.KindShortFormCase:
			cit = ExtractShortFormCase(tok)
		default:
			continue
		}

		cit.Base().ProcessTimeMs = float64(time.Since(start).Microseconds()) / 1000.0
		citations = append(citations, cit)
	}

	applyParallelGroups(tokens, groups, caseIndexByTokenIndex)

	return citations, warnings
}

// applyParallelGroups stamps GroupID and ParallelCitations onto the primary
// of each detected parallel group per spec.md §3.1's ParallelGroup entity,
// and propagates the shared trailing parenthetical (year/date/court/
// disposition) to every member: only the last citation in the string
// "410 U.S. 113, 93 S. Ct. 705, 35 L. Ed. 2d 147 (1973)" has a parenthetical
// immediately after it, but it describes the whole group.
func applyParallelGroups(tokens []cpattern.Token, groups map[int][]int, cases map[int]*Case) {
	for primaryIdx, secondaryIdxs := range groups {
		primary, ok := cases[primaryIdx]
		if !ok {
			continue
		}
		groupID := fmt.Sprintf("%s-%s-%s", primary.Volume, primary.Reporter, pageOrBlank(primary))
		primary.GroupID = groupID

		members := []*Case{primary}
		for _, secIdx := range secondaryIdxs {
			sec, ok := cases[secIdx]
			if !ok {
				continue
			}
			sec.GroupID = groupID
			members = append(members, sec)
			primary.ParallelCitations = append(primary.ParallelCitations, ParallelRef{
				Volume:   sec.Volume,
				Reporter: sec.Reporter,
				Page:     pageOrBlank(sec),
			})
		}

		propagateParenthetical(members)
	}
}

// propagateParenthetical copies the year/date/court/disposition/
// parenthetical of whichever group member actually captured one (normally
// the last, which sits immediately before the shared parenthetical) onto
// every member lacking its own.
func propagateParenthetical(members []*Case) {
	var source *Case
	for _, m := range members {
		if m.Parenthetical != "" {
			source = m
		}
	}
	if source == nil {
		return
	}
	for _, m := range members {
		if m == source {
			continue
		}
		if m.Year == 0 {
			m.Year = source.Year
		}
		if m.Date == nil {
			m.Date = source.Date
		}
		if m.Court == "" {
			m.Court = source.Court
		}
		if m.Disposition == "" {
			m.Disposition = source.Disposition
		}
		if m.Parenthetical == "" {
			m.Parenthetical = source.Parenthetical
		}
	}
}

func pageOrBlank(c *Case) string {
	if c.HasBlankPage {
		return "___"
	}
	return c.Page
}
