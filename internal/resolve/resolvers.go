package resolve

import (
	"strconv"
	"strings"

	"github.com/coolbeans/lexcite/internal/citation"
)

// resolveIDIbid implements spec.md §4.7's Id./Ibid. resolution: nearest
// preceding case citation, gated by scope, with a pincite-range sanity
// check that downgrades to a warning rather than a failure.
func (r *resolver) resolveIDIbid(idx int, pincite string, label string) Resolved {
	c := r.citations[idx]
	if r.lastFullCaseIdx == -1 {
		return unresolved(c, "no preceding case citation")
	}

	ant := r.fullCaseHistory[len(r.fullCaseHistory)-1]
	refOffset := c.Base().Span.OriginalStart
	antOffset := ant.c.Base().Span.OriginalStart

	if !inScope(r.opts, r.boundaries, r.opts.FootnoteOf, ant.index, idx, antOffset, refOffset) {
		return unresolved(c, label+" antecedent outside "+string(r.opts.ScopeStrategy)+" scope")
	}

	res := Resolved{Citation: c, Attempted: true, AntecedentIdx: ant.index, Confidence: 1.0}

	if pincite != "" && ant.c.Page != "" {
		p, perr := strconv.Atoi(pincite)
		base, berr := strconv.Atoi(ant.c.Page)
		if perr == nil && berr == nil {
			if p < base || p > base+150 {
				res = withWarning(res, label+" pincite falls outside the antecedent's expected page range")
			}
		}
	}

	return res
}

// resolveSupra implements spec.md §4.7's supra resolution: reverse walk of
// fullCaseHistory, normalized Levenshtein similarity against
// {defendant, plaintiff} with defendant-first preference, threshold gated.
func (r *resolver) resolveSupra(idx int, s *citation.Supra) Resolved {
	c := r.citations[idx]
	if s.PartyName == "" {
		return unresolved(c, "supra has no party name to match")
	}

	threshold := r.opts.PartyMatchThreshold

	type match struct {
		index int
		sim   float64
	}
	var matches []match

	for i := len(r.fullCaseHistory) - 1; i >= 0; i-- {
		ent := r.fullCaseHistory[i]
		if ent.index >= idx {
			continue
		}
		simDef := partySimilarity(s.PartyName, ent.c.Defendant)
		simPla := partySimilarity(s.PartyName, ent.c.Plaintiff)
		switch {
		case simDef >= threshold:
			matches = append(matches, match{ent.index, simDef})
		case simPla >= threshold:
			matches = append(matches, match{ent.index, simPla})
		}
	}

	if len(matches) == 0 {
		return unresolved(c, "no matching party within document")
	}

	best := matches[0]
	res := Resolved{Citation: c, Attempted: true, AntecedentIdx: best.index, Confidence: best.sim}
	if len(matches) > 1 {
		if res.Confidence > 0.8 {
			res.Confidence = 0.8
		}
		res = withWarning(res, "supra party name matches more than one antecedent")
	}
	return res
}

// resolveShortForm implements spec.md §4.7's short-form case resolution:
// match by (volume, reporter) against fullCaseHistory using a normalized
// reporter form that strips spaces and periods before comparison.
func (r *resolver) resolveShortForm(idx int, s *citation.ShortFormCase) Resolved {
	c := r.citations[idx]
	target := normalizeReporterForMatch(s.Reporter)

	type match struct{ index int }
	var matches []match

	for i := len(r.fullCaseHistory) - 1; i >= 0; i-- {
		ent := r.fullCaseHistory[i]
		if ent.index >= idx {
			continue
		}
		if ent.c.Volume == s.Volume && normalizeReporterForMatch(ent.c.Reporter) == target {
			matches = append(matches, match{ent.index})
		}
	}

	if len(matches) == 0 {
		return unresolved(c, "no matching full citation within document")
	}

	res := Resolved{Citation: c, Attempted: true, AntecedentIdx: matches[0].index, Confidence: 0.95}
	if len(matches) > 1 {
		res.Confidence = 0.7
		res = withWarning(res, "short-form citation matches more than one antecedent")
	}
	return res
}

func normalizeReporterForMatch(r string) string {
	r = strings.ToLower(r)
	r = strings.ReplaceAll(r, " ", "")
	r = strings.ReplaceAll(r, ".", "")
	return r
}
