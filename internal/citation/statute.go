package citation

import (
	"regexp"
	"strings"

	"github.com/coolbeans/lexcite/internal/cpattern"
)

// statuteShape parses "42 U.S.C. § 1983(a)(1)(A)" style matches: optional
// leading title digits, a dotted code abbreviation, and a section possibly
// followed by parenthesized subsections (spec.md §4.5 "Statute").
var statuteShape = regexp.MustCompile(`^(?:(\d+)\s+)?([A-Za-z.]+)\.?\s+§+\s*([0-9A-Za-z-]+)`)
var subsectionPattern = regexp.MustCompile(`\(([0-9A-Za-z]+)\)`)
var sectionRangePattern = regexp.MustCompile(`^(\d+[A-Za-z0-9-]*)(?:-(\d+[A-Za-z0-9-]*))?$`)

// leadingSubsections matches one or more immediately-adjacent "(x)" groups,
// e.g. "(a)(1)(A)" trailing a section number with no intervening text.
var leadingSubsections = regexp.MustCompile(`^(?:\([0-9A-Za-z]+\))+`)

// ExtractStatute implements spec.md §4.5's statute extractor. cleaned is
// consulted immediately after the token's match to pick up subsections in
// "(a)(1)(A)" form, which the catalogue pattern itself does not capture.
func ExtractStatute(tok cpattern.Token, cleaned string) *Statute {
	s := &Statute{
		BaseFields: BaseFields{
			Span:            tok.Span,
			MatchedText:     tok.MatchedText,
			Confidence:      0.5,
			PatternsChecked: []string{tok.PatternID},
		},
	}

	m := statuteShape.FindStringSubmatch(tok.MatchedText)
	if m == nil {
		return s
	}
	s.Title = m[1]
	s.Code = strings.TrimSuffix(m[2], ".") + "."
	section := m[3]

	if rm := sectionRangePattern.FindStringSubmatch(section); rm != nil && rm[2] != "" {
		s.SectionRange = rm[1] + "-" + rm[2]
		s.Section = rm[1]
	} else {
		s.Section = section
	}

	if tok.Span.CleanEnd <= len(cleaned) {
		if trailer := leadingSubsections.FindString(cleaned[tok.Span.CleanEnd:]); trailer != "" {
			for _, sub := range subsectionPattern.FindAllStringSubmatch(trailer, -1) {
				s.Subsections = append(s.Subsections, sub[1])
			}
		}
	}

	s.Confidence = 0.8
	s.clampConfidence()
	return s
}
