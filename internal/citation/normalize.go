package citation

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// corporateSuffixes are trailing party-name suffixes stripped for matching
// purposes only; the original is always preserved in CaseName/Plaintiff/
// Defendant (spec.md §4.4).
var corporateSuffixes = []string{
	"Incorporated", "Inc.", "Inc", "Corporation", "Corp.", "Corp",
	"LLC", "L.L.C.", "L.L.C", "Limited", "Ltd.", "Ltd", "Company", "Co.", "Co",
	"P.C.", "PC", "L.P.", "LP",
}

var etAlPattern = regexp.MustCompile(`(?i)\bet\s+al\.?\s*$`)
var whitespaceRun = regexp.MustCompile(`\s+`)
var punctuationRun = regexp.MustCompile(`[^\p{L}\p{M}\p{N}_\s]`)

// NormalizeParty runs the pinned seven-step normalization order from
// SPEC_FULL.md's Open Questions resolution: trim, collapse whitespace, strip
// "et al.", remove a trailing corporate suffix, lowercase, remove
// punctuation, then strip diacritics last (corporate-suffix matching is
// ASCII-cased and must run against the still-accented original).
func NormalizeParty(party string) string {
	s := strings.TrimSpace(party)
	s = whitespaceRun.ReplaceAllString(s, " ")
	s = etAlPattern.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = stripCorporateSuffix(s)
	s = strings.ToLower(s)
	s = punctuationRun.ReplaceAllString(s, "")
	s = stripDiacritics(s)
	return strings.TrimSpace(s)
}

func stripCorporateSuffix(s string) string {
	trimmed := strings.TrimRight(s, ". ")
	for _, suffix := range corporateSuffixes {
		suffixBare := strings.TrimRight(suffix, ".")
		if strings.HasSuffix(trimmed, suffix) {
			return strings.TrimSpace(strings.TrimSuffix(trimmed, suffix))
		}
		if strings.HasSuffix(trimmed, suffixBare) &&
			(len(trimmed) == len(suffixBare) || trimmed[len(trimmed)-len(suffixBare)-1] == ' ') {
			return strings.TrimSpace(strings.TrimSuffix(trimmed, suffixBare))
		}
	}
	return s
}

// stripDiacritics decomposes to NFD and drops combining marks, leaving the
// base Latin letters behind (e.g. "García" -> "Garcia").
func stripDiacritics(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// commonReporters is the recognised-reporter list from spec.md §4.4's
// confidence formula ("+0.3 if reporter matches a recognised common
// reporter").
var commonReporters = map[string]bool{
	"F.": true, "F.2d": true, "F.3d": true, "F.4th": true,
	"F. Supp.": true, "F. Supp. 2d": true, "F. Supp. 3d": true,
	"U.S.": true, "S. Ct.": true, "L. Ed.": true, "L. Ed. 2d": true,
	"P.": true, "P.2d": true, "P.3d": true,
	"A.": true, "A.2d": true, "A.3d": true,
	"N.E.": true, "N.E.2d": true, "N.E.3d": true,
	"N.W.": true, "N.W.2d": true,
	"S.E.": true, "S.E.2d": true,
	"S.W.": true, "S.W.2d": true, "S.W.3d": true,
	"So.": true, "So. 2d": true, "So. 3d": true,
}

// NormalizeReporter collapses irregular internal spacing and maps a reporter
// that differs from a commonReporters entry only in its spaces onto that
// entry, so "S.Ct." and "S. Ct." both key into the table the same way.
func NormalizeReporter(reporter string) string {
	r := strings.TrimSpace(reporter)
	r = whitespaceRun.ReplaceAllString(r, " ")
	spaceless := strings.ReplaceAll(r, " ", "")
	for canonical := range commonReporters {
		if strings.ReplaceAll(canonical, " ", "") == spaceless {
			return canonical
		}
	}
	return r
}

// IsCommonReporter reports whether reporter (after normalization) is on the
// recognised-reporter list.
func IsCommonReporter(reporter string) bool {
	return commonReporters[NormalizeReporter(reporter)]
}

// scotusReporters default a case's court to "scotus" when no parenthetical
// court is present (spec.md §4.4).
var scotusReporters = map[string]bool{
	"U.S.": true, "S. Ct.": true, "L. Ed.": true, "L. Ed. 2d": true,
}

// IsScotusReporter reports whether reporter implies the Supreme Court.
func IsScotusReporter(reporter string) bool {
	return scotusReporters[NormalizeReporter(reporter)]
}
