package citation

import (
	"regexp"
	"strings"

	"github.com/coolbeans/lexcite/internal/cpattern"
	"github.com/coolbeans/lexcite/internal/reporterdb"
	"github.com/coolbeans/lexcite/internal/txtspan"
)

// coreShape splits a case token's matched text into volume/reporter/page,
// per spec.md §4.4 "Core parse": volume is digits, reporter is
// letters/periods/spaces/digits, page is digits or a 3+ underscore/hyphen
// blank-page placeholder.
var coreShape = regexp.MustCompile(`^(\d+)\s+([A-Za-z0-9.\s]+?)\s+(\d+|[_-]{3,})$`)

var pincitePattern = regexp.MustCompile(`^\s*,\s*(\d+)`)
var parentheticalPattern = regexp.MustCompile(`^\s*\(([^)]+)\)`)

// nearbyBareYearPattern is a fallback scan for the historical sanity check
// (spec.md §4.4) when the immediate pincite/parenthetical lookahead finds
// nothing adjacent: a bare "(YYYY)" further along the same citation clause
// still carries a year for that purpose, without the false precision of
// treating the intervening text as this citation's own court/pincite.
var nearbyBareYearPattern = regexp.MustCompile(`^[^()]{0,80}\((\d{4})\)`)

var enBancPattern = regexp.MustCompile(`(?i)\ben banc\b`)
var perCuriamPattern = regexp.MustCompile(`(?i)\bper curiam\b`)

// caseNameLookbackWindow is spec.md §4.4's 200-character backward scan.
const caseNameLookbackWindow = 200

var partyVPattern = regexp.MustCompile(`([A-Z][\w.&,' -]*?)\s+v\.?\s+([A-Z][\w.&,' -]*?),\s*$`)
var proceduralPattern = regexp.MustCompile(`(?:In re|Ex parte|Matter of)\s+([A-Z][\w.&,' -]*?),\s*$`)

// signalWords are introductory citation signals (Bluebook §1.2) that a
// greedy lookback can accidentally fold into the plaintiff name; strip them
// from the start of a captured party.
var signalWords = []string{"See also", "See generally", "See", "Accord", "Cf.", "Compare", "Contra", "But see"}

func stripSignalWord(party string) string {
	stripped, _ := stripLeadingSignalWord(party)
	return stripped
}

// stripLeadingSignalWord strips a leading signal word (and the whitespace
// following it) from s, returning the trimmed string and the number of
// bytes removed from the front, so a caller tracking s's original offset
// can advance it by the same amount.
func stripLeadingSignalWord(s string) (string, int) {
	for _, w := range signalWords {
		if strings.HasPrefix(s, w+" ") {
			skip := len(w)
			for skip < len(s) && s[skip] == ' ' {
				skip++
			}
			return s[skip:], skip
		}
	}
	return s, 0
}

// ExtractCase parses a case token into a full Case citation. originalText
// is the full original (pre-clean) document, used for the case-name
// lookback which spec.md §4.4 specifies runs against original offsets.
func ExtractCase(tok cpattern.Token, offsetMap *txtspan.Map, cleaned string, originalText string, db reporterdb.ReporterDB, currentYear int) *Case {
	c := &Case{
		BaseFields: BaseFields{
			Span:            tok.Span,
			MatchedText:     tok.MatchedText,
			PatternsChecked: []string{tok.PatternID},
		},
	}

	m := coreShape.FindStringSubmatch(tok.MatchedText)
	if m == nil {
		c.Confidence = 0
		c.Warnings = append(c.Warnings, txtspan.Warning{Level: txtspan.LevelWarn, Message: "case token did not match expected volume/reporter/page shape"})
		return c
	}
	c.Volume = m[1]
	c.Reporter = NormalizeReporter(m[2])
	if isBlankPagePlaceholder(m[3]) {
		c.HasBlankPage = true
	} else {
		c.Page = m[3]
	}

	parseParenthetical(c, tok, cleaned, offsetMap)
	lookbackCaseName(c, tok, originalText)
	computeFullSpan(c, tok)
	computeConfidence(c, db, currentYear)

	return c
}

func isBlankPagePlaceholder(page string) bool {
	return strings.Count(page, "_") >= 3 || strings.Count(page, "-") >= 3
}

// parseParenthetical implements spec.md §4.4's "Lookahead parenthetical
// parse": from cleaned starting at token.cleanEnd, match an optional
// pincite then a parenthetical body, then pull year/date/court/disposition
// out of the body.
func parseParenthetical(c *Case, tok cpattern.Token, cleaned string, offsetMap *txtspan.Map) {
	rest := cleaned[tok.Span.CleanEnd:]

	// Try pincite-then-parenthetical first; only commit the pincite if a
	// parenthetical actually follows it, otherwise a parallel citation's
	// trailing ", 93 S. Ct. 705" would be misread as this citation's own
	// pincite with no parenthetical to back it up.
	consumed := 0
	pincite := ""
	if pm := pincitePattern.FindStringSubmatch(rest); pm != nil {
		if parentheticalPattern.MatchString(rest[len(pm[0]):]) {
			pincite = pm[1]
			consumed = len(pm[0])
		}
	}

	pm := parentheticalPattern.FindStringSubmatch(rest[consumed:])
	if pm == nil {
		// No parenthetical immediately adjacent (a parallel citation's
		// shared parenthetical trails the whole group, not this member; a
		// pinpoint clause like ", ch. 29" can also intervene). Still look
		// for a bare year within a bounded window so the historical sanity
		// check has something to act on.
		if ym := nearbyBareYearPattern.FindStringSubmatch(rest); ym != nil {
			if y, ok := lastYear(ym[1]); ok {
				c.Year = y
			}
		}
		if IsScotusReporter(c.Reporter) {
			c.Court = "scotus"
		}
		return
	}
	c.Pincite = pincite
	body := pm[1]
	c.Parenthetical = body

	parenEnd := tok.Span.CleanEnd + consumed + len(pm[0])
	origEnd := offsetMap.CleanToOriginal(parenEnd)
	c.parentheticalOriginalEnd = origEnd

	if d := parseDate(body); d != nil {
		c.Date = d
		c.Year = d.Year
	} else if y, ok := lastYear(body); ok {
		c.Year = y
	}

	if enBancPattern.MatchString(body) {
		c.Disposition = "en banc"
	} else if perCuriamPattern.MatchString(body) {
		c.Disposition = "per curiam"
	}

	court := stripDateComponents(body)
	if court != "" {
		c.Court = court
	} else if IsScotusReporter(c.Reporter) {
		c.Court = "scotus"
	}
}

// stripDateComponents removes recognised date substrings and disposition
// markers from a parenthetical body, returning whatever letters remain as
// the court abbreviation (spec.md §4.4 "Court").
func stripDateComponents(body string) string {
	s := monthAbbrPattern.ReplaceAllString(body, "")
	s = slashDatePattern.ReplaceAllString(s, "")
	s = enBancPattern.ReplaceAllString(s, "")
	s = perCuriamPattern.ReplaceAllString(s, "")
	s = yearPattern.ReplaceAllString(s, "")
	s = strings.TrimSpace(strings.Trim(s, ", "))
	if !strings.ContainsAny(strings.ToLower(s), "abcdefghijklmnopqrstuvwxyz") {
		return ""
	}
	return s
}

// lookbackCaseName implements spec.md §4.4's "Case name lookback": scan
// backward up to 200 characters from the token's original start for a
// "PartyA v. PartyB," pattern or a procedural-prefix pattern, choosing the
// closest match.
func lookbackCaseName(c *Case, tok cpattern.Token, originalText string) {
	start := tok.Span.OriginalStart - caseNameLookbackWindow
	if start < 0 {
		start = 0
	}
	window := originalText[start:tok.Span.OriginalStart]

	// "Choosing the closest match" (spec.md §4.4): partyVPattern is anchored
	// at the end of the window, so it yields at most one match, the one that
	// ends right before the token. That match can fold an introductory signal
	// ("See Smith v. Doe") into the plaintiff capture; stripSignalWord and
	// stripLeadingSignalWord remove it.
	if matches := partyVPattern.FindAllStringSubmatchIndex(window, -1); len(matches) > 0 {
		m := matches[len(matches)-1]
		plaintiff := stripSignalWord(window[m[2]:m[3]])
		defendant := window[m[4]:m[5]]
		c.Plaintiff = NormalizeParty(plaintiff)
		c.Defendant = NormalizeParty(defendant)
		rawCaseName := strings.TrimSuffix(strings.TrimSpace(window[m[0]:m[1]]), ",")
		caseName, skip := stripLeadingSignalWord(rawCaseName)
		c.CaseName = caseName
		c.caseNameOriginalStart = start + m[0] + skip
		return
	}

	if matches := proceduralPattern.FindAllStringSubmatchIndex(window, -1); len(matches) > 0 {
		m := matches[len(matches)-1]
		caseName := strings.TrimSuffix(strings.TrimSpace(window[m[0]:m[1]]), ",")
		c.CaseName = caseName
		c.caseNameOriginalStart = start + m[0]
	}
}

// computeFullSpan implements spec.md §4.4's FullSpan formula.
func computeFullSpan(c *Case, tok cpattern.Token) {
	fullStart := tok.Span.OriginalStart
	if c.CaseName != "" {
		fullStart = c.caseNameOriginalStart
	}
	fullEnd := tok.Span.OriginalEnd
	if c.parentheticalOriginalEnd > fullEnd {
		fullEnd = c.parentheticalOriginalEnd
	}
	c.FullSpan = &txtspan.Span{
		CleanStart:    tok.Span.CleanStart,
		CleanEnd:      tok.Span.CleanEnd,
		OriginalStart: fullStart,
		OriginalEnd:   fullEnd,
	}
}

// computeConfidence implements spec.md §4.4's confidence formula.
func computeConfidence(c *Case, db reporterdb.ReporterDB, currentYear int) {
	c.Confidence = 0.5

	if IsCommonReporter(c.Reporter) {
		c.Confidence += 0.3
	}
	if c.Year != 0 && c.Year <= currentYear {
		c.Confidence += 0.2
	}

	if db != nil {
		matches := db.FindByAbbreviation(c.Reporter)
		switch len(matches) {
		case 0:
			c.Confidence -= 0.3
			c.Warnings = append(c.Warnings, txtspan.Warning{Level: txtspan.LevelWarn, Message: "reporter not found in reporter database"})
		case 1:
			c.Confidence += 0.2
		default:
			c.Confidence -= 0.1 * float64(len(matches)-1)
			for _, entry := range matches {
				c.PossibleInterpretations = append(c.PossibleInterpretations, Interpretation{
					ReporterName: entry.Name,
					Confidence:   1.0 / float64(len(matches)),
				})
			}
			c.Warnings = append(c.Warnings, txtspan.Warning{Level: txtspan.LevelWarn, Message: "ambiguous reporter abbreviation"})
		}
	}

	if c.HasBlankPage {
		c.Confidence = 0.8
	}

	c.clampConfidence()
}

// RejectHistorical applies spec.md §4.4's historical sanity check: a case
// with year < 1700 is treated as a medieval/historical false positive and
// dropped entirely by the caller (extract.go), not merely down-weighted.
func RejectHistorical(c *Case) bool {
	return c.Year != 0 && c.Year < 1700
}

