package textclean

import (
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/unicode/norm"
)

// StripHTMLTags removes `<...>` sequences. It is grounded on
// github.com/PuerkitoBio/goquery (the HTML parsing library the pack uses in
// gongahkia-kite for scraping): parsing as a fragment and re-emitting the
// node text is robust to malformed markup in a way a bare tag-stripping
// regex is not, and produces a clean linear text stream for the aligner.
var StripHTMLTags = Cleaner{Name: "stripHtmlTags", Fn: stripHTMLTags}

func stripHTMLTags(text string) (string, error) {
	if !strings.ContainsRune(text, '<') {
		return text, nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		// Malformed-enough-to-fail-parsing input is not itself a fatal
		// condition for this cleaner: fall back to a conservative regex
		// strip rather than aborting the whole pipeline.
		return htmlTagPattern.ReplaceAllString(text, ""), nil
	}
	return doc.Text(), nil
}

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// DecodeHTMLEntities decodes named (&sect;, &amp;, &nbsp;, ...) and numeric
// (&#NNN;, &#xHHH;) entities. html.UnescapeString is the standard library's
// own implementation of this exact, narrowly-scoped transformation — see
// DESIGN.md for why no pack or ecosystem library improves on it.
var DecodeHTMLEntities = Cleaner{Name: "decodeHtmlEntities", Fn: decodeHTMLEntities}

func decodeHTMLEntities(text string) (string, error) {
	return html.UnescapeString(text), nil
}

// NormalizeWhitespace collapses tabs/newlines to spaces and runs of spaces
// to one.
var NormalizeWhitespace = Cleaner{Name: "normalizeWhitespace", Fn: normalizeWhitespace}

var (
	tabsAndNewlines = regexp.MustCompile(`[\t\n\r\f\v]+`)
	spaceRuns       = regexp.MustCompile(` {2,}`)
)

func normalizeWhitespace(text string) (string, error) {
	text = tabsAndNewlines.ReplaceAllString(text, " ")
	text = spaceRuns.ReplaceAllString(text, " ")
	return text, nil
}

// NormalizeUnicode applies NFKC normalization via golang.org/x/text, the
// idiomatic Go choice since Unicode normalization forms are not in the
// standard library (present as an indirect dependency across the pack —
// Kocoro-lab-Shannon, Tangerg-lynx — promoted here to a direct one).
var NormalizeUnicode = Cleaner{Name: "normalizeUnicode", Fn: normalizeUnicode}

func normalizeUnicode(text string) (string, error) {
	return norm.NFKC.String(text), nil
}

// FixSmartQuotes converts curly quotes to straight ASCII quotes.
var FixSmartQuotes = Cleaner{Name: "fixSmartQuotes", Fn: fixSmartQuotes}

var smartQuoteReplacer = strings.NewReplacer(
	"“", `"`, "”", `"`,
	"‘", "'", "’", "'",
	"«", `"`, "»", `"`,
)

func fixSmartQuotes(text string) (string, error) {
	return smartQuoteReplacer.Replace(text), nil
}

// NormalizeDashes converts en/em dashes to ASCII hyphens.
var NormalizeDashes = Cleaner{Name: "normalizeDashes", Fn: normalizeDashes}

var dashReplacer = strings.NewReplacer("–", "-", "—", "-", "−", "-")

func normalizeDashes(text string) (string, error) {
	return dashReplacer.Replace(text), nil
}

// RemoveOcrArtifacts strips stray underscores left by OCR column breaks,
// mirroring the teacher's pkg/extract/preprocess.go artifact-cleanup intent
// (there applied line-by-line to GPO text; here applied to a single
// underscore run anywhere in the stream).
var RemoveOcrArtifacts = Cleaner{Name: "removeOcrArtifacts", Fn: removeOcrArtifacts}

var ocrUnderscoreRun = regexp.MustCompile(`_+`)

func removeOcrArtifacts(text string) (string, error) {
	// A run of 3+ underscores is a blank-page placeholder (spec.md §4.4) and
	// must survive; only strip shorter stray runs.
	return ocrUnderscoreRun.ReplaceAllStringFunc(text, func(m string) string {
		if len(m) >= 3 {
			return m
		}
		return ""
	}), nil
}
