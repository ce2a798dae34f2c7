// Package annotate inserts markup around citation spans in an original
// document. It is a thin span-rewriting consumer of citation.Citation, kept
// minimal per spec.md §1: annotation markup insertion lives outside the
// four core subsystems and is not itself a target for extensive
// elaboration.
package annotate

import (
	"sort"
	"strings"

	"github.com/coolbeans/lexcite/internal/citation"
)

// Marker supplies the open/close markup wrapped around a matched citation
// span. Kind is the matched citation's cpattern.Kind rendered as a string,
// letting callers vary markup per citation type (e.g. a CSS class).
type Marker func(kind string) (open, close string)

// HTMLMarker wraps every citation in a <span> tagged with its kind as a CSS
// class, the common case for rendering annotated legal text in a browser.
func HTMLMarker(kind string) (string, string) {
	return `<span class="citation citation-` + kind + `">`, `</span>`
}

// Annotate rewrites text by wrapping each citation's original span with the
// markup produced by mark. Overlapping spans (which Dedup should already
// have resolved upstream) are skipped in source order: once a region is
// wrapped, a later citation overlapping it is left unannotated rather than
// producing malformed nesting.
func Annotate(text string, citations []citation.Citation, mark Marker) string {
	if mark == nil {
		mark = HTMLMarker
	}

	spans := make([]citation.Citation, len(citations))
	copy(spans, citations)
	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].Base().Span.OriginalStart < spans[j].Base().Span.OriginalStart
	})

	var b strings.Builder
	cursor := 0
	for _, c := range spans {
		s := c.Base().Span
		if s.OriginalStart < cursor {
			continue // overlaps a span already emitted; skip rather than nest
		}
		if s.OriginalStart > len(text) || s.OriginalEnd > len(text) {
			continue
		}

		b.WriteString(text[cursor:s.OriginalStart])
		open, close := mark(string(c.Kind()))
		b.WriteString(open)
		b.WriteString(text[s.OriginalStart:s.OriginalEnd])
		b.WriteString(close)
		cursor = s.OriginalEnd
	}
	b.WriteString(text[cursor:])

	return b.String()
}
