// Package resolve links short-form citations (Id., Ibid., supra, bare
// short-form case) back to their full-citation antecedents within a single
// document. A Resolver holds no state outside one invocation: two
// concurrent invocations over different documents share nothing, and input
// citations are never mutated (resolve.go §4.7).
package resolve

import (
	"github.com/coolbeans/lexcite/internal/citation"
)

// ScopeStrategy bounds how far back an Id./Ibid. resolution may reach.
type ScopeStrategy string

const (
	ScopeParagraph ScopeStrategy = "paragraph"
	ScopeSection   ScopeStrategy = "section"
	ScopeFootnote  ScopeStrategy = "footnote"
	ScopeNone      ScopeStrategy = "none"
)

// Options configures a single resolve invocation.
type Options struct {
	ScopeStrategy ScopeStrategy

	// ParagraphBoundaryPattern splits the original text into paragraphs.
	// Defaults to one-or-more blank lines.
	ParagraphBoundaryPattern string

	// SectionBoundaryPattern marks a heading line under the "section"
	// scope strategy. Defaults to an all-caps heading line. If a document
	// supplies no headings matching this pattern, section scope falls
	// back to paragraph scope.
	SectionBoundaryPattern string

	// FootnoteOf maps a citation's index in the input slice to the
	// footnote number it appears in. Required for "footnote" scope;
	// without it, footnote scope degrades to "none".
	FootnoteOf map[int]int

	PartyMatchThreshold float64

	// AllowNestedResolution lets a short-form citation's antecedent
	// itself be a resolved short-form, chaining resolution through to
	// the terminal full citation; the chain stops at an unresolved link.
	// Disabled by default.
	AllowNestedResolution bool

	ReportUnresolved bool
}

// DefaultOptions matches spec.md §6's documented defaults.
func DefaultOptions() Options {
	return Options{
		ScopeStrategy:            ScopeParagraph,
		ParagraphBoundaryPattern: `\n\n+`,
		SectionBoundaryPattern:   `^[A-Z][A-Z \d.]{2,}$`,
		PartyMatchThreshold:      0.8,
		ReportUnresolved:         true,
	}
}

// Resolved pairs an input citation with the outcome of resolving it. Kinds
// other than id/ibid/supra/shortFormCase pass through unresolved (they carry
// no antecedent to find) with Attempted=false.
type Resolved struct {
	Citation citation.Citation

	Attempted     bool
	AntecedentIdx int // index into the input citations slice, -1 if none
	Confidence    float64
	FailureReason string
	Warnings      []string
}

// Resolve implements spec.md §4.7: walk citations in source order, tracking
// lastFullCaseCitation and fullCaseHistory, resolving each short-form
// citation's antecedent.
func Resolve(citations []citation.Citation, originalText string, opts Options) ([]Resolved, error) {
	r := newResolver(citations, originalText, opts)
	return r.run()
}

func (r *resolver) run() ([]Resolved, error) {
	out := make([]Resolved, len(r.citations))

	for i, c := range r.citations {
		switch cc := c.(type) {
		case *citation.Case:
			r.fullCaseHistory = append(r.fullCaseHistory, entry{index: i, c: cc})
			r.lastFullCaseIdx = i
			out[i] = Resolved{Citation: c, Attempted: false, AntecedentIdx: -1}

		case *citation.ID:
			out[i] = r.resolveIDIbid(i, cc.Pincite, "Id.")
		case *citation.Ibid:
			out[i] = r.resolveIDIbid(i, cc.Pincite, "Ibid.")

		case *citation.Supra:
			out[i] = r.resolveSupra(i, cc)

		case *citation.ShortFormCase:
			out[i] = r.resolveShortForm(i, cc)

		default:
			out[i] = Resolved{Citation: c, Attempted: false, AntecedentIdx: -1}
		}
	}

	chainToTerminal(out, r.opts)

	return out, nil
}

type entry struct {
	index int
	c     *citation.Case
}

type resolver struct {
	citations []citation.Citation
	opts      Options

	fullCaseHistory []entry
	lastFullCaseIdx int

	boundaries boundaryTable
}

func newResolver(citations []citation.Citation, text string, opts Options) *resolver {
	if opts.ParagraphBoundaryPattern == "" {
		opts.ParagraphBoundaryPattern = DefaultOptions().ParagraphBoundaryPattern
	}
	if opts.PartyMatchThreshold == 0 {
		opts.PartyMatchThreshold = DefaultOptions().PartyMatchThreshold
	}
	if opts.ScopeStrategy == "" {
		opts.ScopeStrategy = ScopeParagraph
	}
	if opts.ScopeStrategy == ScopeSection && opts.SectionBoundaryPattern == "" {
		opts.SectionBoundaryPattern = DefaultOptions().SectionBoundaryPattern
	}
	return &resolver{
		citations:       citations,
		opts:            opts,
		lastFullCaseIdx: -1,
		boundaries:      buildBoundaryTable(text, opts),
	}
}

func unresolved(c citation.Citation, reason string) Resolved {
	return Resolved{Citation: c, Attempted: true, AntecedentIdx: -1, FailureReason: reason}
}

func withWarning(r Resolved, w string) Resolved {
	r.Warnings = append(r.Warnings, w)
	return r
}
