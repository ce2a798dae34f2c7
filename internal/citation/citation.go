// Package citation implements the typed citation model and the per-kind
// extractors that turn a cpattern.Token into a fully parsed Citation.
package citation

import (
	"github.com/coolbeans/lexcite/internal/cpattern"
	"github.com/coolbeans/lexcite/internal/txtspan"
)

// Citation is the tagged union over citation kinds (spec.md §3.1): a Go
// interface with a Kind discriminator, one concrete struct per kind, all
// embedding BaseFields for the fields common to every variant.
type Citation interface {
	Kind() cpattern.Kind
	Base() *BaseFields
}

// BaseFields holds the fields common to every citation variant.
type BaseFields struct {
	Span            txtspan.Span
	MatchedText     string
	Confidence      float64
	Warnings        []txtspan.Warning
	ProcessTimeMs   float64
	PatternsChecked []string
}

func (b *BaseFields) clampConfidence() {
	if b.Confidence < 0 {
		b.Confidence = 0
	}
	if b.Confidence > 1 {
		b.Confidence = 1
	}
}

// Date is the structured parenthetical date (spec.md §4.4). Adapted from
// the teacher's pkg/types.Date, trimmed to what a citation parenthetical can
// carry: no timezone or amendment-tracking fields.
type Date struct {
	ISO   string
	Year  int
	Month int // 0 when only the year was recovered
	Day   int // 0 when only the year/month were recovered
}

// Case is a full case citation (spec.md §3.1 "case").
type Case struct {
	BaseFields

	Volume   string
	Reporter string
	Page     string // empty when HasBlankPage

	Pincite              string
	Court                string
	Year                 int
	CaseName             string
	Plaintiff            string
	Defendant            string
	Parenthetical        string
	Disposition          string
	HasBlankPage         bool
	Date                 *Date
	FullSpan             *txtspan.Span
	GroupID              string
	ParallelCitations    []ParallelRef
	PossibleInterpretations []Interpretation

	// caseNameOriginalStart and parentheticalOriginalEnd are working state
	// threaded between the extraction steps in case.go.
	// caseNameOriginalStart is valid only when CaseName is set;
	// parentheticalOriginalEnd is zero when no parenthetical was found.
	caseNameOriginalStart   int
	parentheticalOriginalEnd int
}

func (c *Case) Kind() cpattern.Kind   { return cpattern.KindCase }
func (c *Case) Base() *BaseFields     { return &c.BaseFields }

// ParallelRef identifies a secondary citation within a parallel group
// (spec.md §3.1 "ParallelGroup").
type ParallelRef struct {
	Volume   string
	Reporter string
	Page     string
}

// Interpretation is one candidate reporter-DB match when a reporter
// abbreviation is ambiguous (spec.md §4.4 "Ambiguity").
type Interpretation struct {
	ReporterName string
	Confidence   float64
}

// Statute is a code-section citation (e.g. "42 U.S.C. § 1983").
type Statute struct {
	BaseFields

	Title        string
	Code         string
	Section      string
	Subsections  []string
	SectionRange string
}

func (s *Statute) Kind() cpattern.Kind { return cpattern.KindStatute }
func (s *Statute) Base() *BaseFields   { return &s.BaseFields }

// Journal is a law-review-style citation.
type Journal struct {
	BaseFields

	JournalName  string
	Abbreviation string
	Volume       string
	Page         string
	Pincite      string
	Year         int
	Author       string
	Title        string
}

func (j *Journal) Kind() cpattern.Kind { return cpattern.KindJournal }
func (j *Journal) Base() *BaseFields   { return &j.BaseFields }

// Neutral is a vendor-neutral citation (Westlaw, Lexis).
type Neutral struct {
	BaseFields

	Year           int
	Court          string
	DocumentNumber string
}

func (n *Neutral) Kind() cpattern.Kind { return cpattern.KindNeutral }
func (n *Neutral) Base() *BaseFields   { return &n.BaseFields }

// PublicLaw is a "Pub. L. No. NNN-MMM" citation.
type PublicLaw struct {
	BaseFields

	Congress  string
	LawNumber string
	Title     string
}

func (p *PublicLaw) Kind() cpattern.Kind { return cpattern.KindPublicLaw }
func (p *PublicLaw) Base() *BaseFields   { return &p.BaseFields }

// FederalRegister is an "NN Fed. Reg. NNNN" citation.
type FederalRegister struct {
	BaseFields

	Volume string
	Page   string
	Year   int
}

func (f *FederalRegister) Kind() cpattern.Kind { return cpattern.KindFederalRegister }
func (f *FederalRegister) Base() *BaseFields   { return &f.BaseFields }

// ID is an "Id." short-form reference.
type ID struct {
	BaseFields

	Pincite string
}

func (i *ID) Kind() cpattern.Kind { return cpattern.KindID }
func (i *ID) Base() *BaseFields   { return &i.BaseFields }

// Ibid is an "Ibid." short-form reference.
type Ibid struct {
	BaseFields

	Pincite string
}

func (i *Ibid) Kind() cpattern.Kind { return cpattern.KindIbid }
func (i *Ibid) Base() *BaseFields   { return &i.BaseFields }

// Supra is a "Party, supra" short-form reference.
type Supra struct {
	BaseFields

	PartyName string
	Pincite   string
}

func (s *Supra) Kind() cpattern.Kind { return cpattern.KindSupra }
func (s *Supra) Base() *BaseFields   { return &s.BaseFields }

// ShortFormCase is a bare "123 U.S. at 456" reference.
type ShortFormCase struct {
	BaseFields

	Volume   string
	Reporter string
	Pincite  string
}

func (s *ShortFormCase) Kind() cpattern.Kind { return cpattern.KindShortFormCase }
func (s *ShortFormCase) Base() *BaseFields   { return &s.BaseFields }
