// Package cpattern provides the citation pattern catalogue and the
// ReDoS-safe tokenizer that sweeps it over cleaned text.
package cpattern

import (
	"fmt"
	"regexp"
)

// Kind discriminates the citation family a Pattern targets.
type Kind string

const (
	KindCase            Kind = "case"
	KindStatute         Kind = "statute"
	KindJournal         Kind = "journal"
	KindNeutral         Kind = "neutral"
	KindPublicLaw       Kind = "publicLaw"
	KindFederalRegister Kind = "federalRegister"
	KindID              Kind = "id"
	KindIbid            Kind = "ibid"
	KindSupra           Kind = "supra"
	KindShortFormCase   Kind = "shortFormCase"
)

// Pattern is a named, kind-tagged regex with a dedup priority. Lower
// Priority values win when two tokens' spans overlap (see Priority below).
type Pattern struct {
	ID       string `yaml:"id" json:"id"`
	Kind     Kind   `yaml:"kind" json:"kind"`
	Regex    string `yaml:"regex" json:"regex"`
	Priority int    `yaml:"priority" json:"priority"`

	compiled *regexp.Regexp
}

// Compile validates and compiles the pattern's regex. It also runs the
// static ReDoS audit; a pattern that fails either check is rejected at
// catalogue build time, never at tokenize time.
func (p *Pattern) Compile() error {
	re, err := regexp.Compile(p.Regex)
	if err != nil {
		return fmt.Errorf("pattern %q: compiling regex: %w", p.ID, err)
	}
	if err := auditStatic(p.Regex); err != nil {
		return fmt.Errorf("pattern %q: %w", p.ID, err)
	}
	p.compiled = re
	return nil
}

// Compiled returns the compiled regex, panicking if Compile was never
// called — a programmer error, not a runtime condition.
func (p *Pattern) Compiled() *regexp.Regexp {
	if p.compiled == nil {
		panic(fmt.Sprintf("cpattern: pattern %q used before Compile", p.ID))
	}
	return p.compiled
}

// priorityOrder is the dedup priority from spec.md §4.6: neutral > short-form
// > case > statute > journal > publicLaw > federalRegister. Id/Ibid never
// overlap with span-bearing citation kinds in practice but are given the
// highest priority since they are narrow and specific; Supra sits between
// short-form and case.
var priorityOrder = map[Kind]int{
	KindID:              0,
	KindIbid:            0,
	KindNeutral:         1,
	KindShortFormCase:   2,
	KindSupra:           3,
	KindCase:            4,
	KindStatute:         5,
	KindJournal:         6,
	KindPublicLaw:       7,
	KindFederalRegister: 8,
}

// DefaultPriority returns the standard catalogue priority for a kind, used
// when a caller-supplied pattern omits an explicit Priority.
func DefaultPriority(k Kind) int {
	if p, ok := priorityOrder[k]; ok {
		return p
	}
	return len(priorityOrder)
}
