// Package txtspan provides the position-preserving primitives shared by the
// cleaner, tokenizer, and extractors: half-open byte spans and the
// bidirectional offset map between cleaned and original text.
package txtspan

import "fmt"

// Span is a half-open byte interval with paired offsets in both the cleaned
// and original text. Spans are immutable once constructed.
type Span struct {
	CleanStart    int
	CleanEnd      int
	OriginalStart int
	OriginalEnd   int
}

// Valid reports whether the span satisfies the half-open interval invariant
// (End > Start) on both sides.
func (s Span) Valid() bool {
	return s.CleanEnd > s.CleanStart && s.OriginalEnd > s.OriginalStart
}

// CleanLen returns the length of the clean-text interval.
func (s Span) CleanLen() int {
	return s.CleanEnd - s.CleanStart
}

// String renders the span for diagnostics.
func (s Span) String() string {
	return fmt.Sprintf("clean[%d:%d] orig[%d:%d]", s.CleanStart, s.CleanEnd, s.OriginalStart, s.OriginalEnd)
}

// Map is the bidirectional offset map produced by the cleaner.
//
// It is built dense (one entry per offset) for texts under denseThreshold
// bytes, and falls back to a run-length-encoded representation for larger
// texts, per the re-architecture note in SPEC_FULL.md §9. Dense lookups are
// O(1) array reads; run-length lookups binary-search the segments, so they
// cost O(log n) in the number of segments.
type Map struct {
	// cleanToOrig[i] is the original offset corresponding to clean offset i,
	// for i in [0, cleanLen]. Built dense when both cleanLen and origLen
	// are <= denseThreshold.
	cleanToOrig []int
	origToClean []int

	// Run-length segments used instead of the dense arrays once the text
	// exceeds denseThreshold. Each segment maps a contiguous clean range to
	// a contiguous original range advancing at the same rate (the common
	// case for untouched text between edits).
	cleanToOrigRuns []run
	origToCleanRuns []run

	dense bool

	cleanLen int
	origLen  int
}

type run struct {
	srcStart, srcEnd int // half-open, in the map's domain
	dstStart         int // corresponding start offset in the map's range
}

// denseThreshold is the text length (bytes) above which Map switches from
// parallel arrays to run-length segments: Build uses the dense arrays only
// when both the clean and the original text are at most this long.
// SPEC_FULL.md §9 leaves the exact cutover to the implementer; the cleaner
// applies no size threshold of its own.
const denseThreshold = 500_000

// NewIdentityMap builds a Map where every offset maps to itself, for use when
// a cleaner performs no transformation (e.g. the empty pipeline).
func NewIdentityMap(length int) *Map {
	b := NewBuilder(length, length)
	for i := 0; i <= length; i++ {
		b.Put(i, i)
	}
	return b.Build()
}

// CleanToOriginal translates a clean-text offset to its original-text offset.
// Falls back to the clamped clean offset if the map has no entry there
// (spec.md §4.4 "Falls back to the clean offset if the map is missing an
// entry").
func (m *Map) CleanToOriginal(offset int) int {
	if m == nil {
		return offset
	}
	if m.dense {
		return lookupDense(m.cleanToOrig, offset, m.cleanLen)
	}
	return lookupRuns(m.cleanToOrigRuns, offset, m.cleanLen)
}

// OriginalToClean translates an original-text offset to its clean-text
// offset, with the same fallback behavior as CleanToOriginal.
func (m *Map) OriginalToClean(offset int) int {
	if m == nil {
		return offset
	}
	if m.dense {
		return lookupDense(m.origToClean, offset, m.origLen)
	}
	return lookupRuns(m.origToCleanRuns, offset, m.origLen)
}

func lookupDense(table []int, offset, domainLen int) int {
	if offset < 0 {
		offset = 0
	}
	if offset > domainLen {
		offset = domainLen
	}
	if offset < len(table) {
		return table[offset]
	}
	if len(table) == 0 {
		return offset
	}
	return table[len(table)-1]
}

func lookupRuns(runs []run, offset, domainLen int) int {
	if offset < 0 {
		offset = 0
	}
	if offset > domainLen {
		offset = domainLen
	}
	if len(runs) == 0 {
		return offset
	}
	// Runs are sorted by srcStart; binary search for the containing run.
	lo, hi := 0, len(runs)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if runs[mid].srcStart <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	r := runs[lo]
	if offset >= r.srcEnd {
		// Beyond the last run: conservatively map to the run's final offset,
		// per the aligner's "map remaining positions to the last valid
		// mapping" rule in spec.md §4.1.
		return r.dstStart + (r.srcEnd - r.srcStart - 1)
	}
	return r.dstStart + (offset - r.srcStart)
}
