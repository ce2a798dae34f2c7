package resolve

import "regexp"

// boundaryTable precomputes paragraph and section boundary offsets into the
// original text so scope checks are O(log n) lookups rather than repeated
// regex scans per citation pair.
type boundaryTable struct {
	paragraphStarts []int // sorted offsets where a paragraph begins
	sectionStarts   []int // sorted offsets where a section heading begins; empty if no headings found
}

func buildBoundaryTable(text string, opts Options) boundaryTable {
	var t boundaryTable
	t.paragraphStarts = splitOffsets(text, opts.ParagraphBoundaryPattern)

	if opts.SectionBoundaryPattern != "" {
		t.sectionStarts = headingOffsets(text, opts.SectionBoundaryPattern)
	}
	return t
}

func splitOffsets(text, pattern string) []int {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return []int{0}
	}
	matches := re.FindAllStringIndex(text, -1)
	starts := []int{0}
	for _, m := range matches {
		starts = append(starts, m[1])
	}
	return starts
}

func headingOffsets(text, pattern string) []int {
	re, err := regexp.Compile("(?m)" + pattern)
	if err != nil {
		return nil
	}
	var starts []int
	for _, m := range re.FindAllStringIndex(text, -1) {
		starts = append(starts, m[0])
	}
	return starts
}

// regionIndex returns the index of the paragraph/section containing offset,
// i.e. the count of boundary starts at or before offset, minus one.
func regionIndex(starts []int, offset int) int {
	lo, hi := 0, len(starts)
	for lo < hi {
		mid := (lo + hi) / 2
		if starts[mid] <= offset {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo - 1
}

// sameParagraph reports whether two original-text offsets fall in the same
// paragraph.
func (t boundaryTable) sameParagraph(a, b int) bool {
	return regionIndex(t.paragraphStarts, a) == regionIndex(t.paragraphStarts, b)
}

// sameSection reports whether two offsets fall within the same
// heading-delimited section. Falls back to paragraph scope when no heading
// matched the document at all (SPEC_FULL.md Open Questions: "section"
// scope).
func (t boundaryTable) sameSection(a, b int) bool {
	if len(t.sectionStarts) == 0 {
		return t.sameParagraph(a, b)
	}
	return regionIndex(t.sectionStarts, a) == regionIndex(t.sectionStarts, b)
}

// inScope applies the configured ScopeStrategy between an antecedent
// citation's original span and a reference citation's original span.
func inScope(opts Options, boundaries boundaryTable, footnoteOf map[int]int, antecedentIdx, refIdx int, antecedentOffset, refOffset int) bool {
	switch opts.ScopeStrategy {
	case ScopeNone:
		return true
	case ScopeSection:
		return boundaries.sameSection(antecedentOffset, refOffset)
	case ScopeFootnote:
		if footnoteOf == nil {
			return true
		}
		af, aok := footnoteOf[antecedentIdx]
		rf, rok := footnoteOf[refIdx]
		if !aok || !rok {
			return true
		}
		return af == rf
	case ScopeParagraph:
		fallthrough
	default:
		return boundaries.sameParagraph(antecedentOffset, refOffset)
	}
}
