package resolve

import "testing"

func TestBoundaryTableSameParagraph(t *testing.T) {
	text := "para one text.\n\npara two text."
	tbl := buildBoundaryTable(text, DefaultOptions())

	if !tbl.sameParagraph(0, 5) {
		t.Error("expected offsets within the first paragraph to match")
	}
	secondStart := len("para one text.\n\n")
	if tbl.sameParagraph(0, secondStart+3) {
		t.Error("expected offsets across the blank-line boundary to differ")
	}
}

func TestBoundaryTableSectionFallsBackToParagraph(t *testing.T) {
	text := "no headings here.\n\nstill none."
	opts := DefaultOptions()
	tbl := buildBoundaryTable(text, opts)
	if len(tbl.sectionStarts) != 0 {
		t.Fatal("expected no section headings to be found")
	}
	secondStart := len("no headings here.\n\n")
	if tbl.sameSection(0, secondStart+1) {
		t.Error("expected section scope to fall back to paragraph scope and reject cross-paragraph offsets")
	}
}

func TestBoundaryTableSectionHeading(t *testing.T) {
	text := "BACKGROUND\ntext one.\nANALYSIS\ntext two."
	opts := DefaultOptions()
	tbl := buildBoundaryTable(text, opts)
	if len(tbl.sectionStarts) != 2 {
		t.Fatalf("expected 2 section headings, got %d", len(tbl.sectionStarts))
	}

	analysisStart := len("BACKGROUND\ntext one.\n")
	if tbl.sameSection(0, analysisStart+2) {
		t.Error("expected offsets in different sections to differ")
	}
	if !tbl.sameSection(analysisStart, analysisStart+5) {
		t.Error("expected offsets within the same section to match")
	}
}

func TestInScopeFootnoteWithoutMetadataAllows(t *testing.T) {
	opts := DefaultOptions()
	opts.ScopeStrategy = ScopeFootnote
	tbl := buildBoundaryTable("anything", opts)
	if !inScope(opts, tbl, nil, 0, 1, 0, 5) {
		t.Error("expected footnote scope without FootnoteOf metadata to allow resolution")
	}
}

func TestInScopeFootnoteWithMetadata(t *testing.T) {
	opts := DefaultOptions()
	opts.ScopeStrategy = ScopeFootnote
	tbl := buildBoundaryTable("anything", opts)
	footnoteOf := map[int]int{0: 1, 1: 1, 2: 2}
	if !inScope(opts, tbl, footnoteOf, 0, 1, 0, 5) {
		t.Error("expected citations in the same footnote to be in scope")
	}
	if inScope(opts, tbl, footnoteOf, 0, 2, 0, 5) {
		t.Error("expected citations in different footnotes to be out of scope")
	}
}
