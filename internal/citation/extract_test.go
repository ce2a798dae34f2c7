package citation

import (
	"testing"

	"github.com/coolbeans/lexcite/internal/cpattern"
	"github.com/coolbeans/lexcite/internal/txtspan"
)

func TestExtractSimpleFullCitation(t *testing.T) {
	text := "See Smith v. Doe, 500 F.2d 123 (9th Cir. 1974)."
	m := txtspan.NewIdentityMap(len(text))
	citations, warnings := Extract(text, text, m, cpattern.BuiltinCatalogue(), nil, 2026, nil)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	var cases []*Case
	for _, c := range citations {
		if cc, ok := c.(*Case); ok {
			cases = append(cases, cc)
		}
	}
	if len(cases) != 1 {
		t.Fatalf("expected exactly one case citation, got %d", len(cases))
	}
	c := cases[0]
	if c.Volume != "500" || c.Reporter != "F.2d" || c.Page != "123" {
		t.Errorf("core = %+v", c)
	}
	if c.Court != "9th Cir." {
		t.Errorf("Court = %q", c.Court)
	}
	if c.Year != 1974 {
		t.Errorf("Year = %d", c.Year)
	}
	if c.Plaintiff != "smith" || c.Defendant != "doe" {
		t.Errorf("parties = %q v %q", c.Plaintiff, c.Defendant)
	}
	if c.Confidence < 0.9 {
		t.Errorf("Confidence = %v, want >= 0.9", c.Confidence)
	}
}

func TestExtractParallelGroup(t *testing.T) {
	text := "Roe v. Wade, 410 U.S. 113, 93 S. Ct. 705, 35 L. Ed. 2d 147 (1973)."
	m := txtspan.NewIdentityMap(len(text))
	citations, _ := Extract(text, text, m, cpattern.BuiltinCatalogue(), nil, 2026, nil)

	var cases []*Case
	for _, c := range citations {
		if cc, ok := c.(*Case); ok {
			cases = append(cases, cc)
		}
	}
	if len(cases) != 3 {
		t.Fatalf("expected 3 case citations, got %d", len(cases))
	}

	for _, c := range cases {
		if c.Year != 1973 {
			t.Errorf("citation %s %s: Year = %d, want 1973", c.Volume, c.Reporter, c.Year)
		}
		if c.GroupID != "410-U.S.-113" {
			t.Errorf("citation %s %s: GroupID = %q, want 410-U.S.-113", c.Volume, c.Reporter, c.GroupID)
		}
	}

	primary := cases[0]
	if len(primary.ParallelCitations) != 2 {
		t.Fatalf("expected primary to carry 2 parallel citations, got %d", len(primary.ParallelCitations))
	}
	if primary.ParallelCitations[0].Reporter != "S. Ct." || primary.ParallelCitations[1].Reporter != "L. Ed. 2d" {
		t.Errorf("parallel citations = %+v", primary.ParallelCitations)
	}
}

func TestExtractHistoricalFalsePositiveDropped(t *testing.T) {
	text := "3 Edw. 1, ch. 29 (1297)."
	m := txtspan.NewIdentityMap(len(text))
	citations, _ := Extract(text, text, m, cpattern.BuiltinCatalogue(), nil, 2026, nil)

	for _, c := range citations {
		if cc, ok := c.(*Case); ok {
			t.Errorf("expected historical citation to be dropped, got %+v", cc)
		}
	}
}

func TestExtractShortFormNotMaskedByJournal(t *testing.T) {
	text := "123 U.S. at 100"
	m := txtspan.NewIdentityMap(len(text))
	citations, _ := Extract(text, text, m, cpattern.BuiltinCatalogue(), nil, 2026, nil)

	var sawShortForm bool
	for _, c := range citations {
		if c.Kind() == cpattern.KindShortFormCase {
			sawShortForm = true
		}
		if c.Kind() == cpattern.KindJournal {
			t.Errorf("expected the broad journal pattern to be masked by the short-form match")
		}
	}
	if !sawShortForm {
		t.Error("expected a short-form case citation")
	}
}

func TestExtractDeterministic(t *testing.T) {
	text := "Smith v. Doe, 500 F.2d 123 (9th Cir. 1974). Id. at 125."
	m := txtspan.NewIdentityMap(len(text))

	first, _ := Extract(text, text, m, cpattern.BuiltinCatalogue(), nil, 2026, nil)
	second, _ := Extract(text, text, m, cpattern.BuiltinCatalogue(), nil, 2026, nil)

	if len(first) != len(second) {
		t.Fatalf("non-deterministic citation count: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Base().MatchedText != second[i].Base().MatchedText {
			t.Errorf("non-deterministic at index %d: %q vs %q", i, first[i].Base().MatchedText, second[i].Base().MatchedText)
		}
	}
}
