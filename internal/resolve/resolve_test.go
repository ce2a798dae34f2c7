package resolve

import (
	"testing"

	"github.com/coolbeans/lexcite/internal/citation"
	"github.com/coolbeans/lexcite/internal/cpattern"
	"github.com/coolbeans/lexcite/internal/txtspan"
)

func extractFor(t *testing.T, text string) []citation.Citation {
	t.Helper()
	m := txtspan.NewIdentityMap(len(text))
	citations, warnings := citation.Extract(text, text, m, cpattern.BuiltinCatalogue(), nil, 2026, nil)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	return citations
}

// TestResolveIdWithinScope is spec.md §8 scenario 3.
func TestResolveIdWithinScope(t *testing.T) {
	text := "Smith v. Doe, 500 F.2d 123 (1974). Id. at 125."
	cs := extractFor(t, text)

	var idIdx int = -1
	for i, c := range cs {
		if c.Kind() == cpattern.KindID {
			idIdx = i
		}
	}
	if idIdx < 0 {
		t.Fatal("expected an Id. citation in the extraction")
	}

	results, err := Resolve(cs, text, DefaultOptions())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	r := results[idIdx]
	if r.FailureReason != "" {
		t.Fatalf("expected Id. to resolve, got failure: %s", r.FailureReason)
	}
	if r.Confidence != 1.0 {
		t.Errorf("Confidence = %v, want 1.0", r.Confidence)
	}
	if r.AntecedentIdx < 0 || cs[r.AntecedentIdx].Kind() != cpattern.KindCase {
		t.Errorf("expected antecedent to be a case citation")
	}
}

// TestResolveIdAcrossParagraphFails is spec.md §8 scenario 4.
func TestResolveIdAcrossParagraphFails(t *testing.T) {
	text := "Smith v. Doe, 500 F.2d 123 (1974).\n\nId. at 125."
	cs := extractFor(t, text)

	var idIdx int = -1
	for i, c := range cs {
		if c.Kind() == cpattern.KindID {
			idIdx = i
		}
	}
	if idIdx < 0 {
		t.Fatal("expected an Id. citation in the extraction")
	}

	results, err := Resolve(cs, text, DefaultOptions())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	r := results[idIdx]
	if r.FailureReason == "" {
		t.Fatal("expected Id. across a paragraph boundary to fail under default paragraph scope")
	}
	if r.AntecedentIdx != -1 {
		t.Errorf("expected no antecedent on failed resolution, got %d", r.AntecedentIdx)
	}
}

// TestResolveSupraFuzzyParty is spec.md §8 scenario 5.
func TestResolveSupraFuzzyParty(t *testing.T) {
	text := "Smith v. Jones, 100 F.3d 50 (2000). See Smith, supra, at 55."
	cs := extractFor(t, text)

	var supraIdx int = -1
	var caseIdx int = -1
	for i, c := range cs {
		switch c.Kind() {
		case cpattern.KindSupra:
			supraIdx = i
		case cpattern.KindCase:
			caseIdx = i
		}
	}
	if supraIdx < 0 || caseIdx < 0 {
		t.Fatalf("expected both a case and a supra citation, got %d citations", len(cs))
	}

	results, err := Resolve(cs, text, DefaultOptions())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	r := results[supraIdx]
	if r.FailureReason != "" {
		t.Fatalf("expected supra to resolve, got failure: %s", r.FailureReason)
	}
	if r.AntecedentIdx != caseIdx {
		t.Errorf("AntecedentIdx = %d, want %d", r.AntecedentIdx, caseIdx)
	}
	if r.Confidence < 0.99 {
		t.Errorf("Confidence = %v, want ~1.0 for an exact plaintiff match", r.Confidence)
	}

	sp := cs[supraIdx].(*citation.Supra)
	if sp.Pincite != "55" {
		t.Errorf("Pincite = %q, want 55", sp.Pincite)
	}
}

func TestResolveIdNoPrecedingCaseFails(t *testing.T) {
	text := "Id. at 10."
	cs := extractFor(t, text)
	results, err := Resolve(cs, text, DefaultOptions())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	for i, c := range cs {
		if c.Kind() == cpattern.KindID {
			if results[i].FailureReason != "no preceding case citation" {
				t.Errorf("FailureReason = %q", results[i].FailureReason)
			}
		}
	}
}

func TestResolveScopeNoneIgnoresParagraphs(t *testing.T) {
	text := "Smith v. Doe, 500 F.2d 123 (1974).\n\nId. at 125."
	cs := extractFor(t, text)

	opts := DefaultOptions()
	opts.ScopeStrategy = ScopeNone
	results, err := Resolve(cs, text, opts)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	for _, r := range results {
		if r.Attempted && r.FailureReason != "" {
			t.Errorf("expected ScopeNone to ignore paragraph boundaries, got failure: %s", r.FailureReason)
		}
	}
}

func TestResolvePinciteOutOfRangeWarnsButResolves(t *testing.T) {
	text := "Smith v. Doe, 500 F.2d 123 (1974). Id. at 500."
	cs := extractFor(t, text)

	var idIdx int = -1
	for i, c := range cs {
		if c.Kind() == cpattern.KindID {
			idIdx = i
		}
	}
	results, _ := Resolve(cs, text, DefaultOptions())
	r := results[idIdx]
	if r.FailureReason != "" {
		t.Fatalf("expected resolution despite out-of-range pincite, got failure: %s", r.FailureReason)
	}
	if len(r.Warnings) == 0 {
		t.Error("expected a warning for out-of-range pincite")
	}
}
