package resolve

import (
	"strings"
	"testing"

	"github.com/coolbeans/lexcite/internal/citation"
	"github.com/coolbeans/lexcite/internal/cpattern"
	"github.com/coolbeans/lexcite/internal/txtspan"
)

// FuzzResolve exercises Resolve against arbitrary documents, checking that
// every resolution either points at a real prior index or is explicitly
// marked unresolved — never an out-of-bounds or forward reference.
func FuzzResolve(f *testing.F) {
	seeds := []string{
		"Smith v. Doe, 500 F.2d 123 (1974). Id. at 125.",
		"Smith v. Doe, 500 F.2d 123 (1974).\n\nId. at 125.",
		"Smith v. Jones, 100 F.3d 50 (2000). See Smith, supra, at 55.",
		"Id. Ibid. supra",
		strings.Repeat("Id. ", 500),
		"",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	patterns := cpattern.BuiltinCatalogue()

	f.Fuzz(func(t *testing.T, data string) {
		m := txtspan.NewIdentityMap(len(data))
		citations, _ := citation.Extract(data, data, m, patterns, nil, 2026, nil)

		results, err := Resolve(citations, data, DefaultOptions())
		if err != nil {
			t.Fatalf("Resolve returned an error: %v", err)
		}
		if len(results) != len(citations) {
			t.Fatalf("result count %d != citation count %d", len(results), len(citations))
		}
		for i, r := range results {
			if r.AntecedentIdx >= i {
				t.Errorf("result %d points at a non-prior index %d", i, r.AntecedentIdx)
			}
			if r.Confidence < 0 || r.Confidence > 1 {
				t.Errorf("result %d confidence out of range: %v", i, r.Confidence)
			}
		}
	})
}
