package cpattern

import (
	"strings"
	"testing"

	"github.com/coolbeans/lexcite/internal/txtspan"
)

// FuzzTokenize exercises the full builtin catalogue against arbitrary input,
// the adversarial-input idiom the citation patterns were fuzzed with.
// Run with: go test -fuzz=FuzzTokenize -fuzztime=30s ./internal/cpattern/...
func FuzzTokenize(f *testing.F) {
	seeds := []string{
		"Smith v. Doe, 500 F.2d 123 (9th Cir. 1974).",
		"Id. at 45.",
		"Jones, supra, at 12.",
		"42 U.S.C. § 1983",
		"2020 WL 123456",
		"Pub. L. No. 111-148",
		"85 Fed. Reg. 12345",
		"123 U.S. at 100",
		"",
		strings.Repeat("1 F. ", 2000),
		strings.Repeat("(", 2000),
		strings.Repeat("Id. at ", 500),
		"500 F.2d ___ (1970)",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	patterns := BuiltinCatalogue()

	f.Fuzz(func(t *testing.T, data string) {
		m := txtspan.NewIdentityMap(len(data))
		tokens, _ := Tokenize(data, patterns, m, nil)
		for _, tok := range tokens {
			if tok.Span.CleanEnd < tok.Span.CleanStart {
				t.Errorf("token %q has inverted span", tok.PatternID)
			}
			if tok.MatchedText == "" {
				t.Errorf("token %q matched empty text", tok.PatternID)
			}
		}
	})
}
