package citation

import (
	"testing"

	"github.com/coolbeans/lexcite/internal/cpattern"
	"github.com/coolbeans/lexcite/internal/txtspan"
)

func TestDetectParallelChainsThreeMembers(t *testing.T) {
	text := "410 U.S. 113, 93 S. Ct. 705, 35 L. Ed. 2d 147 (1973)."
	m := txtspan.NewIdentityMap(len(text))
	tokens, _ := cpattern.Tokenize(text, cpattern.BuiltinCatalogue(), m, nil)
	tokens = Dedup(tokens)

	groups := DetectParallel(tokens, text)
	if len(groups) != 1 {
		t.Fatalf("expected exactly one group, got %d", len(groups))
	}
	for _, secondaries := range groups {
		if len(secondaries) != 2 {
			t.Errorf("expected 2 secondaries, got %d", len(secondaries))
		}
	}
}

func TestDetectParallelBreaksOnSemicolon(t *testing.T) {
	text := "410 U.S. 113; 93 S. Ct. 705."
	m := txtspan.NewIdentityMap(len(text))
	tokens, _ := cpattern.Tokenize(text, cpattern.BuiltinCatalogue(), m, nil)
	tokens = Dedup(tokens)

	groups := DetectParallel(tokens, text)
	if len(groups) != 0 {
		t.Errorf("expected semicolon to break grouping, got %d groups", len(groups))
	}
}

func TestDetectParallelBreaksOnIntermediateParen(t *testing.T) {
	text := "500 F.2d 1 (1970), 501 F.2d 2 (1971)."
	m := txtspan.NewIdentityMap(len(text))
	tokens, _ := cpattern.Tokenize(text, cpattern.BuiltinCatalogue(), m, nil)
	tokens = Dedup(tokens)

	groups := DetectParallel(tokens, text)
	if len(groups) != 0 {
		t.Errorf("expected intervening parenthetical to break grouping, got %d groups", len(groups))
	}
}
