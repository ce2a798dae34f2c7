package citation

import (
	"regexp"
	"strings"

	"github.com/coolbeans/lexcite/internal/cpattern"
)

// parallelGapMax is spec.md §4.3's "gap between tokens ≤ 30 characters".
const parallelGapMax = 30

var commaOnlyGap = regexp.MustCompile(`^\s*,\s*$`)

// DetectParallel implements spec.md §4.3: for each case token, examine its
// immediate successor and chain comma-only, parenthesis-free, ≤30-character
// gaps into a group. Returns primary token index -> ordered secondary
// indices, both into the tokens slice (already filtered to case tokens by
// the caller if desired — this function itself only inspects kind==case).
func DetectParallel(tokens []cpattern.Token, cleaned string) map[int][]int {
	groups := make(map[int][]int)
	claimed := make(map[int]bool)

	for i := 0; i < len(tokens)-1; i++ {
		if claimed[i] || tokens[i].Kind != cpattern.KindCase {
			continue
		}
		var secondaries []int
		cur := i
		for {
			next := cur + 1
			if next >= len(tokens) || tokens[next].Kind != cpattern.KindCase {
				break
			}
			if !gapQualifies(tokens[cur], tokens[next], cleaned) {
				break
			}
			secondaries = append(secondaries, next)
			claimed[next] = true
			cur = next
		}
		if len(secondaries) > 0 {
			groups[i] = secondaries
		}
	}

	return groups
}

func gapQualifies(a, b cpattern.Token, cleaned string) bool {
	if b.Span.CleanStart < a.Span.CleanEnd {
		return false
	}
	gap := cleaned[a.Span.CleanEnd:b.Span.CleanStart]
	if len(gap) > parallelGapMax {
		return false
	}
	if strings.Contains(gap, ")") {
		return false
	}
	return commaOnlyGap.MatchString(gap)
}
