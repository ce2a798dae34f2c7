package cpattern

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// auditStatic performs a cheap lexical audit for the nested-quantifier and
// overlapping-alternation shapes that cause catastrophic backtracking in
// backtracking regex engines. Go's RE2-based regexp package is immune to
// catastrophic backtracking by construction (no backtracking at all), so
// this audit exists to catch authoring mistakes that would misbehave if the
// pattern were ever ported to a backtracking engine (e.g. embedded in a
// downstream tool that re-lexes with PCRE), matching spec.md §4.2's
// requirement that the audit run independent of the runtime engine.
func auditStatic(pattern string) error {
	if nestedQuantifier.MatchString(pattern) {
		return fmt.Errorf("nested quantifier detected in %q", pattern)
	}
	if strings.Count(pattern, "(?:") > 6 {
		return fmt.Errorf("excessive alternation groups in %q", pattern)
	}
	return nil
}

// nestedQuantifier matches a quantified group immediately followed by
// another quantifier, e.g. `(a+)+` or `(.*)*`.
var nestedQuantifier = regexp.MustCompile(`\([^)]*[+*]\)[+*]`)

// adversarialStrings is the smoke-test family from spec.md §4.2: long
// repetitions of partial matches and unmatched brackets, sized to exercise
// worst-case scanning without ballooning test runtime.
func adversarialStrings() []string {
	return []string{
		strings.Repeat("1", 5000),
		strings.Repeat("F. ", 5000),
		strings.Repeat("(", 5000),
		strings.Repeat("1 F. ", 2000),
		strings.Repeat("Pub. L. ", 2000),
		strings.Repeat("Id. at ", 2000) + strings.Repeat("9", 2000),
	}
}

// smokeTestBudget is the per-run ceiling from spec.md §4.2 ("<2 ms per
// run").
const smokeTestBudget = 2 * time.Millisecond

// RuntimeSmokeTest runs a compiled pattern against the adversarial string
// family and reports any run that exceeds smokeTestBudget. It is exercised
// both at catalogue-build time (see catalogue_test.go) and is exported so
// callers loading custom patterns from YAML can run the same check.
func RuntimeSmokeTest(p *Pattern) error {
	re := p.Compiled()
	for _, s := range adversarialStrings() {
		start := time.Now()
		re.FindAllStringIndex(s, -1)
		if elapsed := time.Since(start); elapsed > smokeTestBudget {
			return fmt.Errorf("pattern %q: adversarial run took %s, exceeds %s budget", p.ID, elapsed, smokeTestBudget)
		}
	}
	return nil
}
