// Package textclean implements the position-preserving text cleaner:
// spec.md §4.1. Cleaners are ordered, pure, total string transformations;
// after each one runs, the bounded-lookahead aligner rebuilds the
// TransformationMap from the diff between the pre- and post-cleaner text.
package textclean

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/coolbeans/lexcite/internal/txtspan"
)

// Cleaner is a pure, total text transformation. Implementations must never
// panic; a panicking Cleaner is treated as fatal by Run (spec.md §4.1
// "Failure mode").
type Cleaner struct {
	Name string
	Fn   func(string) (string, error)
}

// Result is the output of running a cleaner pipeline.
type Result struct {
	Cleaned  string
	Map      *txtspan.Map
	Warnings []txtspan.Warning
}

// lookaheadWindow bounds the aligner's suffix search, per spec.md §4.1.
const lookaheadWindow = 20

// DefaultPipeline is the built-in cleaner sequence from spec.md §4.1.
func DefaultPipeline() []Cleaner {
	return []Cleaner{
		StripHTMLTags,
		NormalizeWhitespace,
		NormalizeUnicode,
		FixSmartQuotes,
	}
}

// Run applies the given cleaners in order, rebuilding the position map after
// each step, and returns the final cleaned text plus the composed map from
// original offsets all the way through to final-cleaned offsets.
func Run(text string, cleaners []Cleaner, logger *zap.Logger) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	current := text
	// composed maps *original* offsets to the current intermediate text's
	// offsets; it starts as the identity map since "current" is the
	// original text before any cleaner has run.
	composed := txtspan.NewIdentityMap(len(text))
	var warnings []txtspan.Warning

	for _, c := range cleaners {
		next, err := runOne(c, current)
		if err != nil {
			return Result{}, fmt.Errorf("cleaner %q: %w", c.Name, err)
		}

		step := align(current, next)
		composed = composeOrigThenStep(composed, step, len(text), len(current), len(next))

		logger.Info("textclean: cleaner applied",
			zap.String("cleaner", c.Name),
			zap.Int("before_len", len(current)),
			zap.Int("after_len", len(next)),
		)

		current = next
	}

	return Result{Cleaned: current, Map: composed, Warnings: warnings}, nil
}

// runOne invokes a single cleaner, converting a panic into an error so a
// misbehaving custom cleaner cannot crash the whole pipeline — though per
// spec.md §4.1 the *result* is still treated as fatal for this invocation,
// no partial cleaning is returned.
func runOne(c Cleaner, text string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panicked: %v", r)
		}
	}()
	return c.Fn(text)
}

// composeOrigThenStep builds a Map from original offsets to the
// post-this-step text by chaining the previous original->intermediate map
// (prevOrigToIntermediate.OriginalToClean) with this step's
// intermediate->after map (step.OriginalToClean; step's own "original" is
// the intermediate text, its "clean" is the after text).
func composeOrigThenStep(prevOrigToIntermediate *txtspan.Map, step *txtspan.Map, origLen, intermediateLen, afterLen int) *txtspan.Map {
	b := txtspan.NewBuilder(afterLen, origLen)

	// Build original->after by: for each original offset, find its
	// intermediate offset, then that intermediate's after offset. step's
	// "original" is this step's before-text (the intermediate), and its
	// "clean" is this step's after-text, so intermediate->after is
	// step.OriginalToClean.
	for o := 0; o <= origLen; o++ {
		intermediate := prevOrigToIntermediate.OriginalToClean(o)
		after := step.OriginalToClean(intermediate)
		b.Put(after, o)
	}
	return b.Build()
}

// align walks before and after in lockstep per spec.md §4.1's bounded-
// lookahead algorithm and returns a Map where "CleanToOriginal" means
// after->before and "OriginalToClean" means before->after. The naming is
// reused from txtspan.Map purely for the data structure; within align,
// "original" is the pre-cleaner text and "clean" is the post-cleaner text
// for this one step.
func align(before, after string) *txtspan.Map {
	b := txtspan.NewBuilder(len(after), len(before))

	i, j := 0, 0
	for i < len(before) && j < len(after) {
		if before[i] == after[j] {
			b.Put(j, i)
			i++
			j++
			continue
		}

		del, ins, sub := bestAlignment(before, after, i, j)
		switch {
		case sub:
			b.Put(j, i)
			i++
			j++
		case del:
			i++
		case ins:
			j++
		default:
			// No alignment found within the window: treat this position as
			// a one-character substitution and keep scanning (conservative
			// fallback).
			b.Put(j, i)
			i++
			j++
		}
	}

	// Map remaining positions conservatively to the last valid mapping.
	for ; j <= len(after); j++ {
		b.Put(j, i)
	}
	if i < len(before) {
		// Nothing further needed on the original->clean side; the builder's
		// dense fill already propagates forward.
	}

	return b.Build()
}

// bestAlignment looks up to lookaheadWindow characters ahead in both before
// and after (from i, j) to decide whether the mismatch at (i, j) is a
// deletion from before, an insertion into after, or a substitution. It picks
// whichever produces the shortest matching suffix, per spec.md §4.1.
func bestAlignment(before, after string, i, j int) (del, ins, sub bool) {
	maxDel := min(lookaheadWindow, len(before)-i)
	maxIns := min(lookaheadWindow, len(after)-j)

	// Try substitution first: does before[i+1:] match after[j+1:] for a
	// useful stretch? If the very next characters already match, prefer
	// substitution (advance both) since it keeps offsets aligned 1:1.
	if i+1 < len(before) && j+1 < len(after) && before[i+1] == after[j+1] {
		return false, false, true
	}

	// Search increasing skip sizes for the first point where the texts
	// re-synchronize, preferring the smaller total skip.
	for skip := 1; skip <= lookaheadWindow; skip++ {
		if skip <= maxDel && i+skip < len(before) && j < len(after) && before[i+skip] == after[j] {
			return true, false, false // deletion: skip `skip` chars in before
		}
		if skip <= maxIns && j+skip < len(after) && i < len(before) && after[j+skip] == before[i] {
			return false, true, false // insertion: skip `skip` chars in after
		}
	}

	return false, false, false
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
