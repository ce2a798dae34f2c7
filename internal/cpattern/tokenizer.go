package cpattern

import (
	"time"

	"go.uber.org/zap"

	"github.com/coolbeans/lexcite/internal/txtspan"
)

// Token is a candidate match emitted by Tokenize, before extraction has
// parsed it into a typed citation.
type Token struct {
	Span        txtspan.Span
	MatchedText string
	Kind        Kind
	PatternID   string
	Priority    int
	Groups      []string
}

// perPatternBudget bounds a single pattern's sweep over the full text
// (spec.md §4.2, "suggested 50 ms").
const perPatternBudget = 50 * time.Millisecond

// Tokenize sweeps every pattern's global match over cleaned text and
// collects candidate tokens. Patterns that panic or exceed perPatternBudget
// are skipped with a warning; the remaining patterns still run. Output is
// deliberately not deduplicated — see the cpattern package's sibling in
// internal/citation for dedup.
func Tokenize(cleaned string, patterns []Pattern, offsetMap *txtspan.Map, logger *zap.Logger) ([]Token, []txtspan.Warning) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var tokens []Token
	var warnings []txtspan.Warning

	for i := range patterns {
		p := &patterns[i]
		matched, warn := sweepOne(p, cleaned, logger)
		if warn != nil {
			warnings = append(warnings, *warn)
			continue
		}
		for _, m := range matched {
			cleanStart, cleanEnd := m[0], m[1]
			span := txtspan.Span{
				CleanStart:    cleanStart,
				CleanEnd:      cleanEnd,
				OriginalStart: offsetMap.CleanToOriginal(cleanStart),
				OriginalEnd:   offsetMap.CleanToOriginal(cleanEnd),
			}
			tokens = append(tokens, Token{
				Span:        span,
				MatchedText: cleaned[cleanStart:cleanEnd],
				Kind:        p.Kind,
				PatternID:   p.ID,
				Priority:    p.Priority,
			})
		}
	}

	return tokens, warnings
}

// sweepOne runs a single pattern's global match with a panic guard and a
// wall-clock time budget. It returns match index pairs [start, end).
func sweepOne(p *Pattern, cleaned string, logger *zap.Logger) (matches [][]int, warning *txtspan.Warning) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("cpattern: pattern panicked", zap.String("pattern", p.ID), zap.Any("recovered", r))
			warning = &txtspan.Warning{Level: txtspan.LevelWarn, Message: "pattern " + p.ID + " panicked during sweep"}
			matches = nil
		}
	}()

	re := p.Compiled()
	done := make(chan [][]int, 1)
	go func() {
		done <- re.FindAllStringIndex(cleaned, -1)
	}()

	select {
	case result := <-done:
		return result, nil
	case <-time.After(perPatternBudget):
		logger.Warn("cpattern: pattern exceeded time budget", zap.String("pattern", p.ID), zap.Duration("budget", perPatternBudget))
		return nil, &txtspan.Warning{Level: txtspan.LevelWarn, Message: "pattern " + p.ID + " exceeded time budget"}
	}
}
