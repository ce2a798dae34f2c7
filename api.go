package lexcite

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/coolbeans/lexcite/internal/citation"
	"github.com/coolbeans/lexcite/internal/cpattern"
	"github.com/coolbeans/lexcite/internal/reporterdb"
	"github.com/coolbeans/lexcite/internal/resolve"
	"github.com/coolbeans/lexcite/internal/textclean"
	"github.com/coolbeans/lexcite/internal/txtspan"
)

// Options configures one Extract/ExtractAsync invocation, mirroring
// spec.md §6's recognised key table.
type Options struct {
	Cleaners []textclean.Cleaner
	Patterns []cpattern.Pattern

	Resolve           bool
	ResolutionOptions resolve.Options

	ReporterDB reporterdb.ReporterDB
	Validate   bool

	// CurrentYear gates the future-year confidence check (spec.md §4.4);
	// the historical cutoff does not depend on it. Callers pass the year the
	// document is being processed in, since the library does not read
	// the system clock itself.
	CurrentYear int

	// Logger is passed to the cleaning, tokenizing and extraction stages;
	// resolution does not log. A nil Logger runs the pipeline silently
	// (zap.NewNop).
	Logger *zap.Logger
}

func (o Options) cleaners() []textclean.Cleaner {
	if len(o.Cleaners) > 0 {
		return o.Cleaners
	}
	return textclean.DefaultPipeline()
}

func (o Options) patterns() []cpattern.Pattern {
	if len(o.Patterns) > 0 {
		return o.Patterns
	}
	return cpattern.BuiltinCatalogue()
}

func (o Options) reporterDB() reporterdb.ReporterDB {
	if !o.Validate {
		return nil
	}
	return o.ReporterDB
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// ExtractResult is the output of Extract: the source-ordered citations
// plus accumulated pipeline warnings, and — when Options.Resolve is set —
// the resolved short-form links.
type ExtractResult struct {
	Citations []citation.Citation
	Resolved  []resolve.Resolved
	Warnings  []txtspan.Warning
}

// Extract runs the full synchronous pipeline: clean, tokenize, dedup,
// detect parallel groups, extract, and (if requested) resolve short-form
// citations against their antecedents. It is the single entry point named
// in spec.md §6.
func Extract(text string, opts Options) (ExtractResult, error) {
	logger := opts.logger()

	cleaned, err := textclean.Run(text, opts.cleaners(), logger)
	if err != nil {
		return ExtractResult{}, fmt.Errorf("lexcite: cleaning failed: %w", err)
	}

	citations, extractWarnings := citation.Extract(
		cleaned.Cleaned,
		text,
		cleaned.Map,
		opts.patterns(),
		opts.reporterDB(),
		opts.CurrentYear,
		logger,
	)

	warnings := append(append([]txtspan.Warning{}, cleaned.Warnings...), extractWarnings...)

	result := ExtractResult{Citations: citations, Warnings: warnings}

	if opts.Resolve {
		resolved, err := resolve.Resolve(citations, text, opts.ResolutionOptions)
		if err != nil {
			return result, fmt.Errorf("lexcite: resolution failed: %w", err)
		}
		result.Resolved = resolved
	}

	return result, nil
}

// ExtractAsync wraps Extract in a goroutine, returning a channel that
// receives exactly one result. Per spec.md §5, this introduces no internal
// suspension point; it exists for callers that want the async-call shape.
// The returned channel is buffered so the goroutine never blocks on send.
// ctx is checked before Extract starts and again after it returns; a
// cancellation seen at either point is delivered as ctx.Err(). Extract
// itself is not interrupted once it has started.
func ExtractAsync(ctx context.Context, text string, opts Options) <-chan AsyncResult {
	ch := make(chan AsyncResult, 1)
	go func() {
		select {
		case <-ctx.Done():
			ch <- AsyncResult{Err: ctx.Err()}
			return
		default:
		}

		result, err := Extract(text, opts)

		select {
		case <-ctx.Done():
			ch <- AsyncResult{Err: ctx.Err()}
		default:
			ch <- AsyncResult{Result: result, Err: err}
		}
	}()
	return ch
}

// AsyncResult is the value delivered on ExtractAsync's channel.
type AsyncResult struct {
	Result ExtractResult
	Err    error
}

// CleanText exposes the cleaning stage in isolation (spec.md §6).
func CleanText(text string, cleaners ...textclean.Cleaner) (textclean.Result, error) {
	if len(cleaners) == 0 {
		cleaners = textclean.DefaultPipeline()
	}
	return textclean.Run(text, cleaners, nil)
}

// Tokenize exposes the tokenizer stage in isolation (spec.md §6).
func Tokenize(cleaned string, patterns []cpattern.Pattern, m *txtspan.Map) ([]cpattern.Token, []txtspan.Warning) {
	if patterns == nil {
		patterns = cpattern.BuiltinCatalogue()
	}
	if m == nil {
		m = txtspan.NewIdentityMap(len(cleaned))
	}
	return cpattern.Tokenize(cleaned, patterns, m, nil)
}

// ResolveCitations exposes the resolver stage in isolation (spec.md §6).
func ResolveCitations(citations []citation.Citation, originalText string, opts resolve.Options) ([]resolve.Resolved, error) {
	return resolve.Resolve(citations, originalText, opts)
}

// DefaultResolutionOptions returns spec.md §6's documented resolver
// defaults (paragraph scope, 0.8 party-match threshold).
func DefaultResolutionOptions() resolve.Options {
	return resolve.DefaultOptions()
}
