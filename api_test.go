package lexcite

import (
	"context"
	"testing"
	"time"

	"github.com/coolbeans/lexcite/internal/cpattern"
)

func TestExtractEndToEnd(t *testing.T) {
	text := "See Smith v. Doe, 500 F.2d 123 (9th Cir. 1974). Id. at 125."
	result, err := Extract(text, Options{CurrentYear: 2026, Resolve: true})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(result.Citations) != 2 {
		t.Fatalf("expected 2 citations, got %d", len(result.Citations))
	}
	if len(result.Resolved) != 2 {
		t.Fatalf("expected 2 resolved entries, got %d", len(result.Resolved))
	}

	var sawResolvedID bool
	for i, c := range result.Citations {
		if c.Kind() == cpattern.KindID {
			if result.Resolved[i].FailureReason != "" {
				t.Errorf("Id. failed to resolve: %s", result.Resolved[i].FailureReason)
			}
			sawResolvedID = true
		}
	}
	if !sawResolvedID {
		t.Error("expected an Id. citation in the result")
	}
}

func TestExtractWithoutResolve(t *testing.T) {
	text := "500 F.2d 123 (1974)."
	result, err := Extract(text, Options{CurrentYear: 2026})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if result.Resolved != nil {
		t.Error("expected Resolved to be nil when Options.Resolve is false")
	}
}

func TestExtractAsyncDeliversResult(t *testing.T) {
	text := "500 F.2d 123 (1974)."
	ch := ExtractAsync(context.Background(), text, Options{CurrentYear: 2026})

	select {
	case r := <-ch:
		if r.Err != nil {
			t.Fatalf("ExtractAsync: %v", r.Err)
		}
		if len(r.Result.Citations) != 1 {
			t.Errorf("expected 1 citation, got %d", len(r.Result.Citations))
		}
	case <-time.After(time.Second):
		t.Fatal("ExtractAsync did not deliver a result in time")
	}
}

func TestExtractAsyncHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ch := ExtractAsync(ctx, "500 F.2d 123 (1974).", Options{CurrentYear: 2026})
	select {
	case r := <-ch:
		if r.Err == nil {
			t.Error("expected a cancellation error")
		}
	case <-time.After(time.Second):
		t.Fatal("ExtractAsync did not deliver a result in time")
	}
}

func TestCleanTextDefaultPipeline(t *testing.T) {
	res, err := CleanText("<p>500   F.2d   123</p>")
	if err != nil {
		t.Fatalf("CleanText: %v", err)
	}
	if res.Cleaned == "" {
		t.Error("expected non-empty cleaned text")
	}
}

func TestTokenizeBuiltinCatalogue(t *testing.T) {
	tokens, warnings := Tokenize("500 F.2d 123 (1974).", nil, nil)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(tokens) == 0 {
		t.Fatal("expected at least one token")
	}
}

func TestResolveCitationsGranular(t *testing.T) {
	text := "Smith v. Doe, 500 F.2d 123 (1974). Id. at 125."
	result, err := Extract(text, Options{CurrentYear: 2026})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	resolved, err := ResolveCitations(result.Citations, text, DefaultResolutionOptions())
	if err != nil {
		t.Fatalf("ResolveCitations: %v", err)
	}
	if len(resolved) != len(result.Citations) {
		t.Fatalf("expected %d resolved entries, got %d", len(result.Citations), len(resolved))
	}
}
