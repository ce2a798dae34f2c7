// Package lexcite extracts, resolves, and annotates legal citations
// embedded in free-form legal text. It exposes a synchronous Extract,
// an ExtractAsync wrapper, and the granular stages (CleanText, Tokenize,
// ResolveCitations) for callers that want to inspect or override an
// individual pipeline step.
package lexcite
