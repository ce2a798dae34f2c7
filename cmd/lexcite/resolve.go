package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	lexcite "github.com/coolbeans/lexcite"
	"github.com/coolbeans/lexcite/internal/resolve"
)

func scopeStrategyFromFlag(s string) resolve.ScopeStrategy {
	switch resolve.ScopeStrategy(s) {
	case resolve.ScopeParagraph, resolve.ScopeSection, resolve.ScopeFootnote, resolve.ScopeNone:
		return resolve.ScopeStrategy(s)
	default:
		return resolve.ScopeParagraph
	}
}

// resolveCmd runs extraction followed by resolution and prints only the
// resolved citations. Citation is a Go interface with no wire-format
// discriminator field, so round-tripping a bare citations array through
// JSON and back would lose the concrete Kind needed to resolve it; instead
// this subcommand takes the same document input as "extract" and exposes
// the resolver as the second half of that pipeline, which is what spec.md
// §6's "resolveCitations exposed granularly" amounts to for a typed union.
func resolveCmd() *cobra.Command {
	var (
		scopeStrategy       string
		partyMatchThreshold float64
		currentYear         int
	)

	cmd := &cobra.Command{
		Use:   "resolve [file]",
		Short: "Extract and resolve short-form citations (file or stdin)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			text, err := readInput(path)
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}

			year := currentYear
			if year == 0 {
				year = cfg.CurrentYear
			}
			if year == 0 {
				year = time.Now().Year()
			}

			opts := lexcite.DefaultResolutionOptions()
			if cfg.ResolveScope != "" {
				opts.ScopeStrategy = scopeStrategyFromFlag(cfg.ResolveScope)
			}
			if cfg.PartyMatchThreshold != 0 {
				opts.PartyMatchThreshold = cfg.PartyMatchThreshold
			}
			if scopeStrategy != "" {
				opts.ScopeStrategy = scopeStrategyFromFlag(scopeStrategy)
			}
			if partyMatchThreshold != 0 {
				opts.PartyMatchThreshold = partyMatchThreshold
			}

			result, err := lexcite.Extract(text, lexcite.Options{
				CurrentYear:       year,
				Resolve:           true,
				ResolutionOptions: opts,
				ReporterDB:        reporterDBFromConfig(cfg),
				Validate:          validateFromConfig(cfg),
			})
			if err != nil {
				return fmt.Errorf("extract: %w", err)
			}

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(result.Resolved)
		},
	}

	cmd.Flags().StringVar(&scopeStrategy, "scope", "", "resolution scope strategy: paragraph, section, footnote, none (overrides config)")
	cmd.Flags().Float64Var(&partyMatchThreshold, "party-threshold", 0, "supra fuzzy party-match threshold, 0-1 (overrides config)")
	cmd.Flags().IntVar(&currentYear, "year", 0, "year the document is being processed in (defaults to config, then the current year)")
	return cmd
}
