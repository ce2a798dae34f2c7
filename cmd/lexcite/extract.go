package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	lexcite "github.com/coolbeans/lexcite"
)

func extractCmd() *cobra.Command {
	var (
		resolveFlag bool
		currentYear int
	)

	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Extract citations from a document (file or stdin)",
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

			result, err := lexcite.Extract(text, lexcite.Options{
				Resolve:     resolveFlag,
				CurrentYear: year,
				ReporterDB:  reporterDBFromConfig(cfg),
				Validate:    validateFromConfig(cfg),
			})
			if err != nil {
				return fmt.Errorf("extract: %w", err)
			}

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(result)
		},
	}

	cmd.Flags().BoolVar(&resolveFlag, "resolve", false, "also resolve short-form citations against their antecedents")
	cmd.Flags().IntVar(&currentYear, "year", 0, "year the document is being processed in (defaults to config, then the current year)")
	return cmd
}
