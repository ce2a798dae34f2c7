package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	lexcite "github.com/coolbeans/lexcite"
)

func tokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [file]",
		Short: "Print the raw pattern-match tokens for a document (file or stdin)",
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

			cleaned, err := lexcite.CleanText(text)
			if err != nil {
				return fmt.Errorf("clean: %w", err)
			}

			tokens, warnings := lexcite.Tokenize(cleaned.Cleaned, nil, cleaned.Map)
			for _, w := range warnings {
				fmt.Fprintf(os.Stderr, "warning: %s\n", w.Message)
			}

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(tokens)
		},
	}
	return cmd
}
