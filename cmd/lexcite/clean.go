package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	lexcite "github.com/coolbeans/lexcite"
	"github.com/coolbeans/lexcite/internal/txtspan"
)

func cleanCmd() *cobra.Command {
	var showMap bool

	cmd := &cobra.Command{
		Use:   "clean [file]",
		Short: "Run the cleaning pipeline and print the cleaned text",
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

			result, err := lexcite.CleanText(text)
			if err != nil {
				return fmt.Errorf("clean: %w", err)
			}

			if !showMap {
				fmt.Println(result.Cleaned)
				return nil
			}

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(struct {
				Cleaned  string           `json:"cleaned"`
				Warnings []txtspan.Warning `json:"warnings,omitempty"`
			}{
				Cleaned:  result.Cleaned,
				Warnings: result.Warnings,
			})
		},
	}

	cmd.Flags().BoolVar(&showMap, "diagnostics", false, "print cleaned text plus warning diagnostics as JSON instead of plain text")
	return cmd
}
