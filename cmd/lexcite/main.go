package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// cfg holds the defaults loaded from a config file and environment, set by
// cobra.OnInitialize once flags have been parsed (so --config is honored
// before any subcommand reads it).
var cfg cliConfig

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "lexcite",
		Short:   "Legal citation extraction engine",
		Version: version,
		Long: `lexcite extracts, resolves, and annotates legal citations in
free-form legal text: opinions, briefs, and articles.

It ingests raw text and produces:
  - Typed citations (case, statute, journal, neutral, public law, and more)
  - Byte-accurate spans back into the original document
  - Short-form (Id., Ibid., supra) links resolved to their antecedents`,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a lexcite.yaml config file (defaults to ./lexcite.yaml, then $HOME/lexcite.yaml)")

	cobra.OnInitialize(func() {
		loaded, err := loadConfig(configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	})

	rootCmd.AddCommand(extractCmd())
	rootCmd.AddCommand(cleanCmd())
	rootCmd.AddCommand(tokenizeCmd())
	rootCmd.AddCommand(resolveCmd())
	rootCmd.AddCommand(watchCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
