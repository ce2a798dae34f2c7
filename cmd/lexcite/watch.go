package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/fsnotify.v1"

	lexcite "github.com/coolbeans/lexcite"
)

// watchCmd watches a directory of .txt/.md files and re-runs extraction
// whenever a file changes, printing its previous and new citation counts — adapted
// from cpattern.Registry's fsnotify reload loop, pointed at documents
// instead of pattern definitions.
func watchCmd() *cobra.Command {
	var currentYear int

	cmd := &cobra.Command{
		Use:   "watch [directory]",
		Short: "Watch a directory of .txt/.md files and re-extract citations on change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]

			year := currentYear
			if year == 0 {
				year = cfg.CurrentYear
			}
			if year == 0 {
				year = time.Now().Year()
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("watch: creating fsnotify watcher: %w", err)
			}
			defer watcher.Close()

			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("watch: adding %s: %w", dir, err)
			}

			prevCounts := make(map[string]int)

			seed, err := os.ReadDir(dir)
			if err != nil {
				return fmt.Errorf("watch: reading %s: %w", dir, err)
			}
			for _, entry := range seed {
				path := filepath.Join(dir, entry.Name())
				if n, ok := countCitations(path, year); ok {
					prevCounts[path] = n
				}
			}

			fmt.Fprintf(os.Stdout, "watching %s for .txt/.md changes (Ctrl-C to stop)\n", dir)

			for event := range watcher.Events {
				if !isWatchedDoc(event.Name) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}

				n, ok := countCitations(event.Name, year)
				if !ok {
					continue
				}
				prev := prevCounts[event.Name]
				prevCounts[event.Name] = n
				fmt.Fprintf(os.Stdout, "%s: %d -> %d citations\n", event.Name, prev, n)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&currentYear, "year", 0, "year documents are processed in (defaults to config, then the current year)")
	return cmd
}

func isWatchedDoc(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".txt" || ext == ".md"
}

func countCitations(path string, year int) (int, bool) {
	if !isWatchedDoc(path) {
		return 0, false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}
	result, err := lexcite.Extract(string(data), lexcite.Options{
		CurrentYear: year,
		ReporterDB:  reporterDBFromConfig(cfg),
		Validate:    validateFromConfig(cfg),
	})
	if err != nil {
		return 0, false
	}
	return len(result.Citations), true
}
