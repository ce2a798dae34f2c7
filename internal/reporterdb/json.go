package reporterdb

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
)

// JSONReporterDB is a read-only reporter table backed by a JSON file on
// disk, loaded once on first use via sync.Once and immutable thereafter —
// the lazy-load discipline from the teacher's pkg/library.Open, adapted
// from a filesystem document manifest to a flat lookup table since a
// citation extractor needs no write path at all.
type JSONReporterDB struct {
	path string

	once    sync.Once
	loadErr error
	byAbbrev map[string][]ReporterEntry
}

// NewJSONReporterDB returns a DB that will load path on its first query.
func NewJSONReporterDB(path string) *JSONReporterDB {
	return &JSONReporterDB{path: path}
}

func (d *JSONReporterDB) ensureLoaded() error {
	d.once.Do(func() {
		data, err := os.ReadFile(d.path)
		if err != nil {
			d.loadErr = fmt.Errorf("reporterdb: reading %s: %w", d.path, err)
			return
		}
		var entries []ReporterEntry
		if err := json.Unmarshal(data, &entries); err != nil {
			d.loadErr = fmt.Errorf("reporterdb: parsing %s: %w", d.path, err)
			return
		}
		index := make(map[string][]ReporterEntry)
		for _, e := range entries {
			key := normalizeAbbrev(e.Abbreviation)
			index[key] = append(index[key], e)
		}
		d.byAbbrev = index
	})
	return d.loadErr
}

// FindByAbbreviation implements ReporterDB. A load failure (missing or
// malformed file) is treated the same as "no entries found" — the caller
// already handles a zero-match result as a confidence penalty plus a
// warning, so there is no separate error channel here.
func (d *JSONReporterDB) FindByAbbreviation(abbreviation string) []ReporterEntry {
	if err := d.ensureLoaded(); err != nil {
		return nil
	}
	return d.byAbbrev[normalizeAbbrev(abbreviation)]
}

func normalizeAbbrev(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
