// Package failures persists the raw tables the parser could not understand,
// so new header shapes can be inspected offline and taught to the classifier.
package failures

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sink writes one CSV artifact per failed table, keyed by document name and
// table index.
type Sink struct {
	dir string
}

// NewSink creates a Sink rooted at dir. The directory is created lazily on
// the first artifact.
func NewSink(dir string) *Sink {
	return &Sink{dir: dir}
}

// SaveTable writes <dir>/<doc>-<tableIndex>.csv. Embedded newlines are
// escaped so each artifact row stays on one line.
func (s *Sink) SaveTable(doc string, tableIndex int, rows [][]string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating failures dir: %w", err)
	}

	path := filepath.Join(s.dir, fmt.Sprintf("%s-%d.csv", doc, tableIndex))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating failure artifact: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	for i, row := range rows {
		escaped := make([]string, len(row))
		for j, cell := range row {
			escaped[j] = strings.ReplaceAll(cell, "\n", `\n`)
		}
		if err := cw.Write(escaped); err != nil {
			return fmt.Errorf("writing artifact row %d: %w", i, err)
		}
	}
	return cw.Error()
}
