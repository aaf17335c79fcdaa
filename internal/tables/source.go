// Package tables loads raw extracted tables from table-dump files. The PDF
// geometry work happens upstream; by the time a file lands here it is already
// rows of string cells.
package tables

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bankstmt-dev/bankstmt/internal/model"
)

// Source decodes one table-dump file into the raw tables of one document.
type Source interface {
	ReadTables(r io.Reader) ([]model.RawTable, error)
	Format() string
}

// Registry holds sources keyed by format.
type Registry struct {
	sources map[string]Source
}

// FileInfo describes a table dump awaiting parsing. Name is the document
// name: the file name without its extension.
type FileInfo struct {
	Name   string
	Path   string
	Format string
}

// NewRegistry creates an empty source registry.
func NewRegistry() *Registry {
	return &Registry{sources: make(map[string]Source)}
}

// Register adds a source. Panics on duplicate format.
func (r *Registry) Register(s Source) {
	key := strings.ToLower(s.Format())
	if _, ok := r.sources[key]; ok {
		panic("duplicate source format: " + key)
	}
	r.sources[key] = s
}

// Get returns the source for format, or nil.
func (r *Registry) Get(format string) Source {
	return r.sources[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in sources.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&JSONSource{})
	r.Register(&CSVSource{})
	return r
}

// Scan returns the table dumps in dir that some registered source can read,
// sorted by name so repeated runs parse documents in the same order.
func Scan(dir string, reg *Registry) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading statements dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		format := strings.TrimPrefix(strings.ToLower(ext), ".")
		if reg.Get(format) == nil {
			continue
		}
		files = append(files, FileInfo{
			Name:   strings.TrimSuffix(e.Name(), ext),
			Path:   filepath.Join(dir, e.Name()),
			Format: format,
		})
	}
	return files, nil
}
