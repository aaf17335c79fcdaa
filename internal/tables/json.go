package tables

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bankstmt-dev/bankstmt/internal/model"
)

// JSONSource reads a whole-document dump: a JSON array of tables, each an
// array of rows of string cells.
type JSONSource struct{}

// Format returns the source name.
func (s *JSONSource) Format() string { return "json" }

// ReadTables decodes every table of a document.
func (s *JSONSource) ReadTables(r io.Reader) ([]model.RawTable, error) {
	var tables []model.RawTable
	if err := json.NewDecoder(r).Decode(&tables); err != nil {
		return nil, fmt.Errorf("decoding tables JSON: %w", err)
	}
	return tables, nil
}
