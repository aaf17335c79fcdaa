package tables

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/bankstmt-dev/bankstmt/internal/model"
)

// CSVSource reads a single-table dump, the shape a per-table CSV export
// produces. The whole file is one table and the document holds nothing else.
type CSVSource struct{}

// Format returns the source name.
func (s *CSVSource) Format() string { return "csv" }

// ReadTables reads the one table of the dump. Row widths are left as found;
// the parser skips rows that are not canonical width after header recovery.
// Fused header cells survive as embedded newlines inside quoted fields.
func (s *CSVSource) ReadTables(r io.Reader) ([]model.RawTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading table CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return []model.RawTable{records}, nil
}
