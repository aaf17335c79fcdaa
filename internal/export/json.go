// Package export writes parsed statements to their output formats.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bankstmt-dev/bankstmt/internal/model"
)

// WriteJSON writes the structured record for one document. Money fields
// serialize as exact quoted decimal strings, absent values as null.
func WriteJSON(w io.Writer, st model.Statement) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(st); err != nil {
		return fmt.Errorf("encoding statement JSON: %w", err)
	}
	return nil
}
