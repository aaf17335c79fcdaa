package statement

import (
	"strings"

	"go.uber.org/zap"
)

// headerMarker opens the first header row of a transaction table. From
// sampling, the account number row is the most consistent indicator: some
// transaction tables carry extra rows above it, and non-transaction tables
// never carry it at all.
const headerMarker = "Account No."

const (
	headerCols = 7
	mergedCols = 6

	// First cells of the two header rows under the marker row.
	headerRowTransaction = "Transaction"
	headerRowDate        = "Date"

	// Same cells when the extractor fused the two date columns into one.
	mergedRowTransaction = "Transaction\nValue"
	mergedRowDate        = "Date\nDate"
)

type tableClass int

const (
	tableIgnored tableClass = iota
	tableFailed
	tableRecognized
)

// classifyTable decides whether a table is a transaction table and, if so,
// returns its rows after the 3-row header, canonicalized to 7 columns.
// Tables without the marker are ignored; a marker with an unrecognized header
// shape is a failure and the raw table goes to the sink.
func (p *Parser) classifyTable(doc string, index int, rows [][]string) ([][]string, tableClass) {
	for i, row := range rows {
		if len(row) == 0 || !strings.HasPrefix(row[0], headerMarker) {
			continue
		}
		if i+2 >= len(rows) {
			p.log.Warn("incomplete table header",
				zap.String("document", doc), zap.Int("table", index))
			p.persistFailure(doc, index, rows)
			return nil, tableFailed
		}

		next := firstCell(rows[i+1])
		next2 := firstCell(rows[i+2])
		switch {
		case len(row) == headerCols && next == headerRowTransaction && next2 == headerRowDate:
			return rows[i+3:], tableRecognized
		case len(row) == mergedCols && next == mergedRowTransaction && next2 == mergedRowDate:
			fixed, ok := p.splitMergedDates(doc, index, rows, i+3)
			if !ok {
				return nil, tableFailed
			}
			return fixed, tableRecognized
		default:
			p.log.Warn("unexpected header after account marker",
				zap.String("document", doc),
				zap.Int("table", index),
				zap.Strings("cells", []string{next, next2}))
			p.persistFailure(doc, index, rows)
			return nil, tableFailed
		}
	}
	return nil, tableIgnored
}

// splitMergedDates rebuilds canonical rows for tables where the extractor
// failed to separate the transaction-date and value-date columns. This
// happens on trailing pages that hold only summary rows, and occasionally on
// sparse pages where the whitespace gap between the columns is too small.
// The fused first cell holds both dates separated by a newline; an empty
// first cell means both dates were blank.
func (p *Parser) splitMergedDates(doc string, index int, rows [][]string, start int) ([][]string, bool) {
	fixed := make([][]string, 0, len(rows)-start)
	for _, row := range rows[start:] {
		if len(row) == 0 {
			// Keep the canonical width even for rows the extractor emitted
			// with no cells at all.
			fixed = append(fixed, make([]string, canonicalColumns))
			continue
		}
		prefix := []string{"", ""}
		if row[0] != "" {
			prefix = strings.Split(row[0], "\n")
			if len(prefix) != 2 {
				p.log.Warn("merged date cell did not split in two",
					zap.String("document", doc),
					zap.Int("table", index),
					zap.String("cell", row[0]))
				p.persistFailure(doc, index, rows)
				return nil, false
			}
		}
		fixed = append(fixed, append(prefix, row[1:]...))
	}
	return fixed, true
}

func firstCell(row []string) string {
	if len(row) == 0 {
		return ""
	}
	return row[0]
}
