// Package statement turns raw extracted tables into structured statements.
// Input is whatever the upstream table extractor produced: ordered tables of
// string cells with unreliable column segmentation. Nothing in here is fatal;
// every malformed table or row degrades to a warning and a counter, and a
// document always yields a Statement.
package statement

import (
	"go.uber.org/zap"

	"github.com/bankstmt-dev/bankstmt/internal/model"
)

// FailureSink receives the raw rows of tables whose header could not be
// understood, for offline inspection.
type FailureSink interface {
	SaveTable(doc string, tableIndex int, rows [][]string) error
}

// Parser parses the extracted tables of statement documents.
type Parser struct {
	log  *zap.Logger
	sink FailureSink
}

// NewParser creates a Parser. sink may be nil to drop failure artifacts.
func NewParser(log *zap.Logger, sink FailureSink) *Parser {
	return &Parser{log: log, sink: sink}
}

// ParseDocument parses one document's tables, in the order the extractor
// emitted them; table order is chronological order in the source document and
// later summary rows override earlier ones, so it must not be reshuffled.
func (p *Parser) ParseDocument(doc string, tables []model.RawTable) (model.Statement, Counters) {
	var counters Counters
	transactions := make([]model.Transaction, 0)
	var specialRows [][]string

	for index, table := range tables {
		rows, class := p.classifyTable(doc, index, table)
		switch class {
		case tableIgnored:
			counters.Ignore++
			continue
		case tableFailed:
			counters.Failure++
			continue
		case tableRecognized:
			counters.Success++
		}

		txns, special := p.parseRows(doc, index, rows)
		transactions = append(transactions, txns...)
		specialRows = append(specialRows, special...)
	}

	return model.Statement{
		Info:         p.buildInfo(doc, specialRows),
		Transactions: transactions,
	}, counters
}

func (p *Parser) persistFailure(doc string, tableIndex int, rows [][]string) {
	if p.sink == nil {
		return
	}
	if err := p.sink.SaveTable(doc, tableIndex, rows); err != nil {
		p.log.Warn("saving failure artifact",
			zap.String("document", doc),
			zap.Int("table", tableIndex),
			zap.Error(err))
	}
}
