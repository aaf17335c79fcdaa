package statement

import (
	"go.uber.org/zap"

	"github.com/bankstmt-dev/bankstmt/internal/model"
)

// Canonical transaction table layout after header recovery.
const (
	canonicalColumns = 7

	colTransactionDate = 0
	colValueDate       = 1
	colDescription     = 2
	colCheque          = 3
	colWithdrawal      = 4
	colDeposit         = 5
	colBalance         = 6
)

// parseRows walks the header-stripped rows of one recognized table and
// rebuilds its transactions and summary rows. A transaction opens on a row
// with a date, collects description lines from the dateless rows that follow,
// and closes on the next dated row or the end of the table. Summary rows are
// collected separately and never touch the open transaction.
func (p *Parser) parseRows(doc string, tableIndex int, rows [][]string) ([]model.Transaction, [][]string) {
	if len(rows) == 0 {
		return nil, nil
	}
	// The extractor normally emits uniform widths per table; a first row of
	// the wrong width means the whole table layout is off.
	if len(rows[0]) != canonicalColumns {
		p.log.Warn("unexpected transaction table width",
			zap.String("document", doc),
			zap.Int("table", tableIndex),
			zap.Int("columns", len(rows[0])))
		return nil, nil
	}

	var (
		transactions []model.Transaction
		specialRows  [][]string
		pending      *model.Transaction
	)
	for _, row := range rows {
		// Later rows are not guaranteed canonical; a short row cannot be a
		// transaction or summary row, so skip it instead of indexing past it.
		if len(row) != canonicalColumns {
			p.log.Warn("skipping row with unexpected width",
				zap.String("document", doc),
				zap.Int("table", tableIndex),
				zap.Strings("row", row))
			continue
		}
		if label, ok := specialRowLabel(row[colDescription]); ok {
			specialRows = append(specialRows, row)
			if label == LabelAverageBalance {
				// The average balance line is the last parsable content;
				// whatever follows is trailer text. Stop here.
				if pending != nil {
					transactions = append(transactions, *pending)
				}
				return transactions, specialRows
			}
			continue
		}

		if row[colTransactionDate] == "" {
			if pending == nil {
				p.log.Warn("continuation row with no open transaction",
					zap.String("document", doc),
					zap.Int("table", tableIndex),
					zap.Strings("row", row))
				continue
			}
			pending.AppendDescription(row[colDescription])
			continue
		}

		if pending != nil {
			transactions = append(transactions, *pending)
			pending = nil
		}

		withdrawal, deposit, balance, err := parseRowAmounts(row)
		if err != nil {
			p.log.Warn("skipping unparsable transaction row",
				zap.String("document", doc),
				zap.Int("table", tableIndex),
				zap.Strings("row", row),
				zap.Error(err))
			continue
		}
		pending = &model.Transaction{
			TransactionDate: row[colTransactionDate],
			ValueDate:       row[colValueDate],
			Descriptions:    []string{row[colDescription]},
			Cheque:          row[colCheque],
			Withdrawal:      withdrawal,
			Deposit:         deposit,
			Balance:         balance,
		}
	}
	if pending != nil {
		transactions = append(transactions, *pending)
	}
	return transactions, specialRows
}
