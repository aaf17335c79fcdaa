package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/bankstmt-dev/bankstmt/internal/model"
)

const (
	numFields = 7

	colTransactionDate = 0
	colValueDate       = 1
	colDescriptions    = 2
	colCheque          = 3
	colWithdrawal      = 4
	colDeposit         = 5
	colBalance         = 6
)

// MarshalTransaction converts a transaction to its flat CSV row. Description
// lines are joined with delimiter; absent amounts become empty cells.
func MarshalTransaction(t model.Transaction, delimiter string) []string {
	row := make([]string, numFields)
	row[colTransactionDate] = t.TransactionDate
	row[colValueDate] = t.ValueDate
	row[colDescriptions] = strings.Join(t.Descriptions, delimiter)
	row[colCheque] = t.Cheque

	if t.Withdrawal != nil {
		row[colWithdrawal] = t.Withdrawal.String()
	}
	if t.Deposit != nil {
		row[colDeposit] = t.Deposit.String()
	}
	if t.Balance != nil {
		row[colBalance] = t.Balance.String()
	}

	return row
}

// WriteTransactionsCSV writes one row per transaction, in statement order.
func WriteTransactionsCSV(w io.Writer, txns []model.Transaction, delimiter string) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, t := range txns {
		if err := cw.Write(MarshalTransaction(t, delimiter)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}
