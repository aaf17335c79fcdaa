package statement

import (
	"go.uber.org/zap"

	"github.com/bankstmt-dev/bankstmt/internal/model"
)

// SpecialRowLabel is a description cell that marks a statement-summary row
// rather than a transaction. The set is closed: these five literals are the
// only ones the statements print.
type SpecialRowLabel string

const (
	LabelBalanceBroughtForward     SpecialRowLabel = "BALANCE B/F"
	LabelBalanceCarriedForward     SpecialRowLabel = "BALANCE C/F"
	LabelTotalWithdrawalsDeposits  SpecialRowLabel = "Total Withdrawals/Deposits"
	LabelTotalInterestPaidThisYear SpecialRowLabel = "Total Interest Paid This Year"
	LabelAverageBalance            SpecialRowLabel = "Average Balance"
)

// specialRowLabel reports whether a description cell is a recognized summary
// label.
func specialRowLabel(desc string) (SpecialRowLabel, bool) {
	switch label := SpecialRowLabel(desc); label {
	case LabelBalanceBroughtForward,
		LabelBalanceCarriedForward,
		LabelTotalWithdrawalsDeposits,
		LabelTotalInterestPaidThisYear,
		LabelAverageBalance:
		return label, true
	}
	return "", false
}

// buildInfo folds the summary rows collected across a whole document into
// one Info. Later rows win on repeated labels, matching how multi-page
// statements repeat their balance lines. Rows whose amounts fail to parse
// are skipped with a warning.
func (p *Parser) buildInfo(doc string, rows [][]string) model.Info {
	var info model.Info
	for _, row := range rows {
		withdrawal, deposit, balance, err := parseRowAmounts(row)
		if err != nil {
			p.log.Warn("skipping unparsable summary row",
				zap.String("document", doc),
				zap.Strings("row", row),
				zap.Error(err))
			continue
		}
		label, ok := specialRowLabel(row[colDescription])
		if !ok {
			// parseRows only forwards recognized labels.
			continue
		}
		switch label {
		case LabelBalanceBroughtForward:
			info.BalanceBroughtForward = balance
		case LabelBalanceCarriedForward:
			info.BalanceCarriedForward = balance
		case LabelTotalWithdrawalsDeposits:
			info.TotalWithdrawals = withdrawal
			info.TotalDeposits = deposit
		case LabelTotalInterestPaidThisYear:
			// The statement prints this figure in the deposit column even
			// though it is not a deposit.
			info.TotalInterestPaidThisYear = deposit
		case LabelAverageBalance:
			// Same column reuse as the interest line.
			info.AverageBalance = deposit
		}
	}
	return info
}
