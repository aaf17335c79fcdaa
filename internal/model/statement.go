package model

import "github.com/shopspring/decimal"

// RawTable is one table as emitted by the upstream extractor: ordered rows of
// string cells. Row widths may vary until the header shape is recovered.
type RawTable [][]string

// Info holds the statement-level aggregates read from summary rows. A nil
// field means the statement never carried that summary row.
type Info struct {
	BalanceBroughtForward     *decimal.Decimal `json:"balance_brought_forward"`
	BalanceCarriedForward     *decimal.Decimal `json:"balance_carried_forward"`
	TotalWithdrawals          *decimal.Decimal `json:"total_withdrawals"`
	TotalDeposits             *decimal.Decimal `json:"total_deposits"`
	TotalInterestPaidThisYear *decimal.Decimal `json:"total_interest_paid_this_year"`
	AverageBalance            *decimal.Decimal `json:"average_balance"`
}

// Statement is one parsed source document: its aggregates plus every
// transaction in document order. Not mutated after assembly.
type Statement struct {
	Info         Info          `json:"info"`
	Transactions []Transaction `json:"transactions"`
}
