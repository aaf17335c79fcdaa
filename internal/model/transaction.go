package model

import "github.com/shopspring/decimal"

// Transaction represents one dated entry in a monthly statement. Dates are
// kept as the display strings the statement prints (e.g. "01 JAN") since the
// table does not carry the year. At most one of Withdrawal/Deposit is
// expected per entry; Balance is the running balance after it. Nil means the
// column was blank, which is not the same as zero.
type Transaction struct {
	TransactionDate string           `json:"transaction_date"`
	ValueDate       string           `json:"value_date"`
	Descriptions    []string         `json:"descriptions"`
	Cheque          string           `json:"cheque"`
	Withdrawal      *decimal.Decimal `json:"withdrawal"`
	Deposit         *decimal.Decimal `json:"deposit"`
	Balance         *decimal.Decimal `json:"balance"`
}

// AppendDescription adds a continuation line to the entry's description.
func (t *Transaction) AppendDescription(line string) {
	t.Descriptions = append(t.Descriptions, line)
}
