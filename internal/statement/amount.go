package statement

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmount converts a display amount to an exact decimal. An empty string
// means the column was blank and yields nil, which is not the same as zero:
// a blank withdrawal column means no withdrawal happened. Currency symbols,
// thousands separators, whitespace and CR/DR suffixes are stripped before
// parsing; whatever remains must be a plain decimal number.
func parseAmount(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '.' {
			return r
		}
		return -1
	}, s)
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return &d, nil
}

// parseRowAmounts reads the three money columns of a canonical row.
func parseRowAmounts(row []string) (withdrawal, deposit, balance *decimal.Decimal, err error) {
	withdrawal, err = parseAmount(row[colWithdrawal])
	if err != nil {
		return nil, nil, nil, fmt.Errorf("withdrawal: %w", err)
	}
	deposit, err = parseAmount(row[colDeposit])
	if err != nil {
		return nil, nil, nil, fmt.Errorf("deposit: %w", err)
	}
	balance, err = parseAmount(row[colBalance])
	if err != nil {
		return nil, nil, nil, fmt.Errorf("balance: %w", err)
	}
	return withdrawal, deposit, balance, nil
}
