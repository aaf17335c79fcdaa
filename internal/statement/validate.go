package statement

import (
	"fmt"

	"github.com/bankstmt-dev/bankstmt/internal/model"
)

// Issue flags a parsed transaction that looks inconsistent. Issues are
// diagnostics for the caller to report; the statement is kept as parsed.
type Issue struct {
	Transaction int
	Description string
}

func (i Issue) String() string {
	return fmt.Sprintf("transaction %d: %s", i.Transaction, i.Description)
}

// CheckStatement runs consistency checks over an assembled statement:
// an entry should move money in only one direction, and each running balance
// should follow from the previous one.
func CheckStatement(st model.Statement) []Issue {
	var issues []Issue

	prev := st.Info.BalanceBroughtForward
	for i, txn := range st.Transactions {
		if txn.Withdrawal != nil && txn.Deposit != nil {
			issues = append(issues, Issue{
				Transaction: i,
				Description: "both withdrawal and deposit are set",
			})
		}

		if prev == nil {
			// No balance to reconcile against yet.
			prev = txn.Balance
			continue
		}

		expected := *prev
		if txn.Withdrawal != nil {
			expected = expected.Sub(*txn.Withdrawal)
		}
		if txn.Deposit != nil {
			expected = expected.Add(*txn.Deposit)
		}
		if txn.Balance != nil {
			if !expected.Equal(*txn.Balance) {
				issues = append(issues, Issue{
					Transaction: i,
					Description: fmt.Sprintf("balance %s does not follow from %s", txn.Balance, prev),
				})
			}
			// Resync to what the statement reports.
			prev = txn.Balance
		} else {
			prev = &expected
		}
	}
	return issues
}
