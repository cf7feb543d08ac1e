// Package ledger holds the pure balance arithmetic: how transaction
// mutations translate into account balance deltas. It knows nothing about
// storage; handlers apply each Adjustment as a single atomic
// balance = balance + delta update.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"finance-tracker-go/internal/models"
)

// Entry is the balance-relevant slice of a transaction.
type Entry struct {
	Type      string // models.TypeIncome or models.TypeExpense
	Amount    decimal.Decimal
	AccountID *uint
}

// Adjustment is one balance delta against one account.
type Adjustment struct {
	AccountID uint
	Delta     decimal.Decimal
}

// Signed returns the delta an entry applies to its account: +amount for
// income, -amount for expense.
func Signed(e Entry) decimal.Decimal {
	if e.Type == models.TypeIncome {
		return e.Amount
	}
	return e.Amount.Neg()
}

// Apply returns the adjustments for creating a transaction. An entry with
// no account yields no adjustments.
func Apply(e Entry) []Adjustment {
	if e.AccountID == nil {
		return nil
	}
	return []Adjustment{{AccountID: *e.AccountID, Delta: Signed(e)}}
}

// Revert returns the adjustments for deleting a transaction: the inverse of
// its original effect.
func Revert(e Entry) []Adjustment {
	if e.AccountID == nil {
		return nil
	}
	return []Adjustment{{AccountID: *e.AccountID, Delta: Signed(e).Neg()}}
}

// Amend returns the adjustments for editing a transaction: first the inverse
// of the old effect against the old account, then the new effect against the
// new account. The two are kept separate even when the account is unchanged;
// each is persisted independently.
func Amend(old, updated Entry) []Adjustment {
	return append(Revert(old), Apply(updated)...)
}

// MonthKey reduces a YYYY-MM-DD date string to its YYYY-MM bucket.
func MonthKey(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}

// MonthRange returns the half-open [from, to) date-string range covering a
// YYYY-MM month, for range queries over string dates.
func MonthRange(month string) (from, to string) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return month + "-01", month + "-32"
	}
	return t.Format("2006-01-02"), t.AddDate(0, 1, 0).Format("2006-01-02")
}
