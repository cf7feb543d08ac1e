package ledger

import "github.com/shopspring/decimal"

// Exceeded reports whether monthly spending has gone over the budgeted
// amount. The comparison is strictly greater-than: spending exactly the
// budget does not fire. The stored alert threshold is not consulted; only
// this flat over-budget rule exists.
func Exceeded(budgetAmount, totalSpent decimal.Decimal) bool {
	return totalSpent.GreaterThan(budgetAmount)
}

// Remaining returns budget minus spend. Negative means over budget.
func Remaining(budgetAmount, totalSpent decimal.Decimal) decimal.Decimal {
	return budgetAmount.Sub(totalSpent)
}
