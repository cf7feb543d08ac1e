package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finance-tracker-go/internal/models"
)

func acct(id uint) *uint { return &id }

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// replay applies a list of adjustments to a set of balances.
func replay(balances map[uint]decimal.Decimal, adjs []Adjustment) {
	for _, a := range adjs {
		balances[a.AccountID] = balances[a.AccountID].Add(a.Delta)
	}
}

func TestSigned(t *testing.T) {
	assert.True(t, Signed(Entry{Type: models.TypeIncome, Amount: d("500")}).Equal(d("500")))
	assert.True(t, Signed(Entry{Type: models.TypeExpense, Amount: d("500")}).Equal(d("-500")))
}

func TestApplyWithoutAccount(t *testing.T) {
	assert.Empty(t, Apply(Entry{Type: models.TypeIncome, Amount: d("10")}))
	assert.Empty(t, Revert(Entry{Type: models.TypeExpense, Amount: d("10")}))
}

func TestCreateEditDeleteReplay(t *testing.T) {
	balances := map[uint]decimal.Decimal{1: d("1000")}

	// add income 500
	created := Entry{Type: models.TypeIncome, Amount: d("500"), AccountID: acct(1)}
	replay(balances, Apply(created))
	assert.True(t, balances[1].Equal(d("1500")), "got %s", balances[1])

	// edit to expense 150
	edited := Entry{Type: models.TypeExpense, Amount: d("150"), AccountID: acct(1)}
	replay(balances, Amend(created, edited))
	assert.True(t, balances[1].Equal(d("850")), "got %s", balances[1])

	// delete restores pre-creation value
	replay(balances, Revert(edited))
	assert.True(t, balances[1].Equal(d("1000")), "got %s", balances[1])
}

func TestAmendAcrossAccounts(t *testing.T) {
	balances := map[uint]decimal.Decimal{1: d("100"), 2: d("100")}

	old := Entry{Type: models.TypeExpense, Amount: d("40"), AccountID: acct(1)}
	replay(balances, Apply(old))
	require.True(t, balances[1].Equal(d("60")))

	// moving the transaction to account 2 leaves account 1 as if it never
	// existed and account 2 as if it was created fresh there
	moved := Entry{Type: models.TypeExpense, Amount: d("40"), AccountID: acct(2)}
	adjs := Amend(old, moved)
	require.Len(t, adjs, 2)
	assert.Equal(t, uint(1), adjs[0].AccountID)
	assert.Equal(t, uint(2), adjs[1].AccountID)

	replay(balances, adjs)
	assert.True(t, balances[1].Equal(d("100")))
	assert.True(t, balances[2].Equal(d("60")))
}

func TestAmendDroppingAccount(t *testing.T) {
	old := Entry{Type: models.TypeIncome, Amount: d("25"), AccountID: acct(3)}
	detached := Entry{Type: models.TypeIncome, Amount: d("25")}

	adjs := Amend(old, detached)
	require.Len(t, adjs, 1)
	assert.True(t, adjs[0].Delta.Equal(d("-25")))
}

func TestExceeded(t *testing.T) {
	budget := d("100.00")
	assert.True(t, Exceeded(budget, d("100.01")))
	assert.False(t, Exceeded(budget, d("100.00")), "spending exactly the budget must not fire")
	assert.False(t, Exceeded(budget, d("99.99")))
}

func TestRemaining(t *testing.T) {
	assert.True(t, Remaining(d("100"), d("30")).Equal(d("70")))
	assert.True(t, Remaining(d("100"), d("130")).Equal(d("-30")))
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2023-01", MonthKey("2023-01-31"))
	assert.Equal(t, "2023-1", MonthKey("2023-1"))
}

func TestMonthRange(t *testing.T) {
	from, to := MonthRange("2023-12")
	assert.Equal(t, "2023-12-01", from)
	assert.Equal(t, "2024-01-01", to)
}
