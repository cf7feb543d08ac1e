package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"finance-tracker-go/internal/database"
	"finance-tracker-go/internal/ledger"
	"finance-tracker-go/internal/models"
)

type CategorySpend struct {
	CategoryName string          `json:"category_name"`
	Total        decimal.Decimal `json:"total"`
}

func sumTransactions(db *gorm.DB, uid uint, txType, fromDate string) decimal.Decimal {
	var total decimal.Decimal
	row := db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND transaction_type = ? AND transaction_date >= ?", uid, txType, fromDate).
		Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero
	}
	return total
}

func categoryBreakdown(db *gorm.DB, uid uint, limitToMonth string) []CategorySpend {
	query := db.Model(&models.Transaction{}).
		Select("categories.name as category_name, SUM(transactions.amount) as total").
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ? AND transactions.transaction_type = ?", uid, models.TypeExpense).
		Group("categories.name")
	if limitToMonth != "" {
		query = query.Where("transactions.transaction_date >= ?", limitToMonth)
	}
	var out []CategorySpend
	_ = query.Scan(&out).Error
	return out
}

// GET /dashboard
func (s *Server) dashboard(c *gin.Context) {
	uid := userID(c)
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format("2006-01-02")

	var totalBalance decimal.Decimal
	row := database.DB.Model(&models.Account{}).
		Select("COALESCE(SUM(current_balance), 0)").
		Where("user_id = ?", uid).
		Row()
	if err := row.Scan(&totalBalance); err != nil {
		totalBalance = decimal.Zero
	}

	totalIncome := sumTransactions(database.DB, uid, models.TypeIncome, monthStart)
	totalExpenses := sumTransactions(database.DB, uid, models.TypeExpense, monthStart)

	// average goal completion, skipping zero targets
	var goals []models.SavingsGoal
	database.DB.Where("user_id = ?", uid).Find(&goals)
	progress := decimal.Zero
	counted := 0
	for _, g := range goals {
		if g.TargetAmount.IsZero() {
			continue
		}
		progress = progress.Add(g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)))
		counted++
	}
	if counted > 0 {
		progress = progress.Div(decimal.NewFromInt(int64(counted)))
	}

	spending := categoryBreakdown(database.DB, uid, monthStart)

	var upcomingBills []models.BillReminder
	database.DB.Where("user_id = ? AND status = ?", uid, models.BillPending).
		Order("due_date asc").Limit(5).Find(&upcomingBills)

	// never-generated templates first, then by start date
	var recurring []models.RecurringTransaction
	database.DB.Where("user_id = ? AND is_active = ?", uid, true).
		Order("CASE WHEN last_generated_date IS NULL THEN 0 ELSE 1 END, start_date asc").
		Limit(3).Find(&recurring)

	var unread []models.Notification
	database.DB.Where("user_id = ? AND is_read = ?", uid, false).
		Order("created_at desc").Limit(3).Find(&unread)

	c.JSON(200, gin.H{
		"total_balance":     totalBalance,
		"total_income":      totalIncome,
		"total_expenses":    totalExpenses,
		"savings_progress":  progress,
		"category_spending": spending,
		"upcoming_bills":    upcomingBills,
		"recurring":         recurring,
		"notifications":     unread,
	})
}

// GET /analysis — budget vs spend for the current month plus an all-time
// category breakdown.
func (s *Server) analysis(c *gin.Context) {
	uid := userID(c)
	currentMonth := time.Now().Format("2006-01")
	from, _ := ledger.MonthRange(currentMonth)

	var budgets []models.Budget
	database.DB.Where("user_id = ? AND month = ?", uid, currentMonth).Find(&budgets)

	totalBudget := decimal.Zero
	totalExpenses := decimal.Zero
	for _, b := range budgets {
		totalBudget = totalBudget.Add(b.Amount)
		totalExpenses = totalExpenses.Add(monthlySpent(database.DB, uid, b.CategoryID, b.Month))
	}

	totalIncome := sumTransactions(database.DB, uid, models.TypeIncome, "0000-00-00")

	usedPct := decimal.Zero
	remaining := decimal.Zero
	if totalBudget.IsPositive() {
		usedPct = totalExpenses.Div(totalBudget).Mul(decimal.NewFromInt(100)).Round(1)
		remaining = ledger.Remaining(totalBudget, totalExpenses)
	}

	breakdown := categoryBreakdown(database.DB, uid, "")
	if len(breakdown) == 0 {
		s.setAlert(c, "No category-wise expense data available.")
	}

	c.JSON(200, gin.H{
		"month":                  currentMonth,
		"month_start":            from,
		"total_budget":           totalBudget,
		"total_expenses":         totalExpenses,
		"total_income":           totalIncome,
		"budget_used_percentage": usedPct,
		"remaining_budget":       remaining,
		"category_breakdown":     breakdown,
		"alert":                  s.popAlert(c),
	})
}
