package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"finance-tracker-go/internal/database"
	"finance-tracker-go/internal/ledger"
	"finance-tracker-go/internal/models"
)

func parseMonth(raw string) (string, error) {
	t, err := time.Parse("2006-01", raw)
	if err != nil {
		return "", err
	}
	return t.Format("2006-01"), nil
}

type budgetView struct {
	models.Budget
	CategoryName string          `json:"category_name"`
	TotalSpent   decimal.Decimal `json:"total_spent"`
}

func (s *Server) budgetViews(uid uint, month string) ([]budgetView, error) {
	query := database.DB.Where("user_id = ?", uid).Order("month desc")
	if month != "" {
		query = query.Where("month = ?", month)
	}

	var budgets []models.Budget
	if err := query.Find(&budgets).Error; err != nil {
		return nil, err
	}

	views := make([]budgetView, 0, len(budgets))
	for _, b := range budgets {
		var cat models.Category
		_ = database.DB.First(&cat, b.CategoryID).Error
		views = append(views, budgetView{
			Budget:       b,
			CategoryName: cat.Name,
			TotalSpent:   monthlySpent(database.DB, uid, b.CategoryID, b.Month),
		})
	}
	return views, nil
}

// GET /budgets
func (s *Server) listBudgets(c *gin.Context) {
	uid := userID(c)

	views, err := s.budgetViews(uid, "")
	if err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}

	months := []string{}
	seen := map[string]bool{}
	for _, v := range views {
		if !seen[v.Month] {
			seen[v.Month] = true
			months = append(months, v.Month)
		}
	}

	c.JSON(200, gin.H{"budgets": views, "available_months": months, "alert": s.popAlert(c)})
}

// POST /budgets — upsert on (user, category, month).
func (s *Server) upsertBudget(c *gin.Context) {
	uid := userID(c)

	categoryID, err := strconv.ParseUint(c.PostForm("category_id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_category"})
		return
	}
	amount, err := parseAmount(c.PostForm("budget_amount"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_amount"})
		return
	}
	month, err := parseMonth(c.PostForm("budget_month"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_month"})
		return
	}
	threshold := 90
	if raw := c.PostForm("alert_threshold"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			threshold = v
		}
	}

	var existing models.Budget
	err = database.DB.Where("user_id = ? AND category_id = ? AND month = ?", uid, categoryID, month).
		First(&existing).Error
	switch {
	case err == nil:
		err = database.DB.Model(&existing).Updates(map[string]interface{}{
			"amount":          amount,
			"alert_threshold": threshold,
		}).Error
		if err != nil {
			c.JSON(500, gin.H{"error": "db_error"})
			return
		}
		c.JSON(200, gin.H{"budget": existing})
	case isNotFound(err):
		budget := models.Budget{
			UserID:         uid,
			CategoryID:     uint(categoryID),
			Month:          month,
			Amount:         amount,
			AlertThreshold: threshold,
		}
		if err := database.DB.Create(&budget).Error; err != nil {
			c.JSON(500, gin.H{"error": "db_error"})
			return
		}
		c.JSON(201, gin.H{"budget": budget})
	default:
		c.JSON(500, gin.H{"error": "db_error"})
	}
}

// POST /edit_budget/:id
func (s *Server) editBudget(c *gin.Context) {
	uid := userID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_id"})
		return
	}
	amount, err := parseAmount(c.PostForm("budget_amount"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_amount"})
		return
	}
	threshold, err := strconv.Atoi(c.PostForm("alert_threshold"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_threshold"})
		return
	}

	err = database.DB.Model(&models.Budget{}).
		Where("id = ? AND user_id = ?", id, uid).
		Updates(map[string]interface{}{"amount": amount, "alert_threshold": threshold}).Error
	if err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}
	c.JSON(200, gin.H{"message": "budget updated"})
}

// GET /delete_budget/:id
func (s *Server) deleteBudget(c *gin.Context) {
	uid := userID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_id"})
		return
	}
	if err := database.DB.Where("id = ? AND user_id = ?", id, uid).Delete(&models.Budget{}).Error; err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}
	c.JSON(200, gin.H{"message": "budget deleted"})
}

// GET /budget_trends — month by month budget vs spend.
func (s *Server) budgetTrends(c *gin.Context) {
	uid := userID(c)
	views, err := s.budgetViews(uid, "")
	if err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}
	c.JSON(200, gin.H{"trends": views})
}

// GET /move_to_savings?month=YYYY-MM — the unspent remainder of each budget
// in the month is added to every still-active savings goal.
func (s *Server) moveToSavings(c *gin.Context) {
	uid := userID(c)
	month := c.Query("month")
	if month == "" {
		s.setAlert(c, "No month selected.")
		c.JSON(400, gin.H{"error": "month_required"})
		return
	}
	if _, err := parseMonth(month); err != nil {
		c.JSON(400, gin.H{"error": "invalid_month"})
		return
	}

	views, err := s.budgetViews(uid, month)
	if err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}

	today := time.Now().Format("2006-01-02")
	totalMoved := decimal.Zero

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		for _, v := range views {
			remaining := ledger.Remaining(v.Amount, v.TotalSpent)
			if !remaining.IsPositive() {
				continue
			}
			totalMoved = totalMoved.Add(remaining)
			err := tx.Model(&models.SavingsGoal{}).
				Where("user_id = ? AND target_date >= ?", uid, today).
				Update("current_amount", gorm.Expr("current_amount + ?", remaining)).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}

	s.setAlert(c, "$"+totalMoved.StringFixed(2)+" moved to savings for "+month+".")
	c.JSON(200, gin.H{"moved": totalMoved, "month": month})
}
