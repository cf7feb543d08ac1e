package http

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"finance-tracker-go/internal/database"
	"finance-tracker-go/internal/models"
	"finance-tracker-go/internal/recurrence"
)

func validFrequency(f string) bool {
	switch f {
	case recurrence.Daily, recurrence.Weekly, recurrence.Monthly, recurrence.Yearly:
		return true
	}
	return false
}

// GET /recurring
func (s *Server) listRecurring(c *gin.Context) {
	uid := userID(c)
	var recurs []models.RecurringTransaction
	err := database.DB.Where("user_id = ?", uid).Order("start_date desc").Find(&recurs).Error
	if err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}
	c.JSON(200, gin.H{"recurring": recurs})
}

// POST /recurring
func (s *Server) addRecurring(c *gin.Context) {
	uid := userID(c)

	categoryID, err := strconv.ParseUint(c.PostForm("category_id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_category"})
		return
	}
	txType := c.PostForm("transaction_type")
	if txType != models.TypeIncome && txType != models.TypeExpense {
		c.JSON(400, gin.H{"error": "invalid_transaction_type"})
		return
	}
	amount, err := parseAmount(c.PostForm("amount"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_amount"})
		return
	}
	frequency := c.PostForm("frequency")
	if !validFrequency(frequency) {
		c.JSON(400, gin.H{"error": "invalid_frequency"})
		return
	}
	startDate, err := parseDateField(c.PostForm("start_date"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_date"})
		return
	}
	var endDate *string
	if raw := c.PostForm("end_date"); raw != "" {
		d, err := parseDateField(raw)
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid_date"})
			return
		}
		endDate = &d
	}
	var accountID *uint
	if raw := c.PostForm("account_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid_account"})
			return
		}
		acc := uint(v)
		accountID = &acc
	}

	recur := models.RecurringTransaction{
		UserID:      uid,
		CategoryID:  uint(categoryID),
		AccountID:   accountID,
		Amount:      amount,
		Type:        txType,
		Frequency:   frequency,
		StartDate:   startDate,
		EndDate:     endDate,
		Description: c.PostForm("description"),
		IsActive:    true,
	}
	if err := database.DB.Create(&recur).Error; err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}
	c.JSON(201, gin.H{"recurring": recur})
}

// POST /edit_recurring/:id — setting is_active=0 is terminal for the
// generator; the stored row can still be edited.
func (s *Server) editRecurring(c *gin.Context) {
	uid := userID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_id"})
		return
	}

	categoryID, err := strconv.ParseUint(c.PostForm("category_id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_category"})
		return
	}
	txType := c.PostForm("transaction_type")
	if txType != models.TypeIncome && txType != models.TypeExpense {
		c.JSON(400, gin.H{"error": "invalid_transaction_type"})
		return
	}
	amount, err := parseAmount(c.PostForm("amount"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_amount"})
		return
	}
	frequency := c.PostForm("frequency")
	if !validFrequency(frequency) {
		c.JSON(400, gin.H{"error": "invalid_frequency"})
		return
	}
	startDate, err := parseDateField(c.PostForm("start_date"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_date"})
		return
	}
	var endDate *string
	if raw := c.PostForm("end_date"); raw != "" {
		d, err := parseDateField(raw)
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid_date"})
			return
		}
		endDate = &d
	}
	var accountID *uint
	if raw := c.PostForm("account_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid_account"})
			return
		}
		acc := uint(v)
		accountID = &acc
	}

	err = database.DB.Model(&models.RecurringTransaction{}).
		Where("id = ? AND user_id = ?", id, uid).
		Updates(map[string]interface{}{
			"category_id":      uint(categoryID),
			"transaction_type": txType,
			"amount":           amount,
			"frequency":        frequency,
			"start_date":       startDate,
			"end_date":         endDate,
			"description":      c.PostForm("description"),
			"account_id":       accountID,
			"is_active":        c.PostForm("is_active") != "0",
		}).Error
	if err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}
	c.JSON(200, gin.H{"message": "recurring transaction updated"})
}

// GET /generate_recurring — walks the caller's active templates and fires
// each at most once. Periods missed since the last visit are not
// back-filled; the generated transaction is dated today, not the due date.
func (s *Server) generateRecurring(c *gin.Context) {
	uid := userID(c)
	today := time.Now()
	todayStr := recurrence.FormatDate(today)
	todayDay, _ := recurrence.ParseDate(todayStr)

	var recurs []models.RecurringTransaction
	err := database.DB.Where("user_id = ? AND is_active = ?", uid, true).Find(&recurs).Error
	if err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}

	generated := 0
	for _, r := range recurs {
		lastStr := r.StartDate
		if r.LastGeneratedDate != nil {
			lastStr = *r.LastGeneratedDate
		}
		last, err := recurrence.ParseDate(lastStr)
		if err != nil {
			continue
		}

		var end *time.Time
		if r.EndDate != nil {
			if e, err := recurrence.ParseDate(*r.EndDate); err == nil {
				end = &e
			}
		}

		next := recurrence.NextDue(last, r.Frequency)
		if !recurrence.Due(todayDay, next, end) {
			continue
		}

		txn := models.Transaction{
			UserID:      r.UserID,
			CategoryID:  r.CategoryID,
			AccountID:   r.AccountID,
			Amount:      r.Amount,
			Type:        r.Type,
			Date:        todayStr,
			Description: r.Description,
			IsGenerated: true,
		}
		if err := database.DB.Create(&txn).Error; err != nil {
			continue
		}
		database.DB.Model(&models.RecurringTransaction{}).
			Where("id = ?", r.ID).
			Update("last_generated_date", todayStr)
		generated++
	}

	s.setAlert(c, fmt.Sprintf("%d transaction(s) generated.", generated))
	c.JSON(200, gin.H{"generated": generated})
}
