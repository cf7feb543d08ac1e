package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"finance-tracker-go/internal/database"
	"finance-tracker-go/internal/models"
)

// GET /debts
func (s *Server) listDebts(c *gin.Context) {
	uid := userID(c)
	var debts []models.Debt
	if err := database.DB.Where("user_id = ?", uid).Order("due_date").Find(&debts).Error; err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}
	c.JSON(200, gin.H{"debts": debts})
}

// POST /debts
func (s *Server) addDebt(c *gin.Context) {
	uid := userID(c)

	lender := c.PostForm("lender_name")
	total, err := parseAmount(c.PostForm("total_amount"))
	if err != nil || lender == "" {
		c.JSON(400, gin.H{"error": "invalid_debt"})
		return
	}
	paid := decimal.Zero
	if raw := c.PostForm("paid_amount"); raw != "" {
		if paid, err = parseAmount(raw); err != nil {
			c.JSON(400, gin.H{"error": "invalid_amount"})
			return
		}
	}
	var interest *decimal.Decimal
	if raw := c.PostForm("interest_rate"); raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid_interest"})
			return
		}
		interest = &v
	}
	dueDate, err := parseDateField(c.PostForm("due_date"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_date"})
		return
	}

	debt := models.Debt{
		UserID:       uid,
		LenderName:   lender,
		TotalAmount:  total,
		PaidAmount:   paid,
		InterestRate: interest,
		DueDate:      dueDate,
	}
	if err := database.DB.Create(&debt).Error; err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}
	c.JSON(201, gin.H{"debt": debt})
}

// POST /edit_debt/:id
func (s *Server) editDebt(c *gin.Context) {
	uid := userID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_id"})
		return
	}
	total, err := parseAmount(c.PostForm("total_amount"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_amount"})
		return
	}
	paid, err := parseAmount(c.PostForm("paid_amount"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_amount"})
		return
	}
	var interest *decimal.Decimal
	if raw := c.PostForm("interest_rate"); raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid_interest"})
			return
		}
		interest = &v
	}
	dueDate, err := parseDateField(c.PostForm("due_date"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_date"})
		return
	}

	err = database.DB.Model(&models.Debt{}).
		Where("id = ? AND user_id = ?", id, uid).
		Updates(map[string]interface{}{
			"lender_name":   c.PostForm("lender_name"),
			"total_amount":  total,
			"paid_amount":   paid,
			"interest_rate": interest,
			"due_date":      dueDate,
		}).Error
	if err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}
	c.JSON(200, gin.H{"message": "debt updated"})
}

// GET /delete_debt/:id
func (s *Server) deleteDebt(c *gin.Context) {
	uid := userID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_id"})
		return
	}
	if err := database.DB.Where("id = ? AND user_id = ?", id, uid).Delete(&models.Debt{}).Error; err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}
	c.JSON(200, gin.H{"message": "debt deleted"})
}
