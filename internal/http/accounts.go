package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"finance-tracker-go/internal/database"
	"finance-tracker-go/internal/models"
)

// GET /accounts — the user's own accounts plus shared ones.
func (s *Server) listAccounts(c *gin.Context) {
	uid := userID(c)
	var accounts []models.Account
	if err := database.DB.Where("user_id = ? OR user_id IS NULL", uid).Find(&accounts).Error; err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}
	c.JSON(200, gin.H{"accounts": accounts, "alert": s.popAlert(c)})
}

// POST /accounts
func (s *Server) addAccount(c *gin.Context) {
	uid := userID(c)

	name := c.PostForm("account_name")
	accType := c.PostForm("account_type")
	balanceRaw := c.PostForm("current_balance")
	if name == "" || balanceRaw == "" {
		c.JSON(400, gin.H{"error": "missing_fields"})
		return
	}
	balance, err := parseAmount(balanceRaw)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_balance"})
		return
	}

	account := models.Account{
		UserID:         &uid,
		Name:           name,
		Type:           accType,
		CurrentBalance: balance,
		IsActive:       true,
	}
	if err := database.DB.Create(&account).Error; err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}
	c.JSON(201, gin.H{"account": account})
}

// POST /edit_account/:id
func (s *Server) editAccount(c *gin.Context) {
	uid := userID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_id"})
		return
	}

	balance, err := parseAmount(c.PostForm("current_balance"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_balance"})
		return
	}
	isActive := c.PostForm("is_active") != "0"
	currency := c.PostForm("currency")
	if currency == "" {
		currency = "USD"
	}

	err = database.DB.Model(&models.Account{}).
		Where("id = ? AND user_id = ?", id, uid).
		Updates(map[string]interface{}{
			"name":            c.PostForm("account_name"),
			"type":            c.PostForm("account_type"),
			"current_balance": balance,
			"currency":        currency,
			"is_active":       isActive,
		}).Error
	if err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}
	c.JSON(200, gin.H{"message": "account updated"})
}

// GET /delete_linked_account/:id — refused while transactions still
// reference the account.
func (s *Server) deleteLinkedAccount(c *gin.Context) {
	uid := userID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_id"})
		return
	}

	var count int64
	database.DB.Model(&models.Transaction{}).
		Where("account_id = ? AND user_id = ?", id, uid).
		Count(&count)
	if count > 0 {
		s.setAlert(c, "Cannot delete account with linked transactions.")
		c.JSON(409, gin.H{"error": "account_has_transactions"})
		return
	}

	if err := database.DB.Where("id = ? AND user_id = ?", id, uid).Delete(&models.Account{}).Error; err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}
	c.JSON(200, gin.H{"message": "account deleted"})
}

// GET /categories — user-owned plus global.
func (s *Server) listCategories(c *gin.Context) {
	uid := userID(c)
	var categories []models.Category
	if err := database.DB.Where("user_id = ? OR user_id IS NULL", uid).Find(&categories).Error; err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}
	c.JSON(200, gin.H{"categories": categories})
}

// POST /categories
func (s *Server) addCategory(c *gin.Context) {
	uid := userID(c)

	name := c.PostForm("category_name")
	catType := c.PostForm("category_type")
	if name == "" {
		c.JSON(400, gin.H{"error": "missing_fields"})
		return
	}
	if catType != models.TypeIncome && catType != models.TypeExpense {
		c.JSON(400, gin.H{"error": "invalid_category_type"})
		return
	}

	category := models.Category{UserID: &uid, Name: name, Type: catType}
	if err := database.DB.Create(&category).Error; err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}
	c.JSON(201, gin.H{"category": category})
}
