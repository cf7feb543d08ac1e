package http

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"finance-tracker-go/internal/database"
	"finance-tracker-go/internal/models"
)

// POST /register
func (s *Server) register(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	password := c.PostForm("password")
	recoveryHint := c.PostForm("recovery_hint")

	if name == "" || email == "" || password == "" || recoveryHint == "" {
		c.JSON(400, gin.H{"error": "all_fields_required"})
		return
	}

	var existing models.User
	if err := database.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		c.JSON(409, gin.H{"error": "email_already_exists"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(500, gin.H{"error": "encryption_failed"})
		return
	}

	user := models.User{
		FullName:     name,
		Email:        email,
		PasswordHash: string(hash),
		RecoveryHint: recoveryHint,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		// every user starts with a default account at zero balance
		account := models.Account{
			UserID:         &user.ID,
			Name:           "Default Account",
			Type:           "General",
			CurrentBalance: decimal.Zero,
		}
		return tx.Create(&account).Error
	})
	if err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}

	c.JSON(201, gin.H{"message": "registration successful", "user": user})
}

// POST /login
func (s *Server) login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	var user models.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(401, gin.H{"error": "invalid_credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		c.JSON(401, gin.H{"error": "invalid_credentials"})
		return
	}

	if err := s.createSession(c, user.ID); err != nil {
		c.JSON(500, gin.H{"error": "session_failed"})
		return
	}
	c.JSON(200, gin.H{"user": user})
}

// GET /logout
func (s *Server) logout(c *gin.Context) {
	s.destroySession(c)
	c.JSON(200, gin.H{"message": "logged out"})
}

// POST /forgot_password — recovery-hint based reset, compared
// case-insensitively like the login page expects.
func (s *Server) forgotPassword(c *gin.Context) {
	email := c.PostForm("email")
	hint := c.PostForm("hint")
	newPassword := c.PostForm("new_password")

	if email == "" || hint == "" || newPassword == "" {
		c.JSON(400, gin.H{"error": "all_fields_required"})
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(404, gin.H{"error": "user_not_found"})
		return
	}

	if !strings.EqualFold(strings.TrimSpace(user.RecoveryHint), strings.TrimSpace(hint)) {
		c.JSON(401, gin.H{"error": "incorrect_recovery_hint"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(500, gin.H{"error": "encryption_failed"})
		return
	}
	if err := database.DB.Model(&user).Update("password_hash", string(hash)).Error; err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}

	c.JSON(200, gin.H{"message": "password reset successful"})
}

// POST /change_password
func (s *Server) changePassword(c *gin.Context) {
	uid := userID(c)
	current := c.PostForm("current_password")
	newPw := c.PostForm("new_password")
	confirm := c.PostForm("confirm_password")

	if newPw == "" || newPw != confirm {
		c.JSON(400, gin.H{"error": "passwords_do_not_match"})
		return
	}

	var user models.User
	if err := database.DB.First(&user, uid).Error; err != nil {
		c.JSON(404, gin.H{"error": "user_not_found"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		c.JSON(401, gin.H{"error": "incorrect_current_password"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPw), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(500, gin.H{"error": "encryption_failed"})
		return
	}
	if err := database.DB.Model(&user).Update("password_hash", string(hash)).Error; err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}

	c.JSON(200, gin.H{"message": "password changed"})
}

// GET /profile
func (s *Server) profile(c *gin.Context) {
	uid := userID(c)

	var user models.User
	if err := database.DB.First(&user, uid).Error; err != nil {
		c.JSON(404, gin.H{"error": "user_not_found"})
		return
	}

	var lastLogin models.Session
	_ = database.DB.Where("user_id = ?", uid).Order("created_at desc").First(&lastLogin).Error

	var txCount, budgetCount, savingsCount, accountCount int64
	database.DB.Model(&models.Transaction{}).Where("user_id = ?", uid).Count(&txCount)
	database.DB.Model(&models.Budget{}).Where("user_id = ?", uid).Count(&budgetCount)
	database.DB.Model(&models.SavingsGoal{}).Where("user_id = ?", uid).Count(&savingsCount)
	database.DB.Model(&models.Account{}).Where("user_id = ?", uid).Count(&accountCount)

	c.JSON(200, gin.H{
		"user":              user,
		"last_login":        lastLogin.CreatedAt,
		"transaction_count": txCount,
		"budget_count":      budgetCount,
		"savings_count":     savingsCount,
		"account_count":     accountCount,
	})
}

// POST /update_currency
func (s *Server) updateCurrency(c *gin.Context) {
	uid := userID(c)
	currency := c.PostForm("currency")
	if currency == "" {
		c.JSON(400, gin.H{"error": "currency_required"})
		return
	}
	if err := database.DB.Model(&models.User{}).Where("id = ?", uid).Update("currency", currency).Error; err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}
	c.JSON(200, gin.H{"message": "currency updated"})
}

// POST /delete_account — cascades over everything the user owns, in
// dependency order, then removes the user and the session.
func (s *Server) deleteAccount(c *gin.Context) {
	uid := userID(c)

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		goalIDs := tx.Model(&models.SavingsGoal{}).Select("id").Where("user_id = ?", uid)

		steps := []*gorm.DB{
			tx.Where("user_id = ?", uid).Delete(&models.Notification{}),
			tx.Where("goal_id IN (?)", goalIDs).Delete(&models.SavingsContribution{}),
			tx.Where("user_id = ?", uid).Delete(&models.SavingsGoal{}),
			tx.Where("user_id = ?", uid).Delete(&models.RecurringTransaction{}),
			tx.Where("user_id = ?", uid).Delete(&models.BillReminder{}),
			tx.Where("user_id = ?", uid).Delete(&models.Transaction{}),
			tx.Where("user_id = ?", uid).Delete(&models.Budget{}),
			tx.Where("user_id = ?", uid).Delete(&models.Debt{}),
			tx.Where("user_id = ?", uid).Delete(&models.Account{}),
			tx.Where("user_id = ?", uid).Delete(&models.Session{}),
			tx.Delete(&models.User{}, uid),
		}
		for _, step := range steps {
			if step.Error != nil {
				return step.Error
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}

	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.JSON(200, gin.H{"message": "account deleted"})
}
