package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"finance-tracker-go/internal/database"
	"finance-tracker-go/internal/models"
)

// GET /savings
func (s *Server) listSavings(c *gin.Context) {
	uid := userID(c)
	var goals []models.SavingsGoal
	if err := database.DB.Where("user_id = ?", uid).Order("target_date").Find(&goals).Error; err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}
	c.JSON(200, gin.H{"goals": goals, "alert": s.popAlert(c)})
}

// POST /savings
func (s *Server) addSavingsGoal(c *gin.Context) {
	uid := userID(c)

	name := c.PostForm("goal_name")
	target, err := parseAmount(c.PostForm("target_amount"))
	if err != nil || name == "" {
		c.JSON(400, gin.H{"error": "invalid_goal"})
		return
	}
	targetDate, err := parseDateField(c.PostForm("target_date"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_date"})
		return
	}

	goal := models.SavingsGoal{
		UserID:        uid,
		Name:          name,
		TargetAmount:  target,
		CurrentAmount: decimal.Zero,
		TargetDate:    targetDate,
	}
	if err := database.DB.Create(&goal).Error; err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}
	c.JSON(201, gin.H{"goal": goal})
}

// POST /contribute/:goal_id — bumps the goal and appends a history row.
func (s *Server) contribute(c *gin.Context) {
	uid := userID(c)
	goalID, err := strconv.ParseUint(c.Param("goal_id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_id"})
		return
	}
	amount, err := parseAmount(c.PostForm("contribution"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_amount"})
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.SavingsGoal{}).
			Where("id = ? AND user_id = ?", goalID, uid).
			Update("current_amount", gorm.Expr("current_amount + ?", amount)).Error
		if err != nil {
			return err
		}
		return tx.Create(&models.SavingsContribution{
			GoalID:        uint(goalID),
			Amount:        amount,
			ContributedAt: time.Now(),
		}).Error
	})
	if err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}
	c.JSON(200, gin.H{"message": "contribution recorded"})
}

// POST /edit_savings/:goal_id
func (s *Server) editSavingsGoal(c *gin.Context) {
	uid := userID(c)
	goalID, err := strconv.ParseUint(c.Param("goal_id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_id"})
		return
	}
	target, err := parseAmount(c.PostForm("target_amount"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_amount"})
		return
	}
	targetDate, err := parseDateField(c.PostForm("target_date"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_date"})
		return
	}

	err = database.DB.Model(&models.SavingsGoal{}).
		Where("id = ? AND user_id = ?", goalID, uid).
		Updates(map[string]interface{}{
			"name":          c.PostForm("goal_name"),
			"target_amount": target,
			"target_date":   targetDate,
		}).Error
	if err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}
	c.JSON(200, gin.H{"message": "goal updated"})
}

// GET /delete_savings/:goal_id
func (s *Server) deleteSavingsGoal(c *gin.Context) {
	uid := userID(c)
	goalID, err := strconv.ParseUint(c.Param("goal_id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_id"})
		return
	}
	if err := database.DB.Where("id = ? AND user_id = ?", goalID, uid).Delete(&models.SavingsGoal{}).Error; err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}
	c.JSON(200, gin.H{"message": "goal deleted"})
}

// GET /savings_history/:goal_id — the goal must belong to the caller.
func (s *Server) savingsHistory(c *gin.Context) {
	uid := userID(c)
	goalID, err := strconv.ParseUint(c.Param("goal_id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_id"})
		return
	}

	var goal models.SavingsGoal
	if err := database.DB.Where("id = ? AND user_id = ?", goalID, uid).First(&goal).Error; err != nil {
		c.JSON(404, gin.H{"error": "goal_not_found"})
		return
	}

	var history []models.SavingsContribution
	err = database.DB.Where("goal_id = ?", goalID).Order("contributed_at desc").Find(&history).Error
	if err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}
	c.JSON(200, gin.H{"goal_id": goal.ID, "history": history})
}
