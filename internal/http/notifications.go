package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"finance-tracker-go/internal/database"
	"finance-tracker-go/internal/models"
)

// GET /notifications?type=
func (s *Server) listNotifications(c *gin.Context) {
	uid := userID(c)

	query := database.DB.Where("user_id = ?", uid).Order("created_at desc")
	if t := c.Query("type"); t != "" {
		query = query.Where("type = ?", t)
	}

	var notifications []models.Notification
	if err := query.Find(&notifications).Error; err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}
	c.JSON(200, gin.H{"notifications": notifications})
}

// GET /mark_notification_read/:id
func (s *Server) markNotificationRead(c *gin.Context) {
	uid := userID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_id"})
		return
	}
	err = database.DB.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, uid).
		Update("is_read", true).Error
	if err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}
	c.JSON(200, gin.H{"message": "notification read"})
}

// GET /delete_notification/:id
func (s *Server) deleteNotification(c *gin.Context) {
	uid := userID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_id"})
		return
	}
	if err := database.DB.Where("id = ? AND user_id = ?", id, uid).Delete(&models.Notification{}).Error; err != nil {
		c.JSON(500, gin.H{"error": "db_error"})
		return
	}
	c.JSON(200, gin.H{"message": "notification deleted"})
}
