package http

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"finance-tracker-go/internal/database"
	"finance-tracker-go/internal/models"
)

const sessionCookie = "session_token"

// createSession opens a new session row and sets the cookie.
func (s *Server) createSession(c *gin.Context, userID uint) error {
	sess := models.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(time.Duration(s.cfg.SessionTTLHours) * time.Hour),
	}
	if err := database.DB.Create(&sess).Error; err != nil {
		return err
	}
	c.SetCookie(sessionCookie, sess.Token, s.cfg.SessionTTLHours*3600, "/", "", false, true)
	return nil
}

func (s *Server) destroySession(c *gin.Context) {
	if token, err := c.Cookie(sessionCookie); err == nil {
		database.DB.Delete(&models.Session{}, "token = ?", token)
	}
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
}

// requireAuth validates the session cookie and stores userID and the session
// token in the gin context.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "login_required"})
			return
		}

		var sess models.Session
		if err := database.DB.Where("token = ? AND expires_at > ?", token, time.Now()).First(&sess).Error; err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": "login_required"})
			return
		}

		c.Set("userID", sess.UserID)
		c.Set("sessionToken", sess.Token)
		c.Next()
	}
}

// setAlert stores a transient message on the current session.
func (s *Server) setAlert(c *gin.Context, msg string) {
	token, ok := c.Get("sessionToken")
	if !ok {
		return
	}
	database.DB.Model(&models.Session{}).Where("token = ?", token).Update("alert", msg)
}

// popAlert returns the pending alert and clears it; reading is destructive.
func (s *Server) popAlert(c *gin.Context) string {
	token, ok := c.Get("sessionToken")
	if !ok {
		return ""
	}
	var sess models.Session
	if err := database.DB.First(&sess, "token = ?", token).Error; err != nil {
		return ""
	}
	if sess.Alert != "" {
		database.DB.Model(&models.Session{}).Where("token = ?", token).Update("alert", "")
	}
	return sess.Alert
}

func userID(c *gin.Context) uint {
	return c.MustGet("userID").(uint)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
