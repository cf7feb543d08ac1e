package models

import "time"

// Session backs the cookie auth. Alert is a transient flash message with
// pop semantics: reading it clears it.
type Session struct {
	Token     string    `gorm:"primaryKey" json:"token"`
	UserID    uint      `gorm:"index" json:"user_id"`
	Alert     string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
