package models

import "time"

// Notification carries a related-entity reference. At most one notification
// ever exists per (user, related_entity_type, related_entity_id); the dedup
// check lives in the handler layer, not in a storage constraint.
type Notification struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserID            uint      `gorm:"index" json:"user_id"`
	Type              string    `json:"notification_type"` // e.g. bill_reminder
	Message           string    `json:"message"`
	RelatedEntityType string    `json:"related_entity_type"`
	RelatedEntityID   uint      `json:"related_entity_id"`
	IsRead            bool      `gorm:"default:false" json:"is_read"`
	CreatedAt         time.Time `json:"created_at"`
}
