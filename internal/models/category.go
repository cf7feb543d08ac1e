package models

import "time"

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Category is either owned by a user or global (nil UserID). Type carries
// income|expense but consistency with transaction types is not validated.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    *uint     `gorm:"index" json:"user_id,omitempty"`
	Name      string    `json:"name"`
	Type      string    `json:"type"` // income or expense
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
