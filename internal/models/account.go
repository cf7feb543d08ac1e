package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account holds a running balance. A nil UserID means the account is shared
// across users. CurrentBalance is only ever mutated through atomic
// balance = balance + delta updates so it stays equal to the signed sum of
// the transactions applied to it.
type Account struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	UserID         *uint           `gorm:"index" json:"user_id,omitempty"`
	Name           string          `json:"name"`
	Type           string          `json:"type"` // checking, savings, wallet, General, ...
	CurrentBalance decimal.Decimal `gorm:"type:numeric(14,2)" json:"current_balance"`
	Currency       string          `gorm:"default:USD" json:"currency"`
	IsActive       bool            `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
