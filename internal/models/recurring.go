package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurringTransaction is a template the generator expands into concrete
// transactions. IsActive=false is terminal; there is no reactivation path.
type RecurringTransaction struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	UserID            uint            `gorm:"index" json:"user_id"`
	CategoryID        uint            `json:"category_id"`
	AccountID         *uint           `json:"account_id,omitempty"`
	Amount            decimal.Decimal `gorm:"type:numeric(14,2)" json:"amount"`
	Type              string          `gorm:"column:transaction_type" json:"transaction_type"` // income or expense
	Frequency         string          `json:"frequency"`        // daily, weekly, monthly, yearly
	StartDate         string          `json:"start_date"`
	EndDate           *string         `json:"end_date,omitempty"`
	Description       string          `json:"description"`
	LastGeneratedDate *string         `json:"last_generated_date,omitempty"`
	IsActive          bool            `gorm:"default:true" json:"is_active"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
