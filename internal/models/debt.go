package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Debt struct {
	ID           uint             `gorm:"primaryKey" json:"id"`
	UserID       uint             `gorm:"index" json:"user_id"`
	LenderName   string           `json:"lender_name"`
	TotalAmount  decimal.Decimal  `gorm:"type:numeric(14,2)" json:"total_amount"`
	PaidAmount   decimal.Decimal  `gorm:"type:numeric(14,2)" json:"paid_amount"`
	InterestRate *decimal.Decimal `gorm:"type:numeric(6,2)" json:"interest_rate,omitempty"`
	DueDate      string           `json:"due_date"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}
