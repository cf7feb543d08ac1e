package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	BillPending = "pending"
	BillPaid    = "paid"
)

type BillReminder struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	UserID    uint            `gorm:"index" json:"user_id"`
	Name      string          `json:"bill_name"`
	Amount    decimal.Decimal `gorm:"type:numeric(14,2)" json:"amount"`
	DueDate   string          `json:"due_date"`
	Status    string          `gorm:"default:pending" json:"status"` // pending or paid
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
