package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction stores Amount always positive; Type decides the sign when the
// amount is applied to an account. Dates are YYYY-MM-DD strings.
type Transaction struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      uint            `gorm:"index" json:"user_id"`
	CategoryID  uint            `json:"category_id"`
	AccountID   *uint           `json:"account_id,omitempty"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2)" json:"amount"`
	Type        string          `gorm:"column:transaction_type" json:"transaction_type"` // income or expense
	Date        string          `gorm:"column:transaction_date;index" json:"transaction_date"`
	Description string          `json:"description"`
	ReceiptURL  string          `json:"receipt_url,omitempty"`
	IsGenerated bool            `gorm:"default:false" json:"is_recurring_generated"`

	User User `json:"-" gorm:"foreignKey:UserID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
