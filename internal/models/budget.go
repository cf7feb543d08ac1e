package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is scoped to (user, category, month); Month is a YYYY-MM bucket key.
// AlertThreshold is stored but the alert check is a flat over-budget rule.
type Budget struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	UserID         uint            `gorm:"uniqueIndex:idx_budget_scope" json:"user_id"`
	CategoryID     uint            `gorm:"uniqueIndex:idx_budget_scope" json:"category_id"`
	Month          string          `gorm:"uniqueIndex:idx_budget_scope" json:"budget_month"`
	Amount         decimal.Decimal `gorm:"type:numeric(14,2)" json:"budget_amount"`
	AlertThreshold int             `gorm:"default:90" json:"alert_threshold"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
