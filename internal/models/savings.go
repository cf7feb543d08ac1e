package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type SavingsGoal struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	UserID        uint            `gorm:"index" json:"user_id"`
	Name          string          `json:"goal_name"`
	TargetAmount  decimal.Decimal `gorm:"type:numeric(14,2)" json:"target_amount"`
	CurrentAmount decimal.Decimal `gorm:"type:numeric(14,2)" json:"current_amount"`
	TargetDate    string          `json:"target_date"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// SavingsContribution is an append-only history row; contributions are never
// edited or removed individually.
type SavingsContribution struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	GoalID        uint            `gorm:"index" json:"goal_id"`
	Amount        decimal.Decimal `gorm:"type:numeric(14,2)" json:"amount"`
	ContributedAt time.Time       `json:"contribution_date"`
}
