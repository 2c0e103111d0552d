package models

import "time"

// FinancialGoal represents a saving or spending target
type FinancialGoal struct {
	Base
	UserID         string     `gorm:"type:uuid;not null;index" json:"user_id"`
	OrganizationID *string    `gorm:"type:uuid;index" json:"organization_id,omitempty"`
	Title          string     `gorm:"not null" json:"title"`
	Description    string     `json:"description,omitempty"`
	TargetAmount   int64      `gorm:"type:bigint;not null" json:"target_amount"`
	CurrentAmount  int64      `gorm:"type:bigint;not null;default:0" json:"current_amount"`
	TargetDate     *time.Time `json:"target_date,omitempty"`
	CategoryID     *string    `gorm:"type:uuid" json:"category_id,omitempty"`
	IsCompleted    bool       `gorm:"default:false" json:"is_completed"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
