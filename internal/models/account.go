package models

// AccountType represents the type of account
type AccountType string

const (
	AccountTypeCash AccountType = "cash"
	AccountTypeBank AccountType = "bank"
	AccountTypeCard AccountType = "card"
	AccountTypePix  AccountType = "pix"
)

// Account represents a financial account in the system.
// Balances are stored in minor currency units (cents).
type Account struct {
	Base
	UserID         string      `gorm:"type:uuid;not null;index" json:"user_id"`
	OrganizationID *string     `gorm:"type:uuid;index" json:"organization_id,omitempty"`
	Name           string      `gorm:"not null" json:"name"`
	Type           AccountType `gorm:"not null" json:"type"`
	InitialBalance int64       `gorm:"type:bigint;not null;default:0" json:"initial_balance"`
	CurrentBalance int64       `gorm:"type:bigint;not null;default:0" json:"current_balance"`
	IsActive       bool        `gorm:"default:true" json:"is_active"`
}
