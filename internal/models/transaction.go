package models

import "time"

// TransactionType represents the direction of a transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a financial transaction in the system.
// Amounts are stored in minor currency units (cents).
// Transactions are immutable once created; there is no update path.
type Transaction struct {
	Base
	UserID         string          `gorm:"type:uuid;not null;index" json:"user_id"`
	OrganizationID *string         `gorm:"type:uuid;index" json:"organization_id,omitempty"`
	CategoryID     string          `gorm:"type:uuid;not null" json:"category_id"`
	Description    string          `gorm:"not null" json:"description"`
	Amount         int64           `gorm:"type:bigint;not null" json:"amount"`
	Type           TransactionType `gorm:"not null" json:"type"`
	Date           time.Time       `gorm:"not null;index" json:"date"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
