package models

import "time"

// ReceivableStatus represents the settlement state of an account receivable
type ReceivableStatus string

const (
	ReceivableStatusPending  ReceivableStatus = "pending"
	ReceivableStatusReceived ReceivableStatus = "received"
)

// AccountReceivable represents money owed to the account owner
type AccountReceivable struct {
	Base
	UserID         string           `gorm:"type:uuid;not null;index" json:"user_id"`
	OrganizationID *string          `gorm:"type:uuid;index" json:"organization_id,omitempty"`
	ClientName     string           `gorm:"not null" json:"client_name"`
	Description    string           `json:"description,omitempty"`
	Amount         int64            `gorm:"type:bigint;not null" json:"amount"`
	DueDate        time.Time        `gorm:"not null;index" json:"due_date"`
	Status         ReceivableStatus `gorm:"not null;default:'pending'" json:"status"`
}
