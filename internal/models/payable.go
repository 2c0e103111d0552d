package models

import "time"

// PayableStatus represents the settlement state of an account payable.
// "Overdue" is never stored: it is derived from due_date vs the clock
// at read time.
type PayableStatus string

const (
	PayableStatusPending PayableStatus = "pending"
	PayableStatusPaid    PayableStatus = "paid"
)

// AccountPayable represents money owed by the account owner,
// tracked with a due date and settlement status.
type AccountPayable struct {
	Base
	UserID         string        `gorm:"type:uuid;not null;index" json:"user_id"`
	OrganizationID *string       `gorm:"type:uuid;index" json:"organization_id,omitempty"`
	CategoryID     string        `gorm:"type:uuid;not null" json:"category_id"`
	Description    string        `gorm:"not null" json:"description"`
	Amount         int64         `gorm:"type:bigint;not null" json:"amount"`
	DueDate        time.Time     `gorm:"not null;index" json:"due_date"`
	Status         PayableStatus `gorm:"not null;default:'pending'" json:"status"`
	IsRecurring    bool          `gorm:"default:false" json:"is_recurring"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// IsOverdue reports whether the payable is still pending past its due date.
func (p *AccountPayable) IsOverdue(now time.Time) bool {
	return p.Status == PayableStatusPending && p.DueDate.Before(now)
}
