package models

import "time"

// ProfileContext distinguishes personal, business, and nonprofit usage.
// It scopes default categories and organization access.
type ProfileContext string

const (
	ProfilePersonal  ProfileContext = "personal"
	ProfileBusiness  ProfileContext = "business"
	ProfileNonprofit ProfileContext = "nonprofit"
)

// User represents the user model in the database
type User struct {
	Base
	Email            string         `gorm:"uniqueIndex;not null" json:"email"`
	Password         string         `gorm:"not null" json:"-"`
	FullName         string         `json:"full_name"`
	ProfileContext   ProfileContext `gorm:"not null;default:'personal'" json:"profile_context"`
	CompanyName      string         `json:"company_name,omitempty"`
	IsActive         bool           `gorm:"default:true" json:"is_active"`
	RefreshTokenHash string         `gorm:"size:64" json:"-"`
	LastLoginAt      *time.Time     `json:"last_login_at,omitempty"`

	Categories   []Category    `gorm:"foreignKey:UserID" json:"categories,omitempty"`
	Transactions []Transaction `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
	Accounts     []Account     `gorm:"foreignKey:UserID" json:"accounts,omitempty"`
}
