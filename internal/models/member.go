package models

import "time"

// Member represents a person registered under an organization,
// e.g. a congregation or association member.
type Member struct {
	Base
	OrganizationID string     `gorm:"type:uuid;not null;index" json:"organization_id"`
	Name           string     `gorm:"not null" json:"name"`
	Document       string     `json:"document,omitempty"`
	Email          string     `json:"email,omitempty"`
	Phone          string     `json:"phone,omitempty"`
	Address        string     `json:"address,omitempty"`
	BirthDate      *time.Time `json:"birth_date,omitempty"`
	Status         string     `gorm:"not null;default:'active'" json:"status"`
}
