package models

// Role represents a user's role within an organization
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleMember  Role = "member"
)

// Organization represents a business or nonprofit sharing financial data
type Organization struct {
	Base
	Name    string         `gorm:"not null" json:"name"`
	Context ProfileContext `gorm:"not null" json:"context"`
	TaxID   string         `json:"tax_id,omitempty"`
	Email   string         `json:"email,omitempty"`
	Phone   string         `json:"phone,omitempty"`
	Address string         `json:"address,omitempty"`

	Roles   []UserRole `gorm:"foreignKey:OrganizationID" json:"roles,omitempty"`
	Members []Member   `gorm:"foreignKey:OrganizationID" json:"members,omitempty"`
}

// UserRole grants a user access to an organization
type UserRole struct {
	Base
	UserID         string  `gorm:"type:uuid;not null;index" json:"user_id"`
	OrganizationID *string `gorm:"type:uuid;index" json:"organization_id,omitempty"`
	Role           Role    `gorm:"not null" json:"role"`

	Organization *Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
}
