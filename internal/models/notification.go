package models

// Notification is a transient in-app message for a user, written
// best-effort after data changes or failures.
type Notification struct {
	Base
	UserID  string `gorm:"type:uuid;not null;index" json:"user_id"`
	Title   string `gorm:"not null" json:"title"`
	Message string `json:"message"`
	Type    string `gorm:"not null;default:'info'" json:"type"`
	IsRead  bool   `gorm:"default:false" json:"is_read"`
}
