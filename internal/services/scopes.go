package services

import "gorm.io/gorm"

// scopeOwner restricts a query to rows belonging to the owner context.
// Absent organization means "no organization", not "any organization".
func scopeOwner(owner OwnerContext) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("user_id = ?", owner.UserID)
		if owner.OrganizationID != nil {
			return db.Where("organization_id = ?", *owner.OrganizationID)
		}
		return db.Where("organization_id IS NULL")
	}
}
