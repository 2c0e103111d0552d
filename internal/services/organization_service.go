package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "fluxo/internal/errors"
	"fluxo/internal/models"
)

// organizationService handles organization and role management.
type organizationService struct {
	db *gorm.DB
}

// NewOrganizationService creates a new OrganizationServicer.
func NewOrganizationService(db *gorm.DB) OrganizationServicer {
	return &organizationService{db: db}
}

// CreateOrganization creates an organization and grants the creator the admin role.
func (s *organizationService) CreateOrganization(
	userID, name string,
	context models.ProfileContext,
	taxID, email, phone, address string,
) (*models.Organization, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "organization name is required")
	}

	org := &models.Organization{
		Name:    name,
		Context: context,
		TaxID:   taxID,
		Email:   email,
		Phone:   phone,
		Address: address,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		role := &models.UserRole{
			UserID:         userID,
			OrganizationID: &org.ID,
			Role:           models.RoleAdmin,
		}
		if err := tx.Create(role).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return org, nil
}

// GetUserOrganizations lists the organizations the user holds a role in,
// ordered by name.
func (s *organizationService) GetUserOrganizations(userID string) ([]models.Organization, error) {
	var orgs []models.Organization
	err := s.db.
		Joins("JOIN user_roles ON user_roles.organization_id = organizations.id").
		Where("user_roles.user_id = ? AND user_roles.deleted_at IS NULL", userID).
		Order("organizations.name ASC").
		Find(&orgs).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return orgs, nil
}

// GetOrganizationByID returns an organization the user has access to.
func (s *organizationService) GetOrganizationByID(userID, orgID string) (*models.Organization, error) {
	var count int64
	if err := s.db.Model(&models.UserRole{}).
		Where("user_id = ? AND organization_id = ?", userID, orgID).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return nil, apperrors.ErrOrganizationNotFound
	}

	var org models.Organization
	if err := s.db.Where("id = ?", orgID).First(&org).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &org, nil
}

// AddUserRole grants a role in the organization. Only admins may grant roles.
func (s *organizationService) AddUserRole(adminID, orgID, userID string, role models.Role) (*models.UserRole, error) {
	var adminRole models.UserRole
	err := s.db.Where("user_id = ? AND organization_id = ?", adminID, orgID).First(&adminRole).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if adminRole.Role != models.RoleAdmin {
		return nil, apperrors.ErrNotOrganizationAdmin
	}

	var existing int64
	if err := s.db.Model(&models.UserRole{}).
		Where("user_id = ? AND organization_id = ?", userID, orgID).
		Count(&existing).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if existing > 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "user already has a role in this organization")
	}

	userRole := &models.UserRole{
		UserID:         userID,
		OrganizationID: &orgID,
		Role:           role,
	}
	if err := s.db.Create(userRole).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return userRole, nil
}
