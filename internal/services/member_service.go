package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "fluxo/internal/errors"
	"fluxo/internal/models"
)

// memberService handles organization member registration.
type memberService struct {
	db *gorm.DB
}

// NewMemberService creates a new MemberServicer.
func NewMemberService(db *gorm.DB) MemberServicer {
	return &memberService{db: db}
}

// CreateMember registers a member under an organization.
func (s *memberService) CreateMember(
	orgID, name, document, email, phone, address string,
	birthDate *time.Time,
) (*models.Member, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "member name is required")
	}

	var count int64
	if err := s.db.Model(&models.Organization{}).Where("id = ?", orgID).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return nil, apperrors.ErrOrganizationNotFound
	}

	member := &models.Member{
		OrganizationID: orgID,
		Name:           name,
		Document:       document,
		Email:          email,
		Phone:          phone,
		Address:        address,
		BirthDate:      birthDate,
		Status:         "active",
	}

	if err := s.db.Create(member).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return member, nil
}

// GetMembers lists an organization's members ordered by name.
func (s *memberService) GetMembers(orgID string) ([]models.Member, error) {
	var members []models.Member
	if err := s.db.Where("organization_id = ?", orgID).
		Order("name ASC").
		Find(&members).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return members, nil
}
