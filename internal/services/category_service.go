package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "fluxo/internal/errors"
	"fluxo/internal/models"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// CreateCategory creates a new category
func (s *categoryService) CreateCategory(
	owner OwnerContext,
	name string,
	categoryType models.CategoryType,
	icon string,
	color string,
) (*models.Category, error) {
	// Validate input
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	// Check if a category with the same name already exists in this scope
	var count int64
	if err := s.db.Model(&models.Category{}).
		Scopes(scopeOwner(owner)).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrCategoryExists
	}

	category := &models.Category{
		UserID:         owner.UserID,
		OrganizationID: owner.OrganizationID,
		Name:           name,
		Type:           categoryType,
		Icon:           icon,
		Color:          color,
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return category, nil
}

// GetCategories lists the owner's categories ordered by name.
func (s *categoryService) GetCategories(owner OwnerContext) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Scopes(scopeOwner(owner)).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// GetCategoryByID retrieves a category owned by the caller
func (s *categoryService) GetCategoryByID(owner OwnerContext, categoryID string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Scopes(scopeOwner(owner)).
		Where("id = ?", categoryID).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}
