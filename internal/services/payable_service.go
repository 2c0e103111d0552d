package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "fluxo/internal/errors"
	"fluxo/internal/models"
)

// payableService handles accounts payable business logic.
type payableService struct {
	db              *gorm.DB
	categoryService CategoryServicer
}

// NewPayableService creates a new PayableServicer.
func NewPayableService(db *gorm.DB, categoryService CategoryServicer) PayableServicer {
	return &payableService{db: db, categoryService: categoryService}
}

// CreatePayable creates a new account payable in pending status.
func (s *payableService) CreatePayable(
	owner OwnerContext,
	categoryID string,
	description string,
	amount int64,
	dueDate time.Time,
	isRecurring bool,
) (*models.AccountPayable, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if description == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}
	if dueDate.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "due date is required")
	}

	if _, err := s.categoryService.GetCategoryByID(owner, categoryID); err != nil {
		return nil, err
	}

	payable := &models.AccountPayable{
		UserID:         owner.UserID,
		OrganizationID: owner.OrganizationID,
		CategoryID:     categoryID,
		Description:    description,
		Amount:         amount,
		DueDate:        dueDate,
		Status:         models.PayableStatusPending,
		IsRecurring:    isRecurring,
	}

	if err := s.db.Create(payable).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return payable, nil
}

// GetPayables lists the owner's payables ordered by due date ascending.
func (s *payableService) GetPayables(owner OwnerContext) ([]models.AccountPayable, error) {
	var payables []models.AccountPayable
	if err := s.db.Scopes(scopeOwner(owner)).
		Order("due_date ASC").
		Find(&payables).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return payables, nil
}

// MarkPaid settles a pending payable. The transition is one-way:
// a payable already paid cannot be settled again.
func (s *payableService) MarkPaid(owner OwnerContext, payableID string) (*models.AccountPayable, error) {
	var payable models.AccountPayable
	if err := s.db.Scopes(scopeOwner(owner)).
		Where("id = ?", payableID).
		First(&payable).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPayableNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if payable.Status == models.PayableStatusPaid {
		return nil, apperrors.ErrAlreadySettled
	}

	if err := s.db.Model(&payable).
		Update("status", models.PayableStatusPaid).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &payable, nil
}
