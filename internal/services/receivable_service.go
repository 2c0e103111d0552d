package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "fluxo/internal/errors"
	"fluxo/internal/models"
)

// receivableService handles accounts receivable business logic.
type receivableService struct {
	db *gorm.DB
}

// NewReceivableService creates a new ReceivableServicer.
func NewReceivableService(db *gorm.DB) ReceivableServicer {
	return &receivableService{db: db}
}

// CreateReceivable creates a new account receivable in pending status.
func (s *receivableService) CreateReceivable(
	owner OwnerContext,
	clientName string,
	description string,
	amount int64,
	dueDate time.Time,
) (*models.AccountReceivable, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if clientName == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "client name is required")
	}
	if dueDate.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "due date is required")
	}

	receivable := &models.AccountReceivable{
		UserID:         owner.UserID,
		OrganizationID: owner.OrganizationID,
		ClientName:     clientName,
		Description:    description,
		Amount:         amount,
		DueDate:        dueDate,
		Status:         models.ReceivableStatusPending,
	}

	if err := s.db.Create(receivable).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return receivable, nil
}

// GetReceivables lists the owner's receivables ordered by due date ascending.
func (s *receivableService) GetReceivables(owner OwnerContext) ([]models.AccountReceivable, error) {
	var receivables []models.AccountReceivable
	if err := s.db.Scopes(scopeOwner(owner)).
		Order("due_date ASC").
		Find(&receivables).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return receivables, nil
}

// MarkReceived settles a pending receivable. The transition is one-way.
func (s *receivableService) MarkReceived(owner OwnerContext, receivableID string) (*models.AccountReceivable, error) {
	var receivable models.AccountReceivable
	if err := s.db.Scopes(scopeOwner(owner)).
		Where("id = ?", receivableID).
		First(&receivable).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReceivableNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if receivable.Status == models.ReceivableStatusReceived {
		return nil, apperrors.ErrAlreadySettled
	}

	if err := s.db.Model(&receivable).
		Update("status", models.ReceivableStatusReceived).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &receivable, nil
}
