package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "fluxo/internal/errors"
	"fluxo/internal/models"
	"fluxo/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db              *gorm.DB
	categoryService CategoryServicer
	notifications   NotificationServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, categoryService CategoryServicer) TransactionServicer {
	return &transactionService{
		db:              db,
		categoryService: categoryService,
		notifications:   NewNotificationService(db),
	}
}

// CreateTransaction creates a new transaction in the owner's scope.
// Transactions are immutable once created.
func (s *transactionService) CreateTransaction(
	owner OwnerContext,
	categoryID string,
	description string,
	amount int64,
	transactionType models.TransactionType,
	date time.Time,
) (*models.Transaction, error) {
	// Validate input
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if description == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}

	// Default date to now if not provided
	if date.IsZero() {
		date = time.Now()
	}

	// The category must exist in the owner's scope and match the
	// transaction direction.
	category, err := s.categoryService.GetCategoryByID(owner, categoryID)
	if err != nil {
		return nil, err
	}
	if string(category.Type) != string(transactionType) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category type does not match transaction type")
	}

	transaction := &models.Transaction{
		UserID:         owner.UserID,
		OrganizationID: owner.OrganizationID,
		CategoryID:     categoryID,
		Description:    description,
		Amount:         amount,
		Type:           transactionType,
		Date:           date,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transaction, nil
}

// GetTransactions retrieves a paginated, filtered list of the owner's
// transactions, most recent first.
func (s *transactionService) GetTransactions(owner OwnerContext, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{}).Scopes(scopeOwner(owner))
	base = applyTransactionFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetAllTransactions loads every transaction in the owner's scope,
// most recent first. Used by the dashboard and export paths, which
// aggregate in memory.
func (s *transactionService) GetAllTransactions(owner OwnerContext) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Scopes(scopeOwner(owner)).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// GetTransactionByID retrieves a transaction owned by the caller
func (s *transactionService) GetTransactionByID(owner OwnerContext, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Scopes(scopeOwner(owner)).
		Where("id = ?", transactionID).
		First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// CreateRecurringSeries creates one transaction per consecutive calendar
// month, starting with the current month, each dated on the requested day
// of month and suffixed with its position in the series. Creates run
// sequentially and are not atomic: on failure the already-created prefix
// stays persisted and is returned along with the error, so callers can
// see exactly where the series stopped. Days above 28 may normalize into
// the following month on shorter months.
func (s *transactionService) CreateRecurringSeries(owner OwnerContext, req RecurringRequest) ([]models.Transaction, error) {
	if req.Months < 1 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "months must be at least 1")
	}
	if req.DayOfMonth < 1 || req.DayOfMonth > 31 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "day of month must be between 1 and 31")
	}

	now := time.Now()
	created := make([]models.Transaction, 0, req.Months)

	for i := 0; i < req.Months; i++ {
		date := time.Date(now.Year(), now.Month()+time.Month(i), req.DayOfMonth, 0, 0, 0, 0, time.Local)
		description := fmt.Sprintf("%s (%d/%d)", req.Description, i+1, req.Months)

		tx, err := s.CreateTransaction(owner, req.CategoryID, description, req.Amount, req.Type, date)
		if err != nil {
			// Best effort; the error response already carries the details.
			s.notifications.Notify(owner.UserID, "Recurring series incomplete",
				fmt.Sprintf("%q stopped at entry %d of %d", req.Description, i+1, req.Months), "warning")
			return created, apperrors.Wrap(
				apperrors.WithMessage(apperrors.ErrInternalServer,
					fmt.Sprintf("recurring series stopped at entry %d of %d", i+1, req.Months)),
				err,
			)
		}
		created = append(created, *tx)
	}

	return created, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", *f.ToDate)
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	return q
}
