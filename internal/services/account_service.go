package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "fluxo/internal/errors"
	"fluxo/internal/models"
)

// accountService handles account-related business logic.
type accountService struct {
	db *gorm.DB
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(db *gorm.DB) AccountServicer {
	return &accountService{db: db}
}

// CreateAccount creates a new financial account. The current balance
// starts equal to the initial balance.
func (s *accountService) CreateAccount(
	owner OwnerContext,
	name string,
	accountType models.AccountType,
	initialBalance int64,
) (*models.Account, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account name is required")
	}

	account := &models.Account{
		UserID:         owner.UserID,
		OrganizationID: owner.OrganizationID,
		Name:           name,
		Type:           accountType,
		InitialBalance: initialBalance,
		CurrentBalance: initialBalance,
		IsActive:       true,
	}

	if err := s.db.Create(account).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return account, nil
}

// GetAccounts lists the owner's accounts ordered by name.
func (s *accountService) GetAccounts(owner OwnerContext) ([]models.Account, error) {
	var accounts []models.Account
	if err := s.db.Scopes(scopeOwner(owner)).
		Order("name ASC").
		Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return accounts, nil
}

// GetAccountByID retrieves an account owned by the caller
func (s *accountService) GetAccountByID(owner OwnerContext, accountID string) (*models.Account, error) {
	var account models.Account
	if err := s.db.Scopes(scopeOwner(owner)).
		Where("id = ?", accountID).
		First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &account, nil
}

// UpdateAccount updates an account's name and active flag.
func (s *accountService) UpdateAccount(owner OwnerContext, accountID, name string, isActive *bool) (*models.Account, error) {
	account, err := s.GetAccountByID(owner, accountID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if isActive != nil {
		updates["is_active"] = *isActive
	}

	if len(updates) > 0 {
		if err := s.db.Model(account).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return account, nil
}
