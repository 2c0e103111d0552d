package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"fluxo/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:          email,
		Password:       string(hash),
		ProfileContext: models.ProfilePersonal,
		IsActive:       true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestOrganization creates an organization and grants the user the admin role.
func CreateTestOrganization(t *testing.T, db *gorm.DB, userID string) *models.Organization {
	t.Helper()

	org := &models.Organization{
		Name:    fmt.Sprintf("Test Org %d", nextID()),
		Context: models.ProfileBusiness,
	}
	if err := db.Create(org).Error; err != nil {
		t.Fatalf("failed to create test organization: %v", err)
	}

	role := &models.UserRole{
		UserID:         userID,
		OrganizationID: &org.ID,
		Role:           models.RoleAdmin,
	}
	if err := db.Create(role).Error; err != nil {
		t.Fatalf("failed to create test user role: %v", err)
	}
	return org
}

// CreateTestCategory creates a personal-scope category of the given type.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID string, categoryType models.CategoryType) *models.Category {
	t.Helper()
	return CreateTestOrgCategory(t, db, userID, nil, categoryType)
}

// CreateTestOrgCategory creates a category in the given organization scope.
func CreateTestOrgCategory(t *testing.T, db *gorm.DB, userID string, orgID *string, categoryType models.CategoryType) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID:         userID,
		OrganizationID: orgID,
		Name:           fmt.Sprintf("Test Category %d", nextID()),
		Type:           categoryType,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestTransaction creates a personal-scope transaction dated now,
// with the amount in cents.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID, categoryID string, txType models.TransactionType, amount int64) *models.Transaction {
	t.Helper()
	return CreateTestTransactionOn(t, db, userID, categoryID, txType, amount, time.Now())
}

// CreateTestTransactionOn creates a personal-scope transaction with an explicit date.
func CreateTestTransactionOn(t *testing.T, db *gorm.DB, userID, categoryID string, txType models.TransactionType, amount int64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:      userID,
		CategoryID:  categoryID,
		Description: fmt.Sprintf("Test Transaction %d", nextID()),
		Type:        txType,
		Amount:      amount,
		Date:        date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestPayable creates a pending payable with the given due date.
func CreateTestPayable(t *testing.T, db *gorm.DB, userID, categoryID string, amount int64, dueDate time.Time) *models.AccountPayable {
	t.Helper()

	payable := &models.AccountPayable{
		UserID:      userID,
		CategoryID:  categoryID,
		Description: fmt.Sprintf("Test Payable %d", nextID()),
		Amount:      amount,
		DueDate:     dueDate,
		Status:      models.PayableStatusPending,
	}
	if err := db.Create(payable).Error; err != nil {
		t.Fatalf("failed to create test payable: %v", err)
	}
	return payable
}

// CreateTestReceivable creates a pending receivable with the given due date.
func CreateTestReceivable(t *testing.T, db *gorm.DB, userID string, amount int64, dueDate time.Time) *models.AccountReceivable {
	t.Helper()

	receivable := &models.AccountReceivable{
		UserID:     userID,
		ClientName: fmt.Sprintf("Test Client %d", nextID()),
		Amount:     amount,
		DueDate:    dueDate,
		Status:     models.ReceivableStatusPending,
	}
	if err := db.Create(receivable).Error; err != nil {
		t.Fatalf("failed to create test receivable: %v", err)
	}
	return receivable
}

// CreateTestAccount creates a bank account with the given balance (in cents).
func CreateTestAccount(t *testing.T, db *gorm.DB, userID string, balance int64) *models.Account {
	t.Helper()

	account := &models.Account{
		UserID:         userID,
		Name:           fmt.Sprintf("Test Account %d", nextID()),
		Type:           models.AccountTypeBank,
		InitialBalance: balance,
		CurrentBalance: balance,
		IsActive:       true,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestGoal creates a financial goal with the given target (in cents).
func CreateTestGoal(t *testing.T, db *gorm.DB, userID string, target int64) *models.FinancialGoal {
	t.Helper()

	goal := &models.FinancialGoal{
		UserID:       userID,
		Title:        fmt.Sprintf("Test Goal %d", nextID()),
		TargetAmount: target,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}
