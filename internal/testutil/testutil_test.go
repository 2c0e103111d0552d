package testutil_test

import (
	"testing"
	"time"

	"fluxo/internal/errors"
	"fluxo/internal/models"
	"fluxo/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"users", "organizations", "user_roles", "members", "categories", "transactions", "account_payables", "account_receivables", "accounts", "financial_goals", "notifications"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	if user.ID == "" {
		t.Fatal("user should have a generated ID")
	}

	org := testutil.CreateTestOrganization(t, db, user.ID)
	var roles int64
	if err := db.Model(&models.UserRole{}).Where("user_id = ? AND organization_id = ?", user.ID, org.ID).Count(&roles).Error; err != nil {
		t.Fatalf("failed to count roles: %v", err)
	}
	if roles != 1 {
		t.Errorf("expected 1 admin role for creator, got %d", roles)
	}

	category := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
	if category.Type != models.CategoryTypeExpense {
		t.Errorf("expected expense category, got %s", category.Type)
	}

	tx := testutil.CreateTestTransaction(t, db, user.ID, category.ID, models.TransactionTypeIncome, 1000)
	if tx.Amount != 1000 {
		t.Errorf("expected amount 1000, got %d", tx.Amount)
	}

	payable := testutil.CreateTestPayable(t, db, user.ID, category.ID, 5000, time.Now().AddDate(0, 0, 7))
	if payable.Status != models.PayableStatusPending {
		t.Errorf("expected pending payable, got %s", payable.Status)
	}

	receivable := testutil.CreateTestReceivable(t, db, user.ID, 2500, time.Now().AddDate(0, 0, 14))
	if receivable.Status != models.ReceivableStatusPending {
		t.Errorf("expected pending receivable, got %s", receivable.Status)
	}

	account := testutil.CreateTestAccount(t, db, user.ID, 5000)
	if account.CurrentBalance != 5000 {
		t.Errorf("expected balance 5000, got %d", account.CurrentBalance)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrCategoryNotFound, "custom message")
	testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
