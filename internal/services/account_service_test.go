package services_test

import (
	"testing"

	"fluxo/internal/models"
	"fluxo/internal/services"
	"fluxo/internal/testutil"
)

func TestCreateAccount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	svc := services.NewAccountService(db)
	user := testutil.CreateTestUser(t, db)
	owner := services.OwnerContext{UserID: user.ID}

	account, err := svc.CreateAccount(owner, "Checking", models.AccountTypeBank, 150000)
	testutil.AssertNoError(t, err)

	if account.CurrentBalance != 150000 {
		t.Errorf("current balance should start at the initial balance, got %d", account.CurrentBalance)
	}
	if !account.IsActive {
		t.Error("new accounts should be active")
	}
}

func TestCreateAccountRequiresName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	svc := services.NewAccountService(db)
	user := testutil.CreateTestUser(t, db)

	_, err := svc.CreateAccount(services.OwnerContext{UserID: user.ID}, "", models.AccountTypeCash, 0)
	testutil.AssertAppError(t, err, "INVALID_INPUT")
}

func TestUpdateAccount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	svc := services.NewAccountService(db)
	user := testutil.CreateTestUser(t, db)
	owner := services.OwnerContext{UserID: user.ID}

	account := testutil.CreateTestAccount(t, db, user.ID, 1000)

	inactive := false
	_, err := svc.UpdateAccount(owner, account.ID, "Renamed", &inactive)
	testutil.AssertNoError(t, err)

	var stored models.Account
	if err := db.First(&stored, "id = ?", account.ID).Error; err != nil {
		t.Fatalf("failed to reload account: %v", err)
	}
	if stored.Name != "Renamed" || stored.IsActive {
		t.Errorf("unexpected account after update: %+v", stored)
	}
}

func TestGetAccountsScoping(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	svc := services.NewAccountService(db)
	user := testutil.CreateTestUser(t, db)
	org := testutil.CreateTestOrganization(t, db, user.ID)

	testutil.CreateTestAccount(t, db, user.ID, 100)

	orgAccount := &models.Account{
		UserID:         user.ID,
		OrganizationID: &org.ID,
		Name:           "Org Account",
		Type:           models.AccountTypeBank,
		IsActive:       true,
	}
	if err := db.Create(orgAccount).Error; err != nil {
		t.Fatalf("failed to create org account: %v", err)
	}

	personal, err := svc.GetAccounts(services.OwnerContext{UserID: user.ID})
	testutil.AssertNoError(t, err)
	if len(personal) != 1 || personal[0].OrganizationID != nil {
		t.Errorf("personal scope should see exactly the personal account, got %d rows", len(personal))
	}

	business, err := svc.GetAccounts(services.OwnerContext{UserID: user.ID, OrganizationID: &org.ID})
	testutil.AssertNoError(t, err)
	if len(business) != 1 || business[0].Name != "Org Account" {
		t.Errorf("organization scope should see exactly the org account, got %d rows", len(business))
	}
}
