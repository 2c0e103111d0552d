package services_test

import (
	"testing"

	"fluxo/internal/models"
	"fluxo/internal/services"
	"fluxo/internal/testutil"
)

func TestCreateGoal(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	svc := services.NewGoalService(db)
	user := testutil.CreateTestUser(t, db)
	owner := services.OwnerContext{UserID: user.ID}

	goal, err := svc.CreateGoal(owner, "Emergency fund", "Six months of expenses", 1000000, nil, nil)
	testutil.AssertNoError(t, err)

	if goal.CurrentAmount != 0 || goal.IsCompleted {
		t.Errorf("new goal should start empty and incomplete: %+v", goal)
	}
}

func TestCreateGoalValidation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	svc := services.NewGoalService(db)
	user := testutil.CreateTestUser(t, db)
	owner := services.OwnerContext{UserID: user.ID}

	_, err := svc.CreateGoal(owner, "", "", 1000, nil, nil)
	testutil.AssertAppError(t, err, "INVALID_INPUT")

	_, err = svc.CreateGoal(owner, "Title", "", 0, nil, nil)
	testutil.AssertAppError(t, err, "INVALID_INPUT")
}

func TestUpdateGoalProgress(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	svc := services.NewGoalService(db)
	user := testutil.CreateTestUser(t, db)
	owner := services.OwnerContext{UserID: user.ID}

	goal := testutil.CreateTestGoal(t, db, user.ID, 10000)

	_, err := svc.UpdateGoalProgress(owner, goal.ID, 5000)
	testutil.AssertNoError(t, err)

	var stored models.FinancialGoal
	if err := db.First(&stored, "id = ?", goal.ID).Error; err != nil {
		t.Fatalf("failed to reload goal: %v", err)
	}
	if stored.CurrentAmount != 5000 || stored.IsCompleted {
		t.Errorf("goal halfway should not be completed: %+v", stored)
	}

	_, err = svc.UpdateGoalProgress(owner, goal.ID, 10000)
	testutil.AssertNoError(t, err)

	if err := db.First(&stored, "id = ?", goal.ID).Error; err != nil {
		t.Fatalf("failed to reload goal: %v", err)
	}
	if !stored.IsCompleted {
		t.Error("goal at target should be marked completed")
	}
}

func TestUpdateGoalProgressNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	svc := services.NewGoalService(db)
	user := testutil.CreateTestUser(t, db)

	_, err := svc.UpdateGoalProgress(services.OwnerContext{UserID: user.ID}, "00000000-0000-0000-0000-000000000000", 100)
	testutil.AssertAppError(t, err, "GOAL_NOT_FOUND")
}
