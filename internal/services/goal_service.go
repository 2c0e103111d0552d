package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "fluxo/internal/errors"
	"fluxo/internal/models"
)

// goalService handles financial goal business logic.
type goalService struct {
	db *gorm.DB
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB) GoalServicer {
	return &goalService{db: db}
}

// CreateGoal creates a new financial goal.
func (s *goalService) CreateGoal(
	owner OwnerContext,
	title, description string,
	targetAmount int64,
	targetDate *time.Time,
	categoryID *string,
) (*models.FinancialGoal, error) {
	if title == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "goal title is required")
	}
	if targetAmount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be greater than zero")
	}

	goal := &models.FinancialGoal{
		UserID:         owner.UserID,
		OrganizationID: owner.OrganizationID,
		Title:          title,
		Description:    description,
		TargetAmount:   targetAmount,
		TargetDate:     targetDate,
		CategoryID:     categoryID,
	}

	if err := s.db.Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return goal, nil
}

// GetGoals lists the owner's goals, most recent first.
func (s *goalService) GetGoals(owner OwnerContext) ([]models.FinancialGoal, error) {
	var goals []models.FinancialGoal
	if err := s.db.Scopes(scopeOwner(owner)).
		Order("created_at DESC").
		Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goals, nil
}

// UpdateGoalProgress sets the current amount saved toward a goal and
// marks the goal completed when the target is reached.
func (s *goalService) UpdateGoalProgress(owner OwnerContext, goalID string, currentAmount int64) (*models.FinancialGoal, error) {
	if currentAmount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "current amount cannot be negative")
	}

	var goal models.FinancialGoal
	if err := s.db.Scopes(scopeOwner(owner)).
		Where("id = ?", goalID).
		First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	updates := map[string]interface{}{
		"current_amount": currentAmount,
		"is_completed":   currentAmount >= goal.TargetAmount,
	}
	if err := s.db.Model(&goal).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &goal, nil
}
