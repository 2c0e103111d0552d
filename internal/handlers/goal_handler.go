package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fluxo/internal/errors"
	"fluxo/internal/services"
)

// GoalHandler handles financial goal requests
type GoalHandler struct {
	goalService services.GoalServicer
}

// NewGoalHandler creates a new GoalHandler
func NewGoalHandler(goalService services.GoalServicer) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// CreateGoalRequest represents the goal creation request payload
type CreateGoalRequest struct {
	Title        string  `json:"title" binding:"required,min=1,max=200"`
	Description  string  `json:"description" binding:"max=500"`
	TargetAmount int64   `json:"target_amount" binding:"required,gt=0"`
	TargetDate   *string `json:"target_date"`
	CategoryID   *string `json:"category_id" binding:"omitempty,uuid"`
}

// UpdateGoalProgressRequest represents the goal progress update payload
type UpdateGoalProgressRequest struct {
	CurrentAmount int64 `json:"current_amount" binding:"min=0"`
}

// CreateGoal handles goal creation
// @Summary     Create a financial goal
// @Description Create a savings or spending goal with a target amount
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Organization-ID header string false "Organization scope"
// @Param       request body CreateGoalRequest true "Goal data"
// @Success     201 {object} models.FinancialGoal "Goal created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	owner, err := getOwner(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var targetDate *time.Time
	if req.TargetDate != nil && *req.TargetDate != "" {
		parsed, err := time.Parse("2006-01-02", *req.TargetDate)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "target_date must be in YYYY-MM-DD format"))
			return
		}
		targetDate = &parsed
	}

	goal, err := h.goalService.CreateGoal(owner, req.Title, req.Description, req.TargetAmount, targetDate, req.CategoryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"goal": goal})
}

// GetGoals lists goals in the current scope
// @Summary     List goals
// @Description List all financial goals in the current scope
// @Tags        goals
// @Produce     json
// @Security    BearerAuth
// @Param       X-Organization-ID header string false "Organization scope"
// @Success     200 {array} models.FinancialGoal "Goals"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /goals [get]
func (h *GoalHandler) GetGoals(c *gin.Context) {
	owner, err := getOwner(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goals, err := h.goalService.GetGoals(owner)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

// UpdateGoalProgress updates a goal's progress amount
// @Summary     Update goal progress
// @Description Set the current saved amount on a goal; marks it completed when the target is reached
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Organization-ID header string false "Organization scope"
// @Param       id path string true "Goal ID"
// @Param       request body UpdateGoalProgressRequest true "Progress data"
// @Success     200 {object} models.FinancialGoal "Goal updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Router      /goals/{id}/progress [patch]
func (h *GoalHandler) UpdateGoalProgress(c *gin.Context) {
	owner, err := getOwner(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateGoalProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.goalService.UpdateGoalProgress(owner, id, req.CurrentAmount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}
