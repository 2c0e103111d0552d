package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fluxo/internal/errors"
	"fluxo/internal/services"
)

// PayableHandler handles accounts payable requests
type PayableHandler struct {
	payableService services.PayableServicer
}

// NewPayableHandler creates a new PayableHandler
func NewPayableHandler(payableService services.PayableServicer) *PayableHandler {
	return &PayableHandler{payableService: payableService}
}

// CreatePayableRequest represents the payable creation request payload
type CreatePayableRequest struct {
	CategoryID  string `json:"category_id" binding:"omitempty,uuid"`
	Description string `json:"description" binding:"required,min=1,max=255"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	DueDate     string `json:"due_date" binding:"required"`
	IsRecurring bool   `json:"is_recurring"`
}

// CreatePayable handles creation of an account payable
// @Summary     Create a payable
// @Description Register a bill to pay with a due date
// @Tags        payables
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Organization-ID header string false "Organization scope"
// @Param       request body CreatePayableRequest true "Payable data"
// @Success     201 {object} models.AccountPayable "Payable created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /payables [post]
func (h *PayableHandler) CreatePayable(c *gin.Context) {
	owner, err := getOwner(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreatePayableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "due_date must be in YYYY-MM-DD format"))
		return
	}

	payable, err := h.payableService.CreatePayable(owner, req.CategoryID, req.Description, req.Amount, dueDate, req.IsRecurring)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"payable": payable})
}

// GetPayables lists payables in the current scope
// @Summary     List payables
// @Description List all payables in the current scope, ordered by due date
// @Tags        payables
// @Produce     json
// @Security    BearerAuth
// @Param       X-Organization-ID header string false "Organization scope"
// @Success     200 {array} models.AccountPayable "Payables"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /payables [get]
func (h *PayableHandler) GetPayables(c *gin.Context) {
	owner, err := getOwner(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	payables, err := h.payableService.GetPayables(owner)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payables": payables})
}

// MarkPaid settles a payable
// @Summary     Mark a payable as paid
// @Description Transition a pending payable to paid and stamp the payment date
// @Tags        payables
// @Produce     json
// @Security    BearerAuth
// @Param       X-Organization-ID header string false "Organization scope"
// @Param       id path string true "Payable ID"
// @Success     200 {object} models.AccountPayable "Payable updated"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Payable not found"
// @Failure     409 {object} ErrorResponse "Payable already settled"
// @Router      /payables/{id}/pay [patch]
func (h *PayableHandler) MarkPaid(c *gin.Context) {
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

	payable, err := h.payableService.MarkPaid(owner, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payable": payable})
}
