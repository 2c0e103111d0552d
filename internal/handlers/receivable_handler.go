package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fluxo/internal/errors"
	"fluxo/internal/services"
)

// ReceivableHandler handles accounts receivable requests
type ReceivableHandler struct {
	receivableService services.ReceivableServicer
}

// NewReceivableHandler creates a new ReceivableHandler
func NewReceivableHandler(receivableService services.ReceivableServicer) *ReceivableHandler {
	return &ReceivableHandler{receivableService: receivableService}
}

// CreateReceivableRequest represents the receivable creation request payload
type CreateReceivableRequest struct {
	ClientName  string `json:"client_name" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"required,min=1,max=255"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	DueDate     string `json:"due_date" binding:"required"`
}

// CreateReceivable handles creation of an account receivable
// @Summary     Create a receivable
// @Description Register an amount owed by a client with a due date
// @Tags        receivables
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Organization-ID header string false "Organization scope"
// @Param       request body CreateReceivableRequest true "Receivable data"
// @Success     201 {object} models.AccountReceivable "Receivable created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /receivables [post]
func (h *ReceivableHandler) CreateReceivable(c *gin.Context) {
	owner, err := getOwner(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateReceivableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "due_date must be in YYYY-MM-DD format"))
		return
	}

	receivable, err := h.receivableService.CreateReceivable(owner, req.ClientName, req.Description, req.Amount, dueDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"receivable": receivable})
}

// GetReceivables lists receivables in the current scope
// @Summary     List receivables
// @Description List all receivables in the current scope, ordered by due date
// @Tags        receivables
// @Produce     json
// @Security    BearerAuth
// @Param       X-Organization-ID header string false "Organization scope"
// @Success     200 {array} models.AccountReceivable "Receivables"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /receivables [get]
func (h *ReceivableHandler) GetReceivables(c *gin.Context) {
	owner, err := getOwner(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	receivables, err := h.receivableService.GetReceivables(owner)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"receivables": receivables})
}

// MarkReceived settles a receivable
// @Summary     Mark a receivable as received
// @Description Transition a pending receivable to received and stamp the date
// @Tags        receivables
// @Produce     json
// @Security    BearerAuth
// @Param       X-Organization-ID header string false "Organization scope"
// @Param       id path string true "Receivable ID"
// @Success     200 {object} models.AccountReceivable "Receivable updated"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Receivable not found"
// @Failure     409 {object} ErrorResponse "Receivable already settled"
// @Router      /receivables/{id}/receive [patch]
func (h *ReceivableHandler) MarkReceived(c *gin.Context) {
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

	receivable, err := h.receivableService.MarkReceived(owner, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"receivable": receivable})
}
