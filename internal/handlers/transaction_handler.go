package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fluxo/internal/errors"
	"fluxo/internal/models"
	"fluxo/internal/pagination"
	"fluxo/internal/services"
)

// TransactionHandler handles transaction-related requests
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the transaction creation request payload
type CreateTransactionRequest struct {
	CategoryID  string `json:"category_id" binding:"required,uuid"`
	Description string `json:"description" binding:"required,min=1,max=255"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Type        string `json:"type" binding:"required,transaction_type"`
	Date        string `json:"date" binding:"required"`
}

// CreateRecurringRequest represents the recurring series creation payload
type CreateRecurringRequest struct {
	CategoryID  string `json:"category_id" binding:"required,uuid"`
	Description string `json:"description" binding:"required,min=1,max=255"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Type        string `json:"type" binding:"required,transaction_type"`
	DayOfMonth  int    `json:"day_of_month" binding:"required,min=1,max=28"`
	Months      int    `json:"months" binding:"required,min=1,max=60"`
}

// CreateTransaction handles transaction creation
// @Summary     Create a new transaction
// @Description Record an income or expense transaction in the current scope
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Organization-ID header string false "Organization scope"
// @Param       request body CreateTransactionRequest true "Transaction data"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	owner, err := getOwner(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "date must be in YYYY-MM-DD format"))
		return
	}

	transaction, err := h.transactionService.CreateTransaction(owner, req.CategoryID, req.Description, req.Amount, models.TransactionType(req.Type), date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// GetTransactions lists transactions with optional filters and pagination
// @Summary     List transactions
// @Description List transactions in the current scope, newest first, with optional filters
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       X-Organization-ID header string false "Organization scope"
// @Param       page query int false "Page number" default(1)
// @Param       page_size query int false "Page size" default(20)
// @Param       from query string false "Start date (YYYY-MM-DD)"
// @Param       to query string false "End date (YYYY-MM-DD)"
// @Param       type query string false "Transaction type (income or expense)"
// @Param       category_id query string false "Category ID"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Transactions"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	owner, err := getOwner(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	page.Defaults()

	filter, err := parseTransactionFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.transactionService.GetTransactions(owner, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTransaction fetches a single transaction by ID
// @Summary     Get a transaction
// @Description Get a transaction by ID within the current scope
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       X-Organization-ID header string false "Organization scope"
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction "Transaction"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
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

	transaction, err := h.transactionService.GetTransactionByID(owner, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// CreateRecurring creates a monthly series of transactions
// @Summary     Create a recurring series
// @Description Create one transaction per month for the requested number of months
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Organization-ID header string false "Organization scope"
// @Param       request body CreateRecurringRequest true "Recurring series data"
// @Success     201 {array} models.Transaction "Transactions created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /transactions/recurring [post]
func (h *TransactionHandler) CreateRecurring(c *gin.Context) {
	owner, err := getOwner(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateRecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	created, err := h.transactionService.CreateRecurringSeries(owner, services.RecurringRequest{
		Description: req.Description,
		Amount:      req.Amount,
		Type:        models.TransactionType(req.Type),
		CategoryID:  req.CategoryID,
		DayOfMonth:  req.DayOfMonth,
		Months:      req.Months,
	})
	if err != nil {
		// A partial series may have been written before the failure.
		// Report the error together with what was created.
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{
				"code":    apperrors.ErrInternalServer.Code,
				"message": err.Error(),
			},
			"transactions": created,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transactions": created})
}

func parseTransactionFilter(c *gin.Context) (services.TransactionFilter, error) {
	var filter services.TransactionFilter

	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "from must be in YYYY-MM-DD format")
		}
		filter.FromDate = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "to must be in YYYY-MM-DD format")
		}
		filter.ToDate = &to
	}
	if raw := c.Query("type"); raw != "" {
		t := models.TransactionType(raw)
		if t != models.TransactionTypeIncome && t != models.TransactionTypeExpense {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be income or expense")
		}
		filter.Type = &t
	}
	if raw := c.Query("category_id"); raw != "" {
		id := raw
		filter.CategoryID = &id
	}

	return filter, nil
}
