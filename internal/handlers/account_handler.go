package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fluxo/internal/errors"
	"fluxo/internal/models"
	"fluxo/internal/services"
)

// AccountHandler handles account-related requests
type AccountHandler struct {
	accountService services.AccountServicer
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountService services.AccountServicer) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// CreateAccountRequest represents the account creation request payload
type CreateAccountRequest struct {
	Name           string `json:"name" binding:"required,min=1,max=100"`
	Type           string `json:"type" binding:"required,account_type"`
	InitialBalance int64  `json:"initial_balance"`
}

// UpdateAccountRequest represents the account update request payload
type UpdateAccountRequest struct {
	Name     string `json:"name" binding:"omitempty,min=1,max=100"`
	IsActive *bool  `json:"is_active"`
}

// CreateAccount handles account creation
// @Summary     Create a new account
// @Description Create a cash, bank, card, or pix account in the current scope
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Organization-ID header string false "Organization scope"
// @Param       request body CreateAccountRequest true "Account data"
// @Success     201 {object} models.Account "Account created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /accounts [post]
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	owner, err := getOwner(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	account, err := h.accountService.CreateAccount(owner, req.Name, models.AccountType(req.Type), req.InitialBalance)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"account": account})
}

// GetAccounts lists accounts in the current scope
// @Summary     List accounts
// @Description List all accounts in the current scope
// @Tags        accounts
// @Produce     json
// @Security    BearerAuth
// @Param       X-Organization-ID header string false "Organization scope"
// @Success     200 {array} models.Account "Accounts"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /accounts [get]
func (h *AccountHandler) GetAccounts(c *gin.Context) {
	owner, err := getOwner(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accounts, err := h.accountService.GetAccounts(owner)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accounts": accounts})
}

// GetAccount fetches a single account by ID
// @Summary     Get an account
// @Description Get an account by ID within the current scope
// @Tags        accounts
// @Produce     json
// @Security    BearerAuth
// @Param       X-Organization-ID header string false "Organization scope"
// @Param       id path string true "Account ID"
// @Success     200 {object} models.Account "Account"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Router      /accounts/{id} [get]
func (h *AccountHandler) GetAccount(c *gin.Context) {
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

	account, err := h.accountService.GetAccountByID(owner, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"account": account})
}

// UpdateAccount updates an account's name or active flag
// @Summary     Update an account
// @Description Rename an account or toggle its active flag
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Organization-ID header string false "Organization scope"
// @Param       id path string true "Account ID"
// @Param       request body UpdateAccountRequest true "Fields to update"
// @Success     200 {object} models.Account "Account updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Router      /accounts/{id} [patch]
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
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

	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	account, err := h.accountService.UpdateAccount(owner, id, req.Name, req.IsActive)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"account": account})
}
