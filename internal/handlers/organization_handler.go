package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fluxo/internal/errors"
	"fluxo/internal/models"
	"fluxo/internal/services"
)

// OrganizationHandler handles organization management requests
type OrganizationHandler struct {
	organizationService services.OrganizationServicer
}

// NewOrganizationHandler creates a new OrganizationHandler
func NewOrganizationHandler(organizationService services.OrganizationServicer) *OrganizationHandler {
	return &OrganizationHandler{organizationService: organizationService}
}

// CreateOrganizationRequest represents the organization creation request payload
type CreateOrganizationRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Context string `json:"context" binding:"required,profile_context"`
	TaxID   string `json:"tax_id" binding:"max=32"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone" binding:"max=32"`
	Address string `json:"address" binding:"max=500"`
}

// AddUserRoleRequest represents the role grant request payload
type AddUserRoleRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Role   string `json:"role" binding:"required,org_role"`
}

// CreateOrganization handles organization creation
// @Summary     Create an organization
// @Description Create an organization; the creator is granted the admin role
// @Tags        organizations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateOrganizationRequest true "Organization data"
// @Success     201 {object} models.Organization "Organization created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /organizations [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	owner, err := getOwner(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	org, err := h.organizationService.CreateOrganization(owner.UserID, req.Name, models.ProfileContext(req.Context), req.TaxID, req.Email, req.Phone, req.Address)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"organization": org})
}

// GetOrganizations lists the organizations the user belongs to
// @Summary     List organizations
// @Description List all organizations the authenticated user is a member of
// @Tags        organizations
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Organization "Organizations"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /organizations [get]
func (h *OrganizationHandler) GetOrganizations(c *gin.Context) {
	owner, err := getOwner(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	orgs, err := h.organizationService.GetUserOrganizations(owner.UserID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"organizations": orgs})
}

// GetOrganization fetches a single organization by ID
// @Summary     Get an organization
// @Description Get an organization the authenticated user is a member of
// @Tags        organizations
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Organization ID"
// @Success     200 {object} models.Organization "Organization"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Organization not found"
// @Router      /organizations/{id} [get]
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
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

	org, err := h.organizationService.GetOrganizationByID(owner.UserID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"organization": org})
}

// AddUserRole grants a role in an organization
// @Summary     Grant a role
// @Description Grant a user a role in an organization; requires admin
// @Tags        organizations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Organization ID"
// @Param       request body AddUserRoleRequest true "Role grant data"
// @Success     201 {object} models.UserRole "Role granted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not an organization admin"
// @Router      /organizations/{id}/roles [post]
func (h *OrganizationHandler) AddUserRole(c *gin.Context) {
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

	var req AddUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	role, err := h.organizationService.AddUserRole(owner.UserID, id, req.UserID, models.Role(req.Role))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"role": role})
}
