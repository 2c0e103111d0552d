package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fluxo/internal/errors"
	"fluxo/internal/services"
)

// MemberHandler handles organization member requests
type MemberHandler struct {
	memberService services.MemberServicer
}

// NewMemberHandler creates a new MemberHandler
func NewMemberHandler(memberService services.MemberServicer) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// CreateMemberRequest represents the member creation request payload
type CreateMemberRequest struct {
	Name      string  `json:"name" binding:"required,min=1,max=200"`
	Document  string  `json:"document" binding:"max=32"`
	Email     string  `json:"email" binding:"omitempty,email"`
	Phone     string  `json:"phone" binding:"max=32"`
	Address   string  `json:"address" binding:"max=500"`
	BirthDate *string `json:"birth_date"`
}

// CreateMember registers a member of the current organization
// @Summary     Create a member
// @Description Register a person in the current organization's member registry
// @Tags        members
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Organization-ID header string true "Organization scope"
// @Param       request body CreateMemberRequest true "Member data"
// @Success     201 {object} models.Member "Member created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /members [post]
func (h *MemberHandler) CreateMember(c *gin.Context) {
	owner, err := getOwner(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if owner.OrganizationID == nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "members require an organization scope"))
		return
	}

	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var birthDate *time.Time
	if req.BirthDate != nil && *req.BirthDate != "" {
		parsed, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "birth_date must be in YYYY-MM-DD format"))
			return
		}
		birthDate = &parsed
	}

	member, err := h.memberService.CreateMember(*owner.OrganizationID, req.Name, req.Document, req.Email, req.Phone, req.Address, birthDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"member": member})
}

// GetMembers lists the current organization's members
// @Summary     List members
// @Description List everyone in the current organization's member registry
// @Tags        members
// @Produce     json
// @Security    BearerAuth
// @Param       X-Organization-ID header string true "Organization scope"
// @Success     200 {array} models.Member "Members"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /members [get]
func (h *MemberHandler) GetMembers(c *gin.Context) {
	owner, err := getOwner(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if owner.OrganizationID == nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "members require an organization scope"))
		return
	}

	members, err := h.memberService.GetMembers(*owner.OrganizationID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"members": members})
}
