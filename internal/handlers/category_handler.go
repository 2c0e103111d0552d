package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fluxo/internal/errors"
	"fluxo/internal/models"
	"fluxo/internal/services"
)

// CategoryHandler handles category-related requests
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategoryRequest represents the category creation request payload
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Type  string `json:"type" binding:"required,category_type"`
	Icon  string `json:"icon" binding:"max=50"`
	Color string `json:"color" binding:"omitempty,hex_color"`
}

// CreateCategory handles category creation
// @Summary     Create a new category
// @Description Create a new income or expense category for the current scope
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Organization-ID header string false "Organization scope"
// @Param       request body CreateCategoryRequest true "Category data"
// @Success     201 {object} models.Category "Category created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Category name already exists"
// @Router      /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	owner, err := getOwner(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.categoryService.CreateCategory(owner, req.Name, models.CategoryType(req.Type), req.Icon, req.Color)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// GetCategories lists the current scope's categories
// @Summary     List categories
// @Description List all categories in the current scope, ordered by name
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       X-Organization-ID header string false "Organization scope"
// @Success     200 {array} models.Category "Categories"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	owner, err := getOwner(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	categories, err := h.categoryService.GetCategories(owner)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetCategory fetches a single category by ID
// @Summary     Get a category
// @Description Get a category by ID within the current scope
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       X-Organization-ID header string false "Organization scope"
// @Param       id path string true "Category ID"
// @Success     200 {object} models.Category "Category"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
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

	category, err := h.categoryService.GetCategoryByID(owner, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}
