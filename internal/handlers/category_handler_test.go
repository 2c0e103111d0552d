package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "fluxo/internal/errors"
	"fluxo/internal/models"
	"fluxo/internal/services"
)

// --- mock category service ---

type mockCategoryService struct {
	createCategoryFn  func(owner services.OwnerContext, name string, categoryType models.CategoryType, icon, color string) (*models.Category, error)
	getCategoriesFn   func(owner services.OwnerContext) ([]models.Category, error)
	getCategoryByIDFn func(owner services.OwnerContext, categoryID string) (*models.Category, error)
}

func (m *mockCategoryService) CreateCategory(owner services.OwnerContext, name string, categoryType models.CategoryType, icon, color string) (*models.Category, error) {
	if m.createCategoryFn != nil {
		return m.createCategoryFn(owner, name, categoryType, icon, color)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) GetCategories(owner services.OwnerContext) ([]models.Category, error) {
	if m.getCategoriesFn != nil {
		return m.getCategoriesFn(owner)
	}
	return []models.Category{}, nil
}

func (m *mockCategoryService) GetCategoryByID(owner services.OwnerContext, categoryID string) (*models.Category, error) {
	if m.getCategoryByIDFn != nil {
		return m.getCategoryByIDFn(owner, categoryID)
	}
	return &models.Category{}, nil
}

var _ services.CategoryServicer = (*mockCategoryService)(nil)

func setupCategoryRouter(handler *CategoryHandler, middlewares ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.Use(middlewares...)
	auth.POST("/categories", handler.CreateCategory)
	auth.GET("/categories", handler.GetCategories)
	auth.GET("/categories/:id", handler.GetCategory)
	return r
}

func TestCategoryHandler_CreateCategory(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		catSvc := &mockCategoryService{
			createCategoryFn: func(owner services.OwnerContext, name string, catType models.CategoryType, icon, color string) (*models.Category, error) {
				if owner.UserID != testUserID {
					t.Errorf("expected owner %s, got %s", testUserID, owner.UserID)
				}
				if owner.OrganizationID != nil {
					t.Error("expected personal scope")
				}
				return &models.Category{Name: name, Type: catType, Icon: icon, Color: color}, nil
			},
		}
		handler := NewCategoryHandler(catSvc)
		r := setupCategoryRouter(handler)

		rec := doRequest(r, "POST", "/categories",
			`{"name":"Food","type":"expense","icon":"cart","color":"#FF0000"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		cat := result["category"].(map[string]interface{})
		if cat["name"] != "Food" {
			t.Errorf("expected Food, got %v", cat["name"])
		}
	})

	t.Run("passes the organization scope through", func(t *testing.T) {
		orgID := "0191e4a3-0000-7000-8000-00000000000f"
		catSvc := &mockCategoryService{
			createCategoryFn: func(owner services.OwnerContext, name string, _ models.CategoryType, _, _ string) (*models.Category, error) {
				if owner.OrganizationID == nil || *owner.OrganizationID != orgID {
					t.Errorf("expected organization scope %s, got %v", orgID, owner.OrganizationID)
				}
				return &models.Category{Name: name}, nil
			},
		}
		handler := NewCategoryHandler(catSvc)
		r := setupCategoryRouter(handler, injectOrgID(orgID))

		rec := doRequest(r, "POST", "/categories", `{"name":"Supplies","type":"expense"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 400 on invalid type", func(t *testing.T) {
		handler := NewCategoryHandler(&mockCategoryService{})
		r := setupCategoryRouter(handler)

		rec := doRequest(r, "POST", "/categories", `{"name":"Food","type":"sideways"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 409 on duplicate name", func(t *testing.T) {
		catSvc := &mockCategoryService{
			createCategoryFn: func(_ services.OwnerContext, _ string, _ models.CategoryType, _, _ string) (*models.Category, error) {
				return nil, apperrors.ErrCategoryExists
			},
		}
		handler := NewCategoryHandler(catSvc)
		r := setupCategoryRouter(handler)

		rec := doRequest(r, "POST", "/categories", `{"name":"Food","type":"expense"}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CATEGORY_EXISTS")
	})
}

func TestCategoryHandler_GetCategory(t *testing.T) {
	t.Run("returns 400 on malformed id", func(t *testing.T) {
		handler := NewCategoryHandler(&mockCategoryService{})
		r := setupCategoryRouter(handler)

		rec := doRequest(r, "GET", "/categories/not-a-uuid", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		catSvc := &mockCategoryService{
			getCategoryByIDFn: func(_ services.OwnerContext, _ string) (*models.Category, error) {
				return nil, apperrors.ErrCategoryNotFound
			},
		}
		handler := NewCategoryHandler(catSvc)
		r := setupCategoryRouter(handler)

		rec := doRequest(r, "GET", "/categories/"+testUserID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
