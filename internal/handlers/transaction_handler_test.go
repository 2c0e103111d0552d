package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fluxo/internal/errors"
	"fluxo/internal/models"
	"fluxo/internal/pagination"
	"fluxo/internal/services"
)

// --- mock transaction service ---

type mockTransactionService struct {
	createTransactionFn     func(owner services.OwnerContext, categoryID, description string, amount int64, transactionType models.TransactionType, date time.Time) (*models.Transaction, error)
	getTransactionsFn       func(owner services.OwnerContext, page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	getAllTransactionsFn    func(owner services.OwnerContext) ([]models.Transaction, error)
	getTransactionByIDFn    func(owner services.OwnerContext, transactionID string) (*models.Transaction, error)
	createRecurringSeriesFn func(owner services.OwnerContext, req services.RecurringRequest) ([]models.Transaction, error)
}

func (m *mockTransactionService) CreateTransaction(owner services.OwnerContext, categoryID, description string, amount int64, transactionType models.TransactionType, date time.Time) (*models.Transaction, error) {
	if m.createTransactionFn != nil {
		return m.createTransactionFn(owner, categoryID, description, amount, transactionType, date)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) GetTransactions(owner services.OwnerContext, page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	if m.getTransactionsFn != nil {
		return m.getTransactionsFn(owner, page, filter)
	}
	resp := pagination.NewPageResponse([]models.Transaction{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockTransactionService) GetAllTransactions(owner services.OwnerContext) ([]models.Transaction, error) {
	if m.getAllTransactionsFn != nil {
		return m.getAllTransactionsFn(owner)
	}
	return []models.Transaction{}, nil
}

func (m *mockTransactionService) GetTransactionByID(owner services.OwnerContext, transactionID string) (*models.Transaction, error) {
	if m.getTransactionByIDFn != nil {
		return m.getTransactionByIDFn(owner, transactionID)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) CreateRecurringSeries(owner services.OwnerContext, req services.RecurringRequest) ([]models.Transaction, error) {
	if m.createRecurringSeriesFn != nil {
		return m.createRecurringSeriesFn(owner, req)
	}
	return []models.Transaction{}, nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

const testCategoryID = "0191e4a3-0000-7000-8000-0000000000c1"

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/transactions", handler.CreateTransaction)
	auth.GET("/transactions", handler.GetTransactions)
	auth.GET("/transactions/:id", handler.GetTransaction)
	auth.POST("/transactions/recurring", handler.CreateRecurring)
	return r
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		txSvc := &mockTransactionService{
			createTransactionFn: func(owner services.OwnerContext, categoryID, description string, amount int64, txType models.TransactionType, date time.Time) (*models.Transaction, error) {
				if amount != 2550 {
					t.Errorf("expected amount 2550, got %d", amount)
				}
				if date.Format("2006-01-02") != "2024-03-15" {
					t.Errorf("expected date 2024-03-15, got %s", date.Format("2006-01-02"))
				}
				return &models.Transaction{Description: description, Amount: amount, Type: txType}, nil
			},
		}
		handler := NewTransactionHandler(txSvc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"category_id":"`+testCategoryID+`","description":"Lunch","amount":2550,"type":"expense","date":"2024-03-15"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		tx := result["transaction"].(map[string]interface{})
		if tx["description"] != "Lunch" {
			t.Errorf("expected Lunch, got %v", tx["description"])
		}
	})

	t.Run("returns 400 on zero amount", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"category_id":"`+testCategoryID+`","description":"Lunch","amount":0,"type":"expense","date":"2024-03-15"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on malformed date", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"category_id":"`+testCategoryID+`","description":"Lunch","amount":100,"type":"expense","date":"15/03/2024"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when the category is not visible", func(t *testing.T) {
		txSvc := &mockTransactionService{
			createTransactionFn: func(_ services.OwnerContext, _, _ string, _ int64, _ models.TransactionType, _ time.Time) (*models.Transaction, error) {
				return nil, apperrors.ErrCategoryNotFound
			},
		}
		handler := NewTransactionHandler(txSvc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"category_id":"`+testCategoryID+`","description":"Lunch","amount":100,"type":"expense","date":"2024-03-15"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CATEGORY_NOT_FOUND")
	})
}

func TestTransactionHandler_GetTransactions(t *testing.T) {
	t.Run("forwards pagination and filters", func(t *testing.T) {
		txSvc := &mockTransactionService{
			getTransactionsFn: func(owner services.OwnerContext, page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
				if page.Page != 2 || page.PageSize != 5 {
					t.Errorf("expected page 2 size 5, got %d/%d", page.Page, page.PageSize)
				}
				if filter.Type == nil || *filter.Type != models.TransactionTypeExpense {
					t.Error("expected expense type filter")
				}
				if filter.FromDate == nil || filter.FromDate.Format("2006-01-02") != "2024-01-01" {
					t.Error("expected from filter 2024-01-01")
				}
				resp := pagination.NewPageResponse([]models.Transaction{{Description: "Rent"}}, page.Page, page.PageSize, 6)
				return &resp, nil
			},
		}
		handler := NewTransactionHandler(txSvc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions?page=2&page_size=5&type=expense&from=2024-01-01", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["total_items"].(float64) != 6 {
			t.Errorf("expected total_items 6, got %v", result["total_items"])
		}
		if result["total_pages"].(float64) != 2 {
			t.Errorf("expected total_pages 2, got %v", result["total_pages"])
		}
	})

	t.Run("returns 400 on an invalid type filter", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions?type=refund", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on a malformed filter date", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions?to=yesterday", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_CreateRecurring(t *testing.T) {
	t.Run("returns 201 with the full series", func(t *testing.T) {
		txSvc := &mockTransactionService{
			createRecurringSeriesFn: func(_ services.OwnerContext, req services.RecurringRequest) ([]models.Transaction, error) {
				if req.Months != 3 || req.DayOfMonth != 10 {
					t.Errorf("unexpected recurring request: %+v", req)
				}
				return []models.Transaction{
					{Description: "Gym (1/3)"},
					{Description: "Gym (2/3)"},
					{Description: "Gym (3/3)"},
				}, nil
			},
		}
		handler := NewTransactionHandler(txSvc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions/recurring",
			`{"description":"Gym","amount":9900,"type":"expense","category_id":"`+testCategoryID+`","day_of_month":10,"months":3}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		txs := result["transactions"].([]interface{})
		if len(txs) != 3 {
			t.Fatalf("expected 3 transactions, got %d", len(txs))
		}
	})

	t.Run("returns 500 with the partial prefix on failure", func(t *testing.T) {
		txSvc := &mockTransactionService{
			createRecurringSeriesFn: func(_ services.OwnerContext, _ services.RecurringRequest) ([]models.Transaction, error) {
				return []models.Transaction{{Description: "Gym (1/3)"}},
					apperrors.WithMessage(apperrors.ErrInternalServer, "recurring series stopped at entry 2 of 3")
			},
		}
		handler := NewTransactionHandler(txSvc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions/recurring",
			`{"description":"Gym","amount":9900,"type":"expense","category_id":"`+testCategoryID+`","day_of_month":10,"months":3}`)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "INTERNAL_ERROR")
		txs := result["transactions"].([]interface{})
		if len(txs) != 1 {
			t.Fatalf("expected 1 created transaction in the response, got %d", len(txs))
		}
	})

	t.Run("returns 400 when day_of_month exceeds 28", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions/recurring",
			`{"description":"Gym","amount":9900,"type":"expense","category_id":"`+testCategoryID+`","day_of_month":31,"months":3}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
