package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fluxo/internal/handlers"
	"fluxo/internal/logger"
	"fluxo/internal/middleware"
	"fluxo/internal/models"
	"fluxo/internal/services"
	"fluxo/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Organization{},
		&models.UserRole{},
		&models.Member{},
		&models.Category{},
		&models.Transaction{},
		&models.AccountPayable{},
		&models.AccountReceivable{},
		&models.Account{},
		&models.FinancialGoal{},
		&models.Notification{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	userService := services.NewUserService(db)
	organizationService := services.NewOrganizationService(db)
	categoryService := services.NewCategoryService(db)
	transactionService := services.NewTransactionService(db, categoryService)
	payableService := services.NewPayableService(db, categoryService)
	receivableService := services.NewReceivableService(db)
	accountService := services.NewAccountService(db)
	goalService := services.NewGoalService(db)
	memberService := services.NewMemberService(db)
	notificationService := services.NewNotificationService(db)
	dashboardService := services.NewDashboardService(db, transactionService, payableService, receivableService, categoryService)
	exportService := services.NewExportService(userService, transactionService, payableService, receivableService, categoryService)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	payableHandler := handlers.NewPayableHandler(payableService)
	receivableHandler := handlers.NewReceivableHandler(receivableService)
	accountHandler := handlers.NewAccountHandler(accountService)
	goalHandler := handlers.NewGoalHandler(goalService)
	memberHandler := handlers.NewMemberHandler(memberService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	exportHandler := handlers.NewExportHandler(exportService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())
	protected.Use(middleware.OrgContext(db))

	protected.GET("/profile", authHandler.GetProfile)

	organizations := protected.Group("/organizations")
	organizations.POST("", organizationHandler.CreateOrganization)
	organizations.GET("", organizationHandler.GetOrganizations)
	organizations.GET("/:id", organizationHandler.GetOrganization)
	organizations.POST("/:id/roles", organizationHandler.AddUserRole)

	categories := protected.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetCategories)
	categories.GET("/:id", categoryHandler.GetCategory)

	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.POST("/recurring", transactionHandler.CreateRecurring)

	payables := protected.Group("/payables")
	payables.POST("", payableHandler.CreatePayable)
	payables.GET("", payableHandler.GetPayables)
	payables.PATCH("/:id/pay", payableHandler.MarkPaid)

	receivables := protected.Group("/receivables")
	receivables.POST("", receivableHandler.CreateReceivable)
	receivables.GET("", receivableHandler.GetReceivables)
	receivables.PATCH("/:id/receive", receivableHandler.MarkReceived)

	accounts := protected.Group("/accounts")
	accounts.POST("", accountHandler.CreateAccount)
	accounts.GET("", accountHandler.GetAccounts)
	accounts.GET("/:id", accountHandler.GetAccount)
	accounts.PUT("/:id", accountHandler.UpdateAccount)

	goals := protected.Group("/goals")
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("", goalHandler.GetGoals)
	goals.PATCH("/:id/progress", goalHandler.UpdateGoalProgress)

	members := protected.Group("/members")
	members.POST("", memberHandler.CreateMember)
	members.GET("", memberHandler.GetMembers)

	notifications := protected.Group("/notifications")
	notifications.GET("", notificationHandler.GetNotifications)
	notifications.PATCH("/:id/read", notificationHandler.MarkRead)

	dashboard := protected.Group("/dashboard")
	dashboard.GET("/summary", dashboardHandler.GetSummary)
	dashboard.GET("/monthly-flow", dashboardHandler.GetMonthlyFlow)
	dashboard.GET("/expense-breakdown", dashboardHandler.GetExpenseBreakdown)
	dashboard.GET("/payable-status", dashboardHandler.GetPayableStatus)

	export := protected.Group("/export")
	export.GET("/transactions.csv", exportHandler.ExportTransactionsCSV)
	export.GET("/payables.csv", exportHandler.ExportPayablesCSV)
	export.GET("/receivables.csv", exportHandler.ExportReceivablesCSV)
	export.GET("/categories.csv", exportHandler.ExportCategoriesCSV)
	export.GET("/snapshot.json", exportHandler.ExportSnapshot)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	return app.orgRequest(method, path, body, token, "")
}

// orgRequest is request with an optional X-Organization-ID header.
func (app *testApp) orgRequest(method, path, body, token, orgID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if orgID != "" {
		req.Header.Set("X-Organization-ID", orgID)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerUser registers a new user and returns the access token, refresh token, and user ID.
func (app *testApp) registerUser(t *testing.T, email, password string) (accessToken, refreshToken, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q,"full_name":"Test User"}`, email, password)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["access_token"].(string), result["refresh_token"].(string), user["id"].(string)
}

// loginUser logs in and returns the access and refresh tokens.
func (app *testApp) loginUser(t *testing.T, email, password string) (accessToken, refreshToken string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/api/v1/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["access_token"].(string), result["refresh_token"].(string)
}

// createCategory creates a category in the given scope and returns its ID.
func (app *testApp) createCategory(t *testing.T, token, orgID, name, categoryType string) string {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"type":%q}`, name, categoryType)
	rec := app.orgRequest("POST", "/api/v1/categories", body, token, orgID)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create category failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["category"].(map[string]interface{})["id"].(string)
}
