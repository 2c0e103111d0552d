package main

import (
	"fmt"
	"net/http"
	"os"

	"fluxo/internal/config"
	"fluxo/internal/database"
	"fluxo/internal/handlers"
	"fluxo/internal/logger"
	"fluxo/internal/middleware"
	"fluxo/internal/services"
	"fluxo/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "fluxo/internal/docs" // Import swagger docs
)

// @title           Fluxo API
// @version         1.0
// @description     Fluxo is a finance tracking backend for individuals and small organizations: transactions, bills to pay and receive, categories, goals, and monthly dashboards.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
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

	// Initialize handlers
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

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Organization-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes; OrgContext resolves the optional X-Organization-ID
	// header into the request scope after authentication.
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())
	protected.Use(middleware.OrgContext(db))

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Organization routes
	organizations := protected.Group("/organizations")
	organizations.POST("", organizationHandler.CreateOrganization)
	organizations.GET("", organizationHandler.GetOrganizations)
	organizations.GET("/:id", organizationHandler.GetOrganization)
	organizations.POST("/:id/roles", organizationHandler.AddUserRole)

	// Category routes
	categories := protected.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetCategories)
	categories.GET("/:id", categoryHandler.GetCategory)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.POST("/recurring", transactionHandler.CreateRecurring)
	transactions.GET("/:id", transactionHandler.GetTransaction)

	// Payable routes
	payables := protected.Group("/payables")
	payables.POST("", payableHandler.CreatePayable)
	payables.GET("", payableHandler.GetPayables)
	payables.PATCH("/:id/pay", payableHandler.MarkPaid)

	// Receivable routes
	receivables := protected.Group("/receivables")
	receivables.POST("", receivableHandler.CreateReceivable)
	receivables.GET("", receivableHandler.GetReceivables)
	receivables.PATCH("/:id/receive", receivableHandler.MarkReceived)

	// Account routes
	accounts := protected.Group("/accounts")
	accounts.POST("", accountHandler.CreateAccount)
	accounts.GET("", accountHandler.GetAccounts)
	accounts.GET("/:id", accountHandler.GetAccount)
	accounts.PATCH("/:id", accountHandler.UpdateAccount)

	// Goal routes
	goals := protected.Group("/goals")
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("", goalHandler.GetGoals)
	goals.PATCH("/:id/progress", goalHandler.UpdateGoalProgress)

	// Member routes
	members := protected.Group("/members")
	members.POST("", memberHandler.CreateMember)
	members.GET("", memberHandler.GetMembers)

	// Notification routes
	notifications := protected.Group("/notifications")
	notifications.GET("", notificationHandler.GetNotifications)
	notifications.PATCH("/:id/read", notificationHandler.MarkRead)

	// Dashboard routes
	dashboard := protected.Group("/dashboard")
	dashboard.GET("/summary", dashboardHandler.GetSummary)
	dashboard.GET("/monthly-flow", dashboardHandler.GetMonthlyFlow)
	dashboard.GET("/expense-breakdown", dashboardHandler.GetExpenseBreakdown)
	dashboard.GET("/payable-status", dashboardHandler.GetPayableStatus)

	// Export routes
	export := protected.Group("/export")
	export.GET("/transactions.csv", exportHandler.ExportTransactionsCSV)
	export.GET("/payables.csv", exportHandler.ExportPayablesCSV)
	export.GET("/receivables.csv", exportHandler.ExportReceivablesCSV)
	export.GET("/categories.csv", exportHandler.ExportCategoriesCSV)
	export.GET("/snapshot.json", exportHandler.ExportSnapshot)

	log.Infof("Starting Fluxo backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
