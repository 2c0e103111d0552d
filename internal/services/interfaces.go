package services

import (
	"time"

	"fluxo/internal/export"
	"fluxo/internal/models"
	"fluxo/internal/pagination"
	"fluxo/internal/report"
)

// OwnerContext identifies whose data an operation touches. OrganizationID
// nil means personal scope: queries match rows with no organization, never
// rows from any organization. Passing it explicitly replaces ambient
// session state.
type OwnerContext struct {
	UserID         string
	OrganizationID *string
}

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, fullName, companyName string, profile models.ProfileContext) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
}

// OrganizationServicer defines the contract for organization management.
type OrganizationServicer interface {
	CreateOrganization(userID, name string, context models.ProfileContext, taxID, email, phone, address string) (*models.Organization, error)
	GetUserOrganizations(userID string) ([]models.Organization, error)
	GetOrganizationByID(userID, orgID string) (*models.Organization, error)
	AddUserRole(adminID, orgID, userID string, role models.Role) (*models.UserRole, error)
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(owner OwnerContext, name string, categoryType models.CategoryType, icon, color string) (*models.Category, error)
	GetCategories(owner OwnerContext) ([]models.Category, error)
	GetCategoryByID(owner OwnerContext, categoryID string) (*models.Category, error)
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate   *time.Time
	ToDate     *time.Time
	Type       *models.TransactionType
	CategoryID *string
}

// RecurringRequest describes a monthly series of transactions to create.
type RecurringRequest struct {
	Description string
	Amount      int64
	Type        models.TransactionType
	CategoryID  string
	DayOfMonth  int
	Months      int
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(owner OwnerContext, categoryID, description string, amount int64, transactionType models.TransactionType, date time.Time) (*models.Transaction, error)
	GetTransactions(owner OwnerContext, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetAllTransactions(owner OwnerContext) ([]models.Transaction, error)
	GetTransactionByID(owner OwnerContext, transactionID string) (*models.Transaction, error)
	CreateRecurringSeries(owner OwnerContext, req RecurringRequest) ([]models.Transaction, error)
}

// PayableServicer defines the contract for accounts payable.
type PayableServicer interface {
	CreatePayable(owner OwnerContext, categoryID, description string, amount int64, dueDate time.Time, isRecurring bool) (*models.AccountPayable, error)
	GetPayables(owner OwnerContext) ([]models.AccountPayable, error)
	MarkPaid(owner OwnerContext, payableID string) (*models.AccountPayable, error)
}

// ReceivableServicer defines the contract for accounts receivable.
type ReceivableServicer interface {
	CreateReceivable(owner OwnerContext, clientName, description string, amount int64, dueDate time.Time) (*models.AccountReceivable, error)
	GetReceivables(owner OwnerContext) ([]models.AccountReceivable, error)
	MarkReceived(owner OwnerContext, receivableID string) (*models.AccountReceivable, error)
}

// AccountServicer defines the contract for account-related business logic.
type AccountServicer interface {
	CreateAccount(owner OwnerContext, name string, accountType models.AccountType, initialBalance int64) (*models.Account, error)
	GetAccounts(owner OwnerContext) ([]models.Account, error)
	GetAccountByID(owner OwnerContext, accountID string) (*models.Account, error)
	UpdateAccount(owner OwnerContext, accountID, name string, isActive *bool) (*models.Account, error)
}

// GoalServicer defines the contract for financial goals.
type GoalServicer interface {
	CreateGoal(owner OwnerContext, title, description string, targetAmount int64, targetDate *time.Time, categoryID *string) (*models.FinancialGoal, error)
	GetGoals(owner OwnerContext) ([]models.FinancialGoal, error)
	UpdateGoalProgress(owner OwnerContext, goalID string, currentAmount int64) (*models.FinancialGoal, error)
}

// MemberServicer defines the contract for organization members.
type MemberServicer interface {
	CreateMember(orgID, name, document, email, phone, address string, birthDate *time.Time) (*models.Member, error)
	GetMembers(orgID string) ([]models.Member, error)
}

// NotificationServicer defines the contract for in-app notifications.
// Notify is best-effort: failures are logged and never propagate.
type NotificationServicer interface {
	Notify(userID, title, message, notificationType string)
	GetUserNotifications(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Notification], error)
	MarkRead(userID, notificationID string) error
}

// DashboardServicer computes owner-scoped aggregates for the dashboard.
type DashboardServicer interface {
	MonthlySummary(owner OwnerContext, year int, month time.Month) (*report.Summary, error)
	MonthlyFlow(owner OwnerContext, year int) ([]report.MonthBucket, error)
	ExpenseBreakdown(owner OwnerContext) ([]report.CategoryTotal, error)
	PayableStatus(owner OwnerContext, description string, year int) ([]report.StatusBucket, error)
}

// ExportServicer produces CSV and JSON snapshots of a user's data.
type ExportServicer interface {
	TransactionsCSV(owner OwnerContext) ([]byte, error)
	PayablesCSV(owner OwnerContext) ([]byte, error)
	ReceivablesCSV(owner OwnerContext) ([]byte, error)
	CategoriesCSV(owner OwnerContext) ([]byte, error)
	Snapshot(owner OwnerContext, now time.Time) (*export.Snapshot, error)
}
