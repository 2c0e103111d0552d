package services

import (
	"time"

	"gorm.io/gorm"

	"fluxo/internal/report"
)

// dashboardService loads owner-scoped collections and delegates all
// computation to the report package.
type dashboardService struct {
	db                 *gorm.DB
	transactionService TransactionServicer
	payableService     PayableServicer
	receivableService  ReceivableServicer
	categoryService    CategoryServicer
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(
	db *gorm.DB,
	transactionService TransactionServicer,
	payableService PayableServicer,
	receivableService ReceivableServicer,
	categoryService CategoryServicer,
) DashboardServicer {
	return &dashboardService{
		db:                 db,
		transactionService: transactionService,
		payableService:     payableService,
		receivableService:  receivableService,
		categoryService:    categoryService,
	}
}

// MonthlySummary returns the headline figures for the given calendar
// month. Zero year/month selects the current month by local wall clock.
func (s *dashboardService) MonthlySummary(owner OwnerContext, year int, month time.Month) (*report.Summary, error) {
	now := time.Now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = now.Month()
	}

	transactions, err := s.transactionService.GetAllTransactions(owner)
	if err != nil {
		return nil, err
	}
	payables, err := s.payableService.GetPayables(owner)
	if err != nil {
		return nil, err
	}
	receivables, err := s.receivableService.GetReceivables(owner)
	if err != nil {
		return nil, err
	}

	summary := report.MonthlySummary(transactions, payables, receivables, year, month, now)
	return &summary, nil
}

// MonthlyFlow returns the twelve monthly buckets for the given year.
// Zero year selects the current year.
func (s *dashboardService) MonthlyFlow(owner OwnerContext, year int) ([]report.MonthBucket, error) {
	if year == 0 {
		year = time.Now().Year()
	}

	transactions, err := s.transactionService.GetAllTransactions(owner)
	if err != nil {
		return nil, err
	}

	buckets := report.MonthlySeries(transactions, year)
	return buckets[:], nil
}

// ExpenseBreakdown returns per-category expense totals.
func (s *dashboardService) ExpenseBreakdown(owner OwnerContext) ([]report.CategoryTotal, error) {
	transactions, err := s.transactionService.GetAllTransactions(owner)
	if err != nil {
		return nil, err
	}
	categories, err := s.categoryService.GetCategories(owner)
	if err != nil {
		return nil, err
	}

	return report.ExpenseBreakdown(transactions, categories), nil
}

// PayableStatus returns the monthly paid/pending/overdue totals for
// payables matching the given description. Zero year selects the
// current year.
func (s *dashboardService) PayableStatus(owner OwnerContext, description string, year int) ([]report.StatusBucket, error) {
	now := time.Now()
	if year == 0 {
		year = now.Year()
	}

	payables, err := s.payableService.GetPayables(owner)
	if err != nil {
		return nil, err
	}

	buckets := report.PayableMonthlyStatus(payables, description, year, now)
	return buckets[:], nil
}
