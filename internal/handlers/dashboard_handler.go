package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fluxo/internal/errors"
	"fluxo/internal/services"
)

// DashboardHandler handles dashboard aggregation requests
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetSummary returns the monthly dashboard summary
// @Summary     Monthly summary
// @Description Totals for one calendar month: income, expenses, net balance, and pending/overdue counters
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Param       X-Organization-ID header string false "Organization scope"
// @Param       year query int false "Year (defaults to current)"
// @Param       month query int false "Month 1-12 (defaults to current)"
// @Success     200 {object} report.Summary "Monthly summary"
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	owner, err := getOwner(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	year, month, err := parsePeriod(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.dashboardService.MonthlySummary(owner, year, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetMonthlyFlow returns twelve monthly income/expense buckets for a year
// @Summary     Monthly flow
// @Description Income, expenses, net, and cumulative net per month for a year
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Param       X-Organization-ID header string false "Organization scope"
// @Param       year query int false "Year (defaults to current)"
// @Success     200 {array} report.MonthBucket "Twelve monthly buckets"
// @Failure     400 {object} ErrorResponse "Invalid year"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /dashboard/monthly-flow [get]
func (h *DashboardHandler) GetMonthlyFlow(c *gin.Context) {
	owner, err := getOwner(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	year, err := parseYear(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	buckets, err := h.dashboardService.MonthlyFlow(owner, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"months": buckets})
}

// GetExpenseBreakdown returns expense totals grouped by category
// @Summary     Expense breakdown
// @Description Expense totals per category, largest first
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Param       X-Organization-ID header string false "Organization scope"
// @Success     200 {array} report.CategoryTotal "Per-category expense totals"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /dashboard/expense-breakdown [get]
func (h *DashboardHandler) GetExpenseBreakdown(c *gin.Context) {
	owner, err := getOwner(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	totals, err := h.dashboardService.ExpenseBreakdown(owner)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": totals})
}

// GetPayableStatus returns per-month paid/pending/overdue totals for one payable description
// @Summary     Payable status by month
// @Description Paid, pending, and overdue totals per month for payables matching a description
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Param       X-Organization-ID header string false "Organization scope"
// @Param       description query string true "Payable description to match"
// @Param       year query int false "Year (defaults to current)"
// @Success     200 {array} report.StatusBucket "Twelve monthly status buckets"
// @Failure     400 {object} ErrorResponse "Missing description"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /dashboard/payable-status [get]
func (h *DashboardHandler) GetPayableStatus(c *gin.Context) {
	owner, err := getOwner(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	description := c.Query("description")
	if description == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required"))
		return
	}

	year, err := parseYear(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	buckets, err := h.dashboardService.PayableStatus(owner, description, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"months": buckets})
}

func parseYear(c *gin.Context) (int, error) {
	raw := c.Query("year")
	if raw == "" {
		return 0, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < 1970 || year > 9999 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "year must be a four digit number")
	}
	return year, nil
}

func parsePeriod(c *gin.Context) (int, time.Month, error) {
	year, err := parseYear(c)
	if err != nil {
		return 0, 0, err
	}

	raw := c.Query("month")
	if raw == "" {
		return year, 0, nil
	}
	m, err := strconv.Atoi(raw)
	if err != nil || m < 1 || m > 12 {
		return 0, 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}
	return year, time.Month(m), nil
}
