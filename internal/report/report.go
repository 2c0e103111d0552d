// Package report computes dashboard aggregates from in-memory entity
// collections. All functions are pure: they never touch the database
// or the clock, and empty inputs yield all-zero results.
package report

import (
	"sort"
	"time"

	"fluxo/internal/models"
)

// Summary holds the headline figures for a single calendar month.
type Summary struct {
	TotalIncome        int64 `json:"total_income"`
	TotalExpenses      int64 `json:"total_expenses"`
	NetBalance         int64 `json:"net_balance"`
	PendingPayments    int   `json:"pending_payments"`
	OverduePayments    int   `json:"overdue_payments"`
	PendingReceivables int64 `json:"pending_receivables"`
}

// MonthlySummary aggregates transactions for the given calendar month and
// year together with payable/receivable status counts. Payable counts are
// not month-filtered: pending covers all open payables, and overdue is
// derived from due date vs now, never from a stored status.
func MonthlySummary(
	transactions []models.Transaction,
	payables []models.AccountPayable,
	receivables []models.AccountReceivable,
	year int,
	month time.Month,
	now time.Time,
) Summary {
	var s Summary

	for _, t := range transactions {
		if t.Date.Year() != year || t.Date.Month() != month {
			continue
		}
		switch t.Type {
		case models.TransactionTypeIncome:
			s.TotalIncome += t.Amount
		case models.TransactionTypeExpense:
			s.TotalExpenses += t.Amount
		}
	}
	s.NetBalance = s.TotalIncome - s.TotalExpenses

	for _, p := range payables {
		if p.Status != models.PayableStatusPending {
			continue
		}
		s.PendingPayments++
		if p.DueDate.Before(now) {
			s.OverduePayments++
		}
	}

	for _, r := range receivables {
		if r.Status == models.ReceivableStatusPending {
			s.PendingReceivables += r.Amount
		}
	}

	return s
}

// MonthBucket holds transaction totals for one calendar month.
type MonthBucket struct {
	Month         time.Month `json:"month"`
	Income        int64      `json:"income"`
	Expenses      int64      `json:"expenses"`
	Net           int64      `json:"net"`
	CumulativeNet int64      `json:"cumulative_net"`
}

// MonthlySeries buckets transactions of the given year into the twelve
// calendar months, January through December. Cumulative net is a prefix
// sum over the monthly nets, computed after all buckets are totalled.
func MonthlySeries(transactions []models.Transaction, year int) [12]MonthBucket {
	var buckets [12]MonthBucket
	for i := range buckets {
		buckets[i].Month = time.Month(i + 1)
	}

	for _, t := range transactions {
		if t.Date.Year() != year {
			continue
		}
		b := &buckets[int(t.Date.Month())-1]
		switch t.Type {
		case models.TransactionTypeIncome:
			b.Income += t.Amount
		case models.TransactionTypeExpense:
			b.Expenses += t.Amount
		}
	}

	var running int64
	for i := range buckets {
		buckets[i].Net = buckets[i].Income - buckets[i].Expenses
		running += buckets[i].Net
		buckets[i].CumulativeNet = running
	}

	return buckets
}

// CategoryTotal is an expense total for one category.
type CategoryTotal struct {
	CategoryName string `json:"category_name"`
	Total        int64  `json:"total"`
}

// ExpenseBreakdown totals expense transactions per expense category,
// dropping categories with a zero total. The result is sorted by total
// descending, then name, so output does not depend on input order.
func ExpenseBreakdown(transactions []models.Transaction, categories []models.Category) []CategoryTotal {
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		if c.Type == models.CategoryTypeExpense {
			names[c.ID] = c.Name
		}
	}

	totals := make(map[string]int64)
	for _, t := range transactions {
		if t.Type != models.TransactionTypeExpense {
			continue
		}
		if _, ok := names[t.CategoryID]; !ok {
			continue
		}
		totals[t.CategoryID] += t.Amount
	}

	result := make([]CategoryTotal, 0, len(totals))
	for id, total := range totals {
		if total == 0 {
			continue
		}
		result = append(result, CategoryTotal{CategoryName: names[id], Total: total})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Total != result[j].Total {
			return result[i].Total > result[j].Total
		}
		return result[i].CategoryName < result[j].CategoryName
	})

	return result
}

// StatusBucket holds payable amounts by settlement state for one month.
type StatusBucket struct {
	Month   time.Month `json:"month"`
	Paid    int64      `json:"paid"`
	Pending int64      `json:"pending"`
	Overdue int64      `json:"overdue"`
}

// PayableMonthlyStatus buckets the payables whose description matches
// exactly and whose due date falls in the given year into twelve monthly
// paid/pending/overdue totals. Overdue is always recomputed from due date
// vs now for amounts still pending; a description with no matches yields
// twelve zero buckets.
func PayableMonthlyStatus(payables []models.AccountPayable, description string, year int, now time.Time) [12]StatusBucket {
	var buckets [12]StatusBucket
	for i := range buckets {
		buckets[i].Month = time.Month(i + 1)
	}

	for _, p := range payables {
		if p.Description != description || p.DueDate.Year() != year {
			continue
		}
		b := &buckets[int(p.DueDate.Month())-1]
		switch p.Status {
		case models.PayableStatusPaid:
			b.Paid += p.Amount
		case models.PayableStatusPending:
			b.Pending += p.Amount
			if p.DueDate.Before(now) {
				b.Overdue += p.Amount
			}
		}
	}

	return buckets
}
