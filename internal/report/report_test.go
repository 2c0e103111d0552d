package report_test

import (
	"testing"
	"time"

	"fluxo/internal/models"
	"fluxo/internal/report"
)

func tx(txType models.TransactionType, amount int64, date time.Time) models.Transaction {
	return models.Transaction{Type: txType, Amount: amount, Date: date}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestMonthlySummary(t *testing.T) {
	now := date(2024, time.January, 15)

	transactions := []models.Transaction{
		tx(models.TransactionTypeIncome, 500000, date(2024, time.January, 5)),
		tx(models.TransactionTypeIncome, 120050, date(2024, time.January, 20)),
		tx(models.TransactionTypeExpense, 230025, date(2024, time.January, 10)),
		// Different month and year, must be excluded.
		tx(models.TransactionTypeIncome, 999999, date(2024, time.February, 1)),
		tx(models.TransactionTypeExpense, 888888, date(2023, time.January, 10)),
	}

	payables := []models.AccountPayable{
		{Status: models.PayableStatusPending, DueDate: date(2024, time.January, 10), Amount: 100},
		{Status: models.PayableStatusPending, DueDate: date(2024, time.January, 20), Amount: 200},
		{Status: models.PayableStatusPaid, DueDate: date(2024, time.January, 1), Amount: 300},
	}

	receivables := []models.AccountReceivable{
		{Status: models.ReceivableStatusPending, Amount: 40000},
		{Status: models.ReceivableStatusPending, Amount: 10000},
		{Status: models.ReceivableStatusReceived, Amount: 77777},
	}

	s := report.MonthlySummary(transactions, payables, receivables, 2024, time.January, now)

	if s.TotalIncome != 620050 {
		t.Errorf("expected total income 620050, got %d", s.TotalIncome)
	}
	if s.TotalExpenses != 230025 {
		t.Errorf("expected total expenses 230025, got %d", s.TotalExpenses)
	}
	if s.NetBalance != s.TotalIncome-s.TotalExpenses {
		t.Errorf("net balance %d does not equal income minus expenses", s.NetBalance)
	}
	if s.PendingPayments != 2 {
		t.Errorf("expected 2 pending payments, got %d", s.PendingPayments)
	}
	// Only the payable due Jan 10 is past now (Jan 15); paid entries never count.
	if s.OverduePayments != 1 {
		t.Errorf("expected 1 overdue payment, got %d", s.OverduePayments)
	}
	if s.PendingReceivables != 50000 {
		t.Errorf("expected pending receivables 50000, got %d", s.PendingReceivables)
	}
}

func TestMonthlySummaryEmpty(t *testing.T) {
	s := report.MonthlySummary(nil, nil, nil, 2024, time.June, time.Now())
	if s != (report.Summary{}) {
		t.Errorf("expected all-zero summary for empty inputs, got %+v", s)
	}
}

func TestMonthlySeries(t *testing.T) {
	transactions := []models.Transaction{
		tx(models.TransactionTypeIncome, 1000, date(2024, time.January, 1)),
		tx(models.TransactionTypeExpense, 400, date(2024, time.January, 15)),
		tx(models.TransactionTypeExpense, 900, date(2024, time.March, 3)),
		tx(models.TransactionTypeIncome, 500, date(2024, time.December, 31)),
		// Wrong year, excluded.
		tx(models.TransactionTypeIncome, 7777, date(2023, time.June, 1)),
	}

	buckets := report.MonthlySeries(transactions, 2024)

	if buckets[0].Income != 1000 || buckets[0].Expenses != 400 || buckets[0].Net != 600 {
		t.Errorf("unexpected January bucket: %+v", buckets[0])
	}
	if buckets[1].Net != 0 || buckets[1].CumulativeNet != 600 {
		t.Errorf("February should carry January's cumulative net: %+v", buckets[1])
	}
	if buckets[2].Net != -900 || buckets[2].CumulativeNet != -300 {
		t.Errorf("unexpected March bucket: %+v", buckets[2])
	}

	var total int64
	for _, b := range buckets {
		total += b.Net
	}
	if buckets[11].CumulativeNet != total {
		t.Errorf("December cumulative net %d should equal sum of monthly nets %d", buckets[11].CumulativeNet, total)
	}

	for i, b := range buckets {
		if b.Month != time.Month(i+1) {
			t.Errorf("bucket %d has month %v", i, b.Month)
		}
	}
}

func TestMonthlySeriesEmpty(t *testing.T) {
	buckets := report.MonthlySeries(nil, 2024)
	for i, b := range buckets {
		if b.Income != 0 || b.Expenses != 0 || b.Net != 0 || b.CumulativeNet != 0 {
			t.Errorf("bucket %d should be zero, got %+v", i, b)
		}
	}
}

func TestExpenseBreakdown(t *testing.T) {
	food := models.Category{Base: models.Base{ID: "cat-food"}, Name: "Food", Type: models.CategoryTypeExpense}
	rent := models.Category{Base: models.Base{ID: "cat-rent"}, Name: "Rent", Type: models.CategoryTypeExpense}
	empty := models.Category{Base: models.Base{ID: "cat-empty"}, Name: "Empty", Type: models.CategoryTypeExpense}
	salary := models.Category{Base: models.Base{ID: "cat-salary"}, Name: "Salary", Type: models.CategoryTypeIncome}

	transactions := []models.Transaction{
		{CategoryID: food.ID, Type: models.TransactionTypeExpense, Amount: 3000},
		{CategoryID: food.ID, Type: models.TransactionTypeExpense, Amount: 2000},
		{CategoryID: rent.ID, Type: models.TransactionTypeExpense, Amount: 90000},
		// Income never shows up in the breakdown, even under an income category.
		{CategoryID: salary.ID, Type: models.TransactionTypeIncome, Amount: 500000},
	}

	result := report.ExpenseBreakdown(transactions, []models.Category{food, rent, empty, salary})

	if len(result) != 2 {
		t.Fatalf("expected 2 categories, got %d: %+v", len(result), result)
	}
	if result[0].CategoryName != "Rent" || result[0].Total != 90000 {
		t.Errorf("expected Rent 90000 first, got %+v", result[0])
	}
	if result[1].CategoryName != "Food" || result[1].Total != 5000 {
		t.Errorf("expected Food 5000 second, got %+v", result[1])
	}
}

func TestExpenseBreakdownTieSortsByName(t *testing.T) {
	a := models.Category{Base: models.Base{ID: "cat-a"}, Name: "Alpha", Type: models.CategoryTypeExpense}
	b := models.Category{Base: models.Base{ID: "cat-b"}, Name: "Beta", Type: models.CategoryTypeExpense}

	transactions := []models.Transaction{
		{CategoryID: b.ID, Type: models.TransactionTypeExpense, Amount: 100},
		{CategoryID: a.ID, Type: models.TransactionTypeExpense, Amount: 100},
	}

	result := report.ExpenseBreakdown(transactions, []models.Category{b, a})
	if len(result) != 2 || result[0].CategoryName != "Alpha" || result[1].CategoryName != "Beta" {
		t.Errorf("equal totals should sort by name: %+v", result)
	}
}

func TestPayableMonthlyStatus(t *testing.T) {
	now := date(2024, time.June, 15)

	payables := []models.AccountPayable{
		{Description: "Rent", Status: models.PayableStatusPaid, Amount: 1000, DueDate: date(2024, time.January, 5)},
		{Description: "Rent", Status: models.PayableStatusPending, Amount: 1000, DueDate: date(2024, time.May, 5)},
		{Description: "Rent", Status: models.PayableStatusPending, Amount: 1000, DueDate: date(2024, time.August, 5)},
		// Different description and year, excluded.
		{Description: "Utilities", Status: models.PayableStatusPending, Amount: 555, DueDate: date(2024, time.May, 5)},
		{Description: "Rent", Status: models.PayableStatusPending, Amount: 777, DueDate: date(2023, time.May, 5)},
	}

	buckets := report.PayableMonthlyStatus(payables, "Rent", 2024, now)

	if buckets[0].Paid != 1000 || buckets[0].Pending != 0 {
		t.Errorf("unexpected January bucket: %+v", buckets[0])
	}
	// May's pending entry is past now, so it is also overdue.
	if buckets[4].Pending != 1000 || buckets[4].Overdue != 1000 {
		t.Errorf("unexpected May bucket: %+v", buckets[4])
	}
	// August's pending entry is still in the future.
	if buckets[7].Pending != 1000 || buckets[7].Overdue != 0 {
		t.Errorf("unexpected August bucket: %+v", buckets[7])
	}
}

func TestPayableMonthlyStatusUnknownDescription(t *testing.T) {
	payables := []models.AccountPayable{
		{Description: "Rent", Status: models.PayableStatusPending, Amount: 1000, DueDate: date(2024, time.May, 5)},
	}

	buckets := report.PayableMonthlyStatus(payables, "Nothing", 2024, time.Now())
	for i, b := range buckets {
		if b.Paid != 0 || b.Pending != 0 || b.Overdue != 0 {
			t.Errorf("bucket %d should be zero for unknown description, got %+v", i, b)
		}
	}
}
