package services

import (
	"bytes"
	"time"

	apperrors "fluxo/internal/errors"
	"fluxo/internal/export"
)

// exportService assembles CSV and JSON snapshot downloads.
type exportService struct {
	userService        UserServicer
	transactionService TransactionServicer
	payableService     PayableServicer
	receivableService  ReceivableServicer
	categoryService    CategoryServicer
}

// NewExportService creates a new ExportServicer.
func NewExportService(
	userService UserServicer,
	transactionService TransactionServicer,
	payableService PayableServicer,
	receivableService ReceivableServicer,
	categoryService CategoryServicer,
) ExportServicer {
	return &exportService{
		userService:        userService,
		transactionService: transactionService,
		payableService:     payableService,
		receivableService:  receivableService,
		categoryService:    categoryService,
	}
}

// TransactionsCSV renders the owner's transactions as CSV.
func (s *exportService) TransactionsCSV(owner OwnerContext) ([]byte, error) {
	transactions, err := s.transactionService.GetAllTransactions(owner)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := export.WriteTransactionsCSV(&buf, transactions); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return buf.Bytes(), nil
}

// PayablesCSV renders the owner's accounts payable as CSV.
func (s *exportService) PayablesCSV(owner OwnerContext) ([]byte, error) {
	payables, err := s.payableService.GetPayables(owner)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := export.WritePayablesCSV(&buf, payables); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return buf.Bytes(), nil
}

// ReceivablesCSV renders the owner's accounts receivable as CSV.
func (s *exportService) ReceivablesCSV(owner OwnerContext) ([]byte, error) {
	receivables, err := s.receivableService.GetReceivables(owner)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := export.WriteReceivablesCSV(&buf, receivables); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return buf.Bytes(), nil
}

// CategoriesCSV renders the owner's categories as CSV.
func (s *exportService) CategoriesCSV(owner OwnerContext) ([]byte, error) {
	categories, err := s.categoryService.GetCategories(owner)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := export.WriteCategoriesCSV(&buf, categories); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return buf.Bytes(), nil
}

// Snapshot assembles the full-state backup document for the owner.
func (s *exportService) Snapshot(owner OwnerContext, now time.Time) (*export.Snapshot, error) {
	user, err := s.userService.GetUserByID(owner.UserID)
	if err != nil {
		return nil, err
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
	categories, err := s.categoryService.GetCategories(owner)
	if err != nil {
		return nil, err
	}

	snapshot := export.BuildSnapshot(user, transactions, payables, receivables, categories, now)
	return &snapshot, nil
}
