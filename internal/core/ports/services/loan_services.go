package services

import (
	"context"

	"github.com/hraxis/hr_payroll_app/internal/core/domain"
	"github.com/hraxis/hr_payroll_app/internal/dto"
)

// LoanSvcFacade exposes the loan ledger operations. Every mutation keeps the
// loan's derived balance consistent with its journal entries before returning.
type LoanSvcFacade interface {
	// GetLoan retrieves a loan with its current derived balance.
	GetLoan(ctx context.Context, loanID string) (*domain.Loan, error)

	// ListLoanEntries retrieves the journal entries of a loan.
	ListLoanEntries(ctx context.Context, loanID string, params dto.ListLoanEntriesParams) ([]domain.LoanEntry, error)

	// AppendLoanEntry records a new journal entry and reconciles the loan.
	AppendLoanEntry(ctx context.Context, loanID string, req dto.CreateLoanEntryRequest, userID string) (*domain.LoanEntry, error)

	// EditLoanEntry reverses the entry's prior effect and applies the new one.
	EditLoanEntry(ctx context.Context, entryID string, req dto.UpdateLoanEntryRequest, userID string) (*domain.LoanEntry, error)

	// DeleteLoanEntry removes an entry, reversing its effect on the loan.
	DeleteLoanEntry(ctx context.Context, entryID string, userID string) error
}
