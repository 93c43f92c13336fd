package repositories

import (
	"context"
	"time"

	"github.com/hraxis/hr_payroll_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// LoanReader defines read operations for loan accounts and their journal entries.
type LoanReader interface {
	// FindLoanByID retrieves a loan by its unique identifier.
	FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error)

	// FindLoanEntryByID retrieves a single journal entry.
	FindLoanEntryByID(ctx context.Context, entryID string) (*domain.LoanEntry, error)

	// ListLoanEntries retrieves entries for a loan, optionally bounded by an
	// inclusive date range, ordered by entry date then creation time.
	ListLoanEntries(ctx context.Context, loanID string, from, until *time.Time) ([]domain.LoanEntry, error)
}

// LoanWriter defines the transaction-scoped write operations for loan data.
// All methods taking a pgx.Tx must be called inside a transaction obtained from
// the repository's TransactionManager.
type LoanWriter interface {
	// FindLoanForUpdate loads a loan row and locks it for the duration of tx.
	FindLoanForUpdate(ctx context.Context, tx pgx.Tx, loanID string) (*domain.Loan, error)

	// FindLoanEntryForUpdate loads an entry row and locks it, so concurrent
	// edits of the same entry serialize.
	FindLoanEntryForUpdate(ctx context.Context, tx pgx.Tx, entryID string) (*domain.LoanEntry, error)

	// InsertLoanEntry persists a new journal entry.
	InsertLoanEntry(ctx context.Context, tx pgx.Tx, entry domain.LoanEntry) error

	// UpdateLoanEntry overwrites the mutable fields of an existing entry.
	UpdateLoanEntry(ctx context.Context, tx pgx.Tx, entry domain.LoanEntry) error

	// DeleteLoanEntry removes an entry row.
	DeleteLoanEntry(ctx context.Context, tx pgx.Tx, entryID string) error

	// UpdateLoanAggregates overwrites the derived columns of a locked loan row.
	UpdateLoanAggregates(ctx context.Context, tx pgx.Tx, loanID string, loanAmount, balance decimal.Decimal, status domain.LoanStatus, userID string, now time.Time) error
}

// LoanRepositoryFacade combines all loan repository capabilities.
type LoanRepositoryFacade interface {
	LoanReader
	LoanWriter
	TransactionManager
}
