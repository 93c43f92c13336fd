package repositories

import (
	"context"
	"time"

	"github.com/hraxis/hr_payroll_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// CommissionReader defines read operations for commission headers and daily entries.
type CommissionReader interface {
	// FindCommissionByID retrieves a commission header by its unique identifier.
	FindCommissionByID(ctx context.Context, commissionID string) (*domain.Commission, error)

	// FindCommissionEntryByID retrieves a single daily entry.
	FindCommissionEntryByID(ctx context.Context, entryID string) (*domain.CommissionEntry, error)

	// ListCommissionEntries retrieves the daily entries for a commission in date order.
	ListCommissionEntries(ctx context.Context, commissionID string) ([]domain.CommissionEntry, error)
}

// CommissionWriter defines the transaction-scoped write operations for
// commission data. The daily-entry table is the sole source of truth for the
// header total; SumEntries reads it inside the same transaction that mutated it.
type CommissionWriter interface {
	// FindCommissionForUpdate loads a commission header and locks it for the duration of tx.
	FindCommissionForUpdate(ctx context.Context, tx pgx.Tx, commissionID string) (*domain.Commission, error)

	// InsertCommissionEntry persists one daily entry.
	InsertCommissionEntry(ctx context.Context, tx pgx.Tx, entry domain.CommissionEntry) error

	// InsertCommissionEntries batch-inserts generated daily entries.
	InsertCommissionEntries(ctx context.Context, tx pgx.Tx, entries []domain.CommissionEntry) error

	// UpdateCommissionEntry overwrites the mutable fields of an existing entry.
	UpdateCommissionEntry(ctx context.Context, tx pgx.Tx, entry domain.CommissionEntry) error

	// DeleteCommissionEntry removes a single entry row.
	DeleteCommissionEntry(ctx context.Context, tx pgx.Tx, entryID string) error

	// DeleteCommissionEntriesByCommission removes every entry of a commission.
	DeleteCommissionEntriesByCommission(ctx context.Context, tx pgx.Tx, commissionID string) error

	// SumCommissionEntries returns SUM(amount) over the commission's entries as
	// currently visible to tx.
	SumCommissionEntries(ctx context.Context, tx pgx.Tx, commissionID string) (decimal.Decimal, error)

	// UpdateCommissionAggregates overwrites the derived total and, when changed,
	// the date range of a locked commission header.
	UpdateCommissionAggregates(ctx context.Context, tx pgx.Tx, commissionID string, total decimal.Decimal, dateFrom, dateUntil time.Time, userID string, now time.Time) error
}

// CommissionRepositoryFacade combines all commission repository capabilities.
type CommissionRepositoryFacade interface {
	CommissionReader
	CommissionWriter
	TransactionManager
}
