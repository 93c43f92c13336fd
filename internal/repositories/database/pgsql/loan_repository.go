package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/hraxis/hr_payroll_app/internal/apperrors"
	"github.com/hraxis/hr_payroll_app/internal/core/domain"
	portsrepo "github.com/hraxis/hr_payroll_app/internal/core/ports/repositories"
	"github.com/hraxis/hr_payroll_app/internal/models"
	"github.com/hraxis/hr_payroll_app/internal/utils/mapping"
)

type PgxLoanRepository struct {
	BaseRepository
}

// newPgxLoanRepository creates a new repository for loan and loan entry data.
func newPgxLoanRepository(pool *pgxpool.Pool, lockTimeoutMS int) portsrepo.LoanRepositoryFacade {
	return &PgxLoanRepository{
		BaseRepository: BaseRepository{Pool: pool, lockTimeoutMS: lockTimeoutMS},
	}
}

var _ portsrepo.LoanRepositoryFacade = (*PgxLoanRepository)(nil)

const loanColumns = `
	loan_id, employee_id, loan_amount, balance, status, issued_date, notes,
	created_at, created_by, last_updated_at, last_updated_by`

const loanEntryColumns = `
	entry_id, loan_id, entry_type, amount, entry_date, notes,
	created_at, created_by, last_updated_at, last_updated_by`

func scanLoan(row pgx.Row) (*domain.Loan, error) {
	var m models.Loan
	err := row.Scan(
		&m.LoanID,
		&m.EmployeeID,
		&m.LoanAmount,
		&m.Balance,
		&m.Status,
		&m.IssuedDate,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	loan := mapping.ToDomainLoan(m)
	return &loan, nil
}

func scanLoanEntry(row pgx.Row) (*domain.LoanEntry, error) {
	var m models.LoanEntry
	err := row.Scan(
		&m.EntryID,
		&m.LoanID,
		&m.EntryType,
		&m.Amount,
		&m.EntryDate,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	entry := mapping.ToDomainLoanEntry(m)
	return &entry, nil
}

// FindLoanByID retrieves a loan by its ID.
func (r *PgxLoanRepository) FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error) {
	query := `SELECT` + loanColumns + ` FROM loans WHERE loan_id = $1;`
	loan, err := scanLoan(r.Pool.QueryRow(ctx, query, loanID))
	if err != nil {
		return nil, mapPgError(err, "failed to find loan "+loanID)
	}
	return loan, nil
}

// FindLoanForUpdate loads a loan row and locks it for the duration of tx.
func (r *PgxLoanRepository) FindLoanForUpdate(ctx context.Context, tx pgx.Tx, loanID string) (*domain.Loan, error) {
	query := `SELECT` + loanColumns + ` FROM loans WHERE loan_id = $1 FOR UPDATE;`
	loan, err := scanLoan(tx.QueryRow(ctx, query, loanID))
	if err != nil {
		return nil, mapPgError(err, "failed to lock loan "+loanID)
	}
	return loan, nil
}

// FindLoanEntryByID retrieves a single journal entry.
func (r *PgxLoanRepository) FindLoanEntryByID(ctx context.Context, entryID string) (*domain.LoanEntry, error) {
	query := `SELECT` + loanEntryColumns + ` FROM loan_entries WHERE entry_id = $1;`
	entry, err := scanLoanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		return nil, mapPgError(err, "failed to find loan entry "+entryID)
	}
	return entry, nil
}

// FindLoanEntryForUpdate loads an entry row and locks it for the duration of tx.
func (r *PgxLoanRepository) FindLoanEntryForUpdate(ctx context.Context, tx pgx.Tx, entryID string) (*domain.LoanEntry, error) {
	query := `SELECT` + loanEntryColumns + ` FROM loan_entries WHERE entry_id = $1 FOR UPDATE;`
	entry, err := scanLoanEntry(tx.QueryRow(ctx, query, entryID))
	if err != nil {
		return nil, mapPgError(err, "failed to lock loan entry "+entryID)
	}
	return entry, nil
}

// ListLoanEntries retrieves the journal entries of a loan in entry date order,
// optionally bounded by an inclusive date range.
func (r *PgxLoanRepository) ListLoanEntries(ctx context.Context, loanID string, from, until *time.Time) ([]domain.LoanEntry, error) {
	query := `SELECT` + loanEntryColumns + ` FROM loan_entries WHERE loan_id = $1`
	args := []any{loanID}
	if from != nil {
		args = append(args, *from)
		query += ` AND entry_date >= $2`
	}
	if until != nil {
		args = append(args, *until)
		if from != nil {
			query += ` AND entry_date <= $3`
		} else {
			query += ` AND entry_date <= $2`
		}
	}
	query += ` ORDER BY entry_date ASC, created_at ASC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapPgError(err, "failed to list entries for loan "+loanID)
	}
	defer rows.Close()

	var entries []models.LoanEntry
	for rows.Next() {
		var m models.LoanEntry
		if err := rows.Scan(
			&m.EntryID,
			&m.LoanID,
			&m.EntryType,
			&m.Amount,
			&m.EntryDate,
			&m.Notes,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, mapPgError(err, "failed to scan entry for loan "+loanID)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err, "failed to read entries for loan "+loanID)
	}
	return mapping.ToDomainLoanEntrySlice(entries), nil
}

// InsertLoanEntry persists a new journal entry within tx.
func (r *PgxLoanRepository) InsertLoanEntry(ctx context.Context, tx pgx.Tx, entry domain.LoanEntry) error {
	m := mapping.ToModelLoanEntry(entry)
	query := `
		INSERT INTO loan_entries (` + loanEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := tx.Exec(ctx, query,
		m.EntryID,
		m.LoanID,
		m.EntryType,
		m.Amount,
		m.EntryDate,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, "failed to insert loan entry "+m.EntryID)
	}
	return nil
}

// UpdateLoanEntry overwrites the mutable fields of an existing entry within tx.
func (r *PgxLoanRepository) UpdateLoanEntry(ctx context.Context, tx pgx.Tx, entry domain.LoanEntry) error {
	m := mapping.ToModelLoanEntry(entry)
	query := `
		UPDATE loan_entries
		SET loan_id = $2, entry_type = $3, amount = $4, entry_date = $5, notes = $6,
		    last_updated_at = $7, last_updated_by = $8
		WHERE entry_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.EntryID,
		m.LoanID,
		m.EntryType,
		m.Amount,
		m.EntryDate,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, "failed to update loan entry "+m.EntryID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteLoanEntry removes an entry row within tx.
func (r *PgxLoanRepository) DeleteLoanEntry(ctx context.Context, tx pgx.Tx, entryID string) error {
	tag, err := tx.Exec(ctx, `DELETE FROM loan_entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return mapPgError(err, "failed to delete loan entry "+entryID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateLoanAggregates overwrites the derived figures of a locked loan row.
func (r *PgxLoanRepository) UpdateLoanAggregates(ctx context.Context, tx pgx.Tx, loanID string, loanAmount, balance decimal.Decimal, status domain.LoanStatus, userID string, now time.Time) error {
	query := `
		UPDATE loans
		SET loan_amount = $2, balance = $3, status = $4, last_updated_at = $5, last_updated_by = $6
		WHERE loan_id = $1;
	`
	tag, err := tx.Exec(ctx, query, loanID, loanAmount, balance, string(status), now, userID)
	if err != nil {
		return mapPgError(err, "failed to update aggregates for loan "+loanID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
