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

type PgxCommissionRepository struct {
	BaseRepository
}

// newPgxCommissionRepository creates a new repository for commission data.
func newPgxCommissionRepository(pool *pgxpool.Pool, lockTimeoutMS int) portsrepo.CommissionRepositoryFacade {
	return &PgxCommissionRepository{
		BaseRepository: BaseRepository{Pool: pool, lockTimeoutMS: lockTimeoutMS},
	}
}

var _ portsrepo.CommissionRepositoryFacade = (*PgxCommissionRepository)(nil)

const commissionColumns = `
	commission_id, employee_id, basic_salary, total, date_from, date_until,
	created_at, created_by, last_updated_at, last_updated_by`

const commissionEntryColumns = `
	entry_id, commission_id, entry_date, amount,
	created_at, created_by, last_updated_at, last_updated_by`

func scanCommission(row pgx.Row) (*domain.Commission, error) {
	var m models.Commission
	err := row.Scan(
		&m.CommissionID,
		&m.EmployeeID,
		&m.BasicSalary,
		&m.Total,
		&m.DateFrom,
		&m.DateUntil,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	commission := mapping.ToDomainCommission(m)
	return &commission, nil
}

// FindCommissionByID retrieves a commission header by its ID.
func (r *PgxCommissionRepository) FindCommissionByID(ctx context.Context, commissionID string) (*domain.Commission, error) {
	query := `SELECT` + commissionColumns + ` FROM commissions WHERE commission_id = $1;`
	commission, err := scanCommission(r.Pool.QueryRow(ctx, query, commissionID))
	if err != nil {
		return nil, mapPgError(err, "failed to find commission "+commissionID)
	}
	return commission, nil
}

// FindCommissionForUpdate loads a commission header and locks it for the duration of tx.
func (r *PgxCommissionRepository) FindCommissionForUpdate(ctx context.Context, tx pgx.Tx, commissionID string) (*domain.Commission, error) {
	query := `SELECT` + commissionColumns + ` FROM commissions WHERE commission_id = $1 FOR UPDATE;`
	commission, err := scanCommission(tx.QueryRow(ctx, query, commissionID))
	if err != nil {
		return nil, mapPgError(err, "failed to lock commission "+commissionID)
	}
	return commission, nil
}

// FindCommissionEntryByID retrieves a single daily entry.
func (r *PgxCommissionRepository) FindCommissionEntryByID(ctx context.Context, entryID string) (*domain.CommissionEntry, error) {
	query := `SELECT` + commissionEntryColumns + ` FROM commission_entries WHERE entry_id = $1;`
	var m models.CommissionEntry
	err := r.Pool.QueryRow(ctx, query, entryID).Scan(
		&m.EntryID,
		&m.CommissionID,
		&m.EntryDate,
		&m.Amount,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, mapPgError(err, "failed to find commission entry "+entryID)
	}
	entry := mapping.ToDomainCommissionEntry(m)
	return &entry, nil
}

// ListCommissionEntries retrieves the daily entries for a commission in date order.
func (r *PgxCommissionRepository) ListCommissionEntries(ctx context.Context, commissionID string) ([]domain.CommissionEntry, error) {
	query := `SELECT` + commissionEntryColumns + ` FROM commission_entries WHERE commission_id = $1 ORDER BY entry_date ASC;`
	rows, err := r.Pool.Query(ctx, query, commissionID)
	if err != nil {
		return nil, mapPgError(err, "failed to list entries for commission "+commissionID)
	}
	defer rows.Close()

	var entries []models.CommissionEntry
	for rows.Next() {
		var m models.CommissionEntry
		if err := rows.Scan(
			&m.EntryID,
			&m.CommissionID,
			&m.EntryDate,
			&m.Amount,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, mapPgError(err, "failed to scan entry for commission "+commissionID)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err, "failed to read entries for commission "+commissionID)
	}
	return mapping.ToDomainCommissionEntrySlice(entries), nil
}

// InsertCommissionEntry persists one daily entry within tx.
func (r *PgxCommissionRepository) InsertCommissionEntry(ctx context.Context, tx pgx.Tx, entry domain.CommissionEntry) error {
	m := mapping.ToModelCommissionEntry(entry)
	query := `
		INSERT INTO commission_entries (` + commissionEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := tx.Exec(ctx, query,
		m.EntryID,
		m.CommissionID,
		m.EntryDate,
		m.Amount,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, "failed to insert commission entry "+m.EntryID)
	}
	return nil
}

// InsertCommissionEntries batch-inserts generated daily entries within tx.
func (r *PgxCommissionRepository) InsertCommissionEntries(ctx context.Context, tx pgx.Tx, entries []domain.CommissionEntry) error {
	if len(entries) == 0 {
		return nil
	}
	query := `
		INSERT INTO commission_entries (` + commissionEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	batch := &pgx.Batch{}
	for _, entry := range entries {
		m := mapping.ToModelCommissionEntry(entry)
		batch.Queue(query,
			m.EntryID,
			m.CommissionID,
			m.EntryDate,
			m.Amount,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return mapPgError(err, "failed to batch-insert commission entries")
	}
	return nil
}

// UpdateCommissionEntry overwrites the mutable fields of an existing entry within tx.
func (r *PgxCommissionRepository) UpdateCommissionEntry(ctx context.Context, tx pgx.Tx, entry domain.CommissionEntry) error {
	m := mapping.ToModelCommissionEntry(entry)
	query := `
		UPDATE commission_entries
		SET entry_date = $2, amount = $3, last_updated_at = $4, last_updated_by = $5
		WHERE entry_id = $1;
	`
	tag, err := tx.Exec(ctx, query, m.EntryID, m.EntryDate, m.Amount, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return mapPgError(err, "failed to update commission entry "+m.EntryID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCommissionEntry removes a single entry row within tx.
func (r *PgxCommissionRepository) DeleteCommissionEntry(ctx context.Context, tx pgx.Tx, entryID string) error {
	tag, err := tx.Exec(ctx, `DELETE FROM commission_entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return mapPgError(err, "failed to delete commission entry "+entryID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCommissionEntriesByCommission removes every entry of a commission within tx.
func (r *PgxCommissionRepository) DeleteCommissionEntriesByCommission(ctx context.Context, tx pgx.Tx, commissionID string) error {
	_, err := tx.Exec(ctx, `DELETE FROM commission_entries WHERE commission_id = $1;`, commissionID)
	if err != nil {
		return mapPgError(err, "failed to clear entries for commission "+commissionID)
	}
	return nil
}

// SumCommissionEntries returns SUM(amount) over the commission's entries as
// currently visible to tx. An empty detail table sums to zero.
func (r *PgxCommissionRepository) SumCommissionEntries(ctx context.Context, tx pgx.Tx, commissionID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `SELECT COALESCE(SUM(amount), 0) FROM commission_entries WHERE commission_id = $1;`
	if err := tx.QueryRow(ctx, query, commissionID).Scan(&total); err != nil {
		return decimal.Zero, mapPgError(err, "failed to sum entries for commission "+commissionID)
	}
	return total, nil
}

// UpdateCommissionAggregates overwrites the derived total and date range of a
// locked commission header.
func (r *PgxCommissionRepository) UpdateCommissionAggregates(ctx context.Context, tx pgx.Tx, commissionID string, total decimal.Decimal, dateFrom, dateUntil time.Time, userID string, now time.Time) error {
	query := `
		UPDATE commissions
		SET total = $2, date_from = $3, date_until = $4, last_updated_at = $5, last_updated_by = $6
		WHERE commission_id = $1;
	`
	tag, err := tx.Exec(ctx, query, commissionID, total, dateFrom, dateUntil, now, userID)
	if err != nil {
		return mapPgError(err, "failed to update aggregates for commission "+commissionID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
