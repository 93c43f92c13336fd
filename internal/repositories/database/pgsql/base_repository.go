package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hraxis/hr_payroll_app/internal/apperrors"
)

// BaseRepository provides common functionality for all repositories.
type BaseRepository struct {
	Pool *pgxpool.Pool
	// lockTimeoutMS bounds how long a transaction waits on a row lock before
	// the database gives up and we surface a conflict. Zero leaves the server
	// default in place.
	lockTimeoutMS int
}

// Begin starts a new database transaction with the configured lock-wait timeout.
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to begin transaction: %v", apperrors.ErrStore, err)
	}
	if r.lockTimeoutMS > 0 {
		if _, err := tx.Exec(ctx, "SET LOCAL lock_timeout = '"+strconv.Itoa(r.lockTimeoutMS)+"ms'"); err != nil {
			_ = tx.Rollback(ctx)
			return nil, fmt.Errorf("%w: failed to set lock timeout: %v", apperrors.ErrStore, err)
		}
	}
	return tx, nil
}

// Commit commits a transaction.
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return mapPgError(err, "failed to commit transaction")
	}
	return nil
}

// Rollback rolls back a transaction; safe to call after Commit.
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("%w: failed to rollback transaction: %v", apperrors.ErrStore, err)
	}
	return nil
}
