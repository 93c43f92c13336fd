package pgsql

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hraxis/hr_payroll_app/internal/apperrors"
)

const (
	pgUniqueViolation  = "23505"
	pgLockNotAvailable = "55P03"
)

// mapPgError translates driver errors into the application error taxonomy.
// Missing rows become not-found, unique violations become duplicates, and a
// lock-wait timeout surfaces as a conflict so callers can retry.
func mapPgError(err error, msg string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", apperrors.ErrDuplicate, pgErr.Detail)
		case pgLockNotAvailable:
			return fmt.Errorf("%w: %s: row is locked by another operation", apperrors.ErrConflict, msg)
		}
	}
	return fmt.Errorf("%w: %s: %v", apperrors.ErrStore, msg, err)
}
