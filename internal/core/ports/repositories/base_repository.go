package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager defines scoped transaction management. Every mutating
// service path runs inside exactly one transaction obtained here; there is no
// nesting. Begin applies the configured lock-wait timeout to the transaction.
type TransactionManager interface {
	// Begin starts a new database transaction
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit commits a transaction
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback rolls back a transaction; safe to call after Commit.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
