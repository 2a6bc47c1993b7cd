package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/costureira_pro/internal/apperrors"
	portsrepo "github.com/SscSPs/costureira_pro/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the query surface shared by *pgxpool.Pool and pgx.Tx, so the same
// repository code runs inside and outside a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var (
	_ DBTX = (*pgxpool.Pool)(nil)
	_ DBTX = (pgx.Tx)(nil)
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB DBTX
}

// isUniqueViolation reports whether err is a unique-constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// PgxTransactionManager opens pgx transactions and hands out repositories bound to them.
type PgxTransactionManager struct {
	Pool *pgxpool.Pool
}

var _ portsrepo.TransactionManager = (*PgxTransactionManager)(nil)

// Begin starts a new database transaction
func (m *PgxTransactionManager) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := m.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (m *PgxTransactionManager) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (m *PgxTransactionManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// WithinTx runs fn with repositories bound to a fresh transaction.
func (m *PgxTransactionManager) WithinTx(ctx context.Context, fn func(ctx context.Context, repos portsrepo.TxRepositories) error) error {
	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}
	// Will be ignored if the transaction is committed successfully
	defer m.Rollback(context.WithoutCancel(ctx), tx) //nolint:errcheck

	repos := portsrepo.TxRepositories{
		Clients:       newPgxClientRepository(tx),
		ServiceOrders: newPgxServiceOrderRepository(tx),
		PieceCounters: newPgxPieceCounterRepository(tx),
	}
	if err := fn(ctx, repos); err != nil {
		return err
	}
	if err := m.Commit(ctx, tx); err != nil {
		return fmt.Errorf("within tx: %w", err)
	}
	return nil
}
