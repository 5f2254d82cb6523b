package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/consultancy_admin/internal/apperrors"
	portsrepo "github.com/SscSPs/consultancy_admin/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation           = "23505"
	pgForeignKeyViolation       = "23503"
	pgInvalidTextRepresentation = "22P02" // malformed value for a typed column, e.g. a uuid
)

type txCtxKey struct{}

// querier is the subset of pgxpool.Pool and pgx.Tx used by repositories.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// db returns the transaction carried by ctx, or the pool when there is none.
func (r *BaseRepository) db(ctx context.Context) querier {
	if tx, ok := ctx.Value(txCtxKey{}).(pgx.Tx); ok {
		return tx
	}
	return r.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// PgxTransactionManager runs units of work in a pgx transaction carried through the context.
type PgxTransactionManager struct {
	BaseRepository
}

func newPgxTransactionManager(pool *pgxpool.Pool) portsrepo.TransactionManager {
	return &PgxTransactionManager{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionManager = (*PgxTransactionManager)(nil)

// WithinTransaction commits when fn returns nil and rolls back otherwise.
// A ctx that already carries a transaction joins it.
func (m *PgxTransactionManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txCtxKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = m.Rollback(ctx, tx)
	}()

	if err := fn(context.WithValue(ctx, txCtxKey{}, tx)); err != nil {
		return err
	}
	return m.Commit(ctx, tx)
}

// mapWriteError translates unique violations into conflicts and wraps everything else.
func mapWriteError(err error, conflictMsg, failMsg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperrors.NewConflictError(conflictMsg)
		case pgForeignKeyViolation:
			return apperrors.NewValidationFailedError(failMsg + ": referenced row does not exist")
		case pgInvalidTextRepresentation:
			return apperrors.NewNotFoundError(failMsg + ": unknown identifier")
		}
	}
	return apperrors.NewAppError(500, failMsg, err)
}

// mapReadError translates pgx.ErrNoRows and malformed identifiers into a not-found error.
func mapReadError(err error, notFoundMsg, failMsg string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFoundError(notFoundMsg)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgInvalidTextRepresentation {
		return apperrors.NewNotFoundError(notFoundMsg)
	}
	return apperrors.NewAppError(500, failMsg, err)
}

// requireAffected reports a not-found error when an update touched no rows.
func requireAffected(tag pgconn.CommandTag, notFoundMsg string) error {
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(notFoundMsg)
	}
	return nil
}

// keysetPage appends the keyset predicate, ordering and limit for a list query.
// args must already hold the arguments referenced by base.
func keysetPage(base, createdAtCol, idCol string, params portsrepo.ListParams, args []any) (string, []any) {
	var b strings.Builder
	b.WriteString(base)
	if params.AfterCreatedAt != nil {
		args = append(args, *params.AfterCreatedAt, params.AfterID)
		fmt.Fprintf(&b, " AND (%s, %s) > ($%d, $%d)", createdAtCol, idCol, len(args)-1, len(args))
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	args = append(args, limit)
	fmt.Fprintf(&b, " ORDER BY %s, %s LIMIT $%d", createdAtCol, idCol, len(args))
	return b.String(), args
}
