package repositories

import "context"

// TransactionManager runs fn inside a single database transaction.
// Repositories called with the ctx passed to fn participate in that transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type TransactionManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
