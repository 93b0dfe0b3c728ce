// Package tx provides transaction management abstractions.
// Domain and repository code depend on these interfaces, not on pgx.
package tx

import (
	"context"
)

// Manager runs fn inside a read-write transaction.
// If fn returns an error the transaction is rolled back, otherwise committed.
// Nested calls reuse the transaction already stored in ctx.
type Manager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// SnapshotReader runs fn inside a read-only transaction whose statements all
// observe the same snapshot of the database.
type SnapshotReader interface {
	ReadSnapshot(ctx context.Context, fn func(ctx context.Context) error) error
}
