package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

type txKey struct{}

// Transactor implements ports.Transactor. It stores the active pgx.Tx in the
// context so store methods called inside fn join the same transaction.
type Transactor struct {
	db DB
}

// NewTransactor creates a Transactor backed by the given pool.
func NewTransactor(db DB) *Transactor {
	return &Transactor{db: db}
}

// InTransaction begins a transaction, stores it in context, and calls fn.
// The transaction commits when fn returns nil and rolls back otherwise.
func (t *Transactor) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := t.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// conn resolves the executor for a store call: the context's transaction when
// present, the pool otherwise.
func conn(ctx context.Context, db DB) querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return db
}
