// Package postgres holds the sqlx-backed stores. Stores run against the
// transaction carried in the context when one is present, so a sync can
// write an article and its edition link atomically.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// txContextKey is unexported so only this package can stash a transaction
// in a context.
type txContextKey struct{}

// TransactionManager opens a transaction and threads it through the context
// to every store call made inside the callback.
type TransactionManager struct {
	db *sqlx.DB
}

func NewTransactionManager(db *sqlx.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// WithTransaction runs fn inside a single transaction. The transaction
// commits when fn returns nil and rolls back otherwise; a rollback failure
// is joined onto fn's error rather than swallowed.
func (tm *TransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := tm.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(context.WithValue(ctx, txContextKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetTxFromContext returns the transaction carried by ctx, or nil when the
// caller is not inside WithTransaction.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txContextKey{}).(*sqlx.Tx)
	return tx
}

// GetExecutor picks the statement target for a store call: the context's
// transaction when present, the bare pool otherwise. Stores route every
// query through it so callers choose transactionality, not the store.
func GetExecutor(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}
