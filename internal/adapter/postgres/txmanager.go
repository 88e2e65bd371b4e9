package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultTxAttempts = 3

// TxManager opens transactions and hands them to callbacks through the
// context. Nested RunInTx calls join the outermost transaction.
type TxManager struct {
	pool     *pgxpool.Pool
	attempts int
}

// TxOption configures a TxManager.
type TxOption func(*TxManager)

// WithTxAttempts bounds how many times a transaction aborted by a deadlock or
// serialization failure is replayed. n < 1 is treated as 1.
func WithTxAttempts(n int) TxOption {
	return func(m *TxManager) {
		if n < 1 {
			n = 1
		}
		m.attempts = n
	}
}

func NewTxManager(pool *pgxpool.Pool, opts ...TxOption) *TxManager {
	m := &TxManager{pool: pool, attempts: defaultTxAttempts}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// RunInTx runs fn inside a Read Committed transaction. Record writes rely on
// the version column for concurrency control, so the isolation level stays
// at the PostgreSQL default.
//
// fn may be invoked more than once: when the database aborts the transaction
// with 40001 or 40P01 the whole callback is replayed on a fresh transaction,
// up to the configured attempt count. A panic in fn rolls back and re-panics.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if inTx(ctx) {
		return fn(ctx)
	}

	var err error
	for attempt := 1; attempt <= m.attempts; attempt++ {
		err = m.runOnce(ctx, fn)
		if err == nil || !IsRetryable(err) || ctx.Err() != nil {
			return err
		}
	}
	return fmt.Errorf("transaction aborted after %d attempts: %w", m.attempts, err)
}

func (m *TxManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(withTxState(ctx, &txState{tx: tx})); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
