package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is satisfied by *pgxpool.Pool and pgx.Tx. Repositories run every
// statement through it so the same code works inside and outside RunInTx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// txState is what RunInTx stores in the context.
type txState struct {
	tx pgx.Tx
}

type txStateKey struct{}

func withTxState(ctx context.Context, st *txState) context.Context {
	return context.WithValue(ctx, txStateKey{}, st)
}

func txStateFrom(ctx context.Context) *txState {
	st, _ := ctx.Value(txStateKey{}).(*txState)
	return st
}

// QuerierFromCtx returns the open transaction carried by ctx, or pool.
func QuerierFromCtx(ctx context.Context, pool *pgxpool.Pool) Querier {
	if st := txStateFrom(ctx); st != nil {
		return st.tx
	}
	return pool
}

func inTx(ctx context.Context) bool {
	return txStateFrom(ctx) != nil
}
