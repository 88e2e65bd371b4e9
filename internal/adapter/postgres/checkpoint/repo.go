// Package checkpoint persists per-job watermarks so incremental jobs resume
// where they left off after a restart.
package checkpoint

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/zakat-tracker/internal/adapter/postgres"
)

// Repo provides job checkpoint persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new checkpoint repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getSQL = `
SELECT watermark FROM job_checkpoints WHERE job_name = $1`

const setSQL = `
INSERT INTO job_checkpoints (job_name, watermark, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (job_name) DO UPDATE
SET watermark = EXCLUDED.watermark, updated_at = now()`

// Get returns the job's watermark. ok is false when the job has never
// stored one.
func (r *Repo) Get(ctx context.Context, job string) (watermark time.Time, ok bool, err error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	err = q.QueryRow(ctx, getSQL, job).Scan(&watermark)
	if errors.Is(err, pgx.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("get checkpoint %s: %w", job, err)
	}
	return watermark, true, nil
}

// Set stores the job's watermark.
func (r *Repo) Set(ctx context.Context, job string, watermark time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, setSQL, job, watermark); err != nil {
		return fmt.Errorf("set checkpoint %s: %w", job, err)
	}
	return nil
}
