// Package metric implements the analytics metric cache using PostgreSQL.
package metric

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/zakat-tracker/internal/adapter/postgres"
	"github.com/heartmarshall/zakat-tracker/internal/domain"
)

// Repo provides cached metric persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new metric repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const getSQL = `
SELECT metric_type, scope_key, value, computed_at, expires_at
FROM cached_metrics
WHERE metric_type = $1 AND scope_key = $2`

const upsertSQL = `
INSERT INTO cached_metrics (metric_type, scope_key, value, computed_at, expires_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (metric_type, scope_key) DO UPDATE
SET value = EXCLUDED.value, computed_at = EXCLUDED.computed_at, expires_at = EXCLUDED.expires_at`

const deleteSQL = `
DELETE FROM cached_metrics WHERE metric_type = $1 AND scope_key = $2`

const deleteExpiredSQL = `
DELETE FROM cached_metrics WHERE expires_at <= $1`

// Get returns the cached metric for (metricType, scopeKey) regardless of
// expiry; callers check IsExpired.
func (r *Repo) Get(ctx context.Context, metricType, scopeKey string) (*domain.CachedMetric, error) {
	metricType = domain.NormalizeMetricType(metricType)

	q := postgres.QuerierFromCtx(ctx, r.pool)
	var m domain.CachedMetric
	err := q.QueryRow(ctx, getSQL, metricType, scopeKey).
		Scan(&m.MetricType, &m.ScopeKey, &m.Value, &m.ComputedAt, &m.ExpiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("metric %s/%s: %w", metricType, scopeKey, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get metric %s/%s: %w", metricType, scopeKey, err)
	}
	return &m, nil
}

// Upsert stores m, replacing any previous value for the same key.
func (r *Repo) Upsert(ctx context.Context, m domain.CachedMetric) error {
	m.MetricType = domain.NormalizeMetricType(m.MetricType)

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, upsertSQL, m.MetricType, m.ScopeKey, []byte(m.Value), m.ComputedAt, m.ExpiresAt); err != nil {
		return fmt.Errorf("upsert metric %s/%s: %w", m.MetricType, m.ScopeKey, err)
	}
	return nil
}

// Delete invalidates one metric. Missing keys are not an error.
func (r *Repo) Delete(ctx context.Context, metricType, scopeKey string) error {
	metricType = domain.NormalizeMetricType(metricType)

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, deleteSQL, metricType, scopeKey); err != nil {
		return fmt.Errorf("delete metric %s/%s: %w", metricType, scopeKey, err)
	}
	return nil
}

// DeleteExpired removes every metric that expired at or before now.
func (r *Repo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, deleteExpiredSQL, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired metrics: %w", err)
	}
	return tag.RowsAffected(), nil
}
