// Package analytics compares assessment periods and summarizes
// distributions, caching the results as regenerable metrics.
package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/zakat-tracker/internal/domain"
)

type recordStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ObligationRecord, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.ObligationRecord, error)
	ListModifiedSince(ctx context.Context, since time.Time, afterID uuid.UUID, limit int) ([]domain.RecordRef, error)
}

type distributionLister interface {
	ListByRecord(ctx context.Context, recordID uuid.UUID) ([]domain.DistributionRecord, error)
}

type metricStore interface {
	Get(ctx context.Context, metricType, scopeKey string) (*domain.CachedMetric, error)
	Upsert(ctx context.Context, m domain.CachedMetric) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type checkpointStore interface {
	Get(ctx context.Context, job string) (time.Time, bool, error)
	Set(ctx context.Context, job string, watermark time.Time) error
}

// SummaryCheckpoint is the checkpoint key of the summary regeneration job.
const SummaryCheckpoint = "summary-regeneration"

// Config holds trend and cache settings.
type Config struct {
	// TrendThreshold is the percentage change that counts as a trend.
	TrendThreshold decimal.Decimal
	TrendSeriesTTL time.Duration
	BreakdownTTL   time.Duration
	DefaultTTL     time.Duration
	RegenBatchSize int
}

// DefaultConfig returns the standard thresholds and TTLs.
func DefaultConfig() Config {
	return Config{
		TrendThreshold: decimal.NewFromInt(5),
		TrendSeriesTTL: 60 * time.Minute,
		BreakdownTTL:   30 * time.Minute,
		DefaultTTL:     15 * time.Minute,
		RegenBatchSize: 100,
	}
}

// TTL returns the cache lifetime for metricType, matched case-insensitively.
func (c Config) TTL(metricType string) time.Duration {
	switch domain.NormalizeMetricType(metricType) {
	case domain.MetricTrendSeries:
		return c.TrendSeriesTTL
	case domain.MetricDistributionBreakdown:
		return c.BreakdownTTL
	default:
		return c.DefaultTTL
	}
}

// Service provides comparison and summary operations.
type Service struct {
	records       recordStore
	distributions distributionLister
	metrics       metricStore
	checkpoints   checkpointStore
	cfg           Config
	log           *slog.Logger
	now           func() time.Time
}

// NewService creates a new analytics service.
func NewService(
	log *slog.Logger,
	records recordStore,
	distributions distributionLister,
	metrics metricStore,
	checkpoints checkpointStore,
	cfg Config,
) *Service {
	if cfg.RegenBatchSize <= 0 {
		cfg.RegenBatchSize = 100
	}
	return &Service{
		records:       records,
		distributions: distributions,
		metrics:       metrics,
		checkpoints:   checkpoints,
		cfg:           cfg,
		log:           log.With("service", "analytics"),
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// cached decodes a live metric into dst. A miss, an expired entry or a
// decode failure all report false.
func (s *Service) cached(ctx context.Context, metricType, scope string, dst any) bool {
	m, err := s.metrics.Get(ctx, metricType, scope)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "metric cache read", slog.String("type", metricType), slog.String("error", err.Error()))
		}
		return false
	}
	if m.IsExpired(s.now()) {
		return false
	}
	if err := json.Unmarshal(m.Value, dst); err != nil {
		s.log.WarnContext(ctx, "metric cache decode", slog.String("type", metricType), slog.String("error", err.Error()))
		return false
	}
	return true
}

// store caches v under metricType with that type's TTL.
func (s *Service) store(ctx context.Context, metricType, scope string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", metricType, err)
	}
	now := s.now()
	return s.metrics.Upsert(ctx, domain.CachedMetric{
		MetricType: metricType,
		ScopeKey:   scope,
		Value:      raw,
		ComputedAt: now,
		ExpiresAt:  now.Add(s.cfg.TTL(metricType)),
	})
}
