// Package distribution records payments made against an obligation record.
package distribution

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/zakat-tracker/internal/domain"
	"github.com/heartmarshall/zakat-tracker/pkg/ctxutil"
)

type distributionRepo interface {
	Create(ctx context.Context, d *domain.DistributionRecord) error
	Update(ctx context.Context, d *domain.DistributionRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DistributionRecord, error)
	ListByRecord(ctx context.Context, recordID uuid.UUID) ([]domain.DistributionRecord, error)
}

type recordReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ObligationRecord, error)
}

type metricInvalidator interface {
	Delete(ctx context.Context, metricType, scopeKey string) error
}

// Service provides distribution operations.
type Service struct {
	distributions distributionRepo
	records       recordReader
	metrics       metricInvalidator
	log           *slog.Logger
	now           func() time.Time
}

// NewService creates a new distribution service.
func NewService(log *slog.Logger, distributions distributionRepo, records recordReader, metrics metricInvalidator) *Service {
	return &Service{
		distributions: distributions,
		records:       records,
		metrics:       metrics,
		log:           log.With("service", "distribution"),
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// ownedRecord returns the parent record if the caller owns it.
func (s *Service) ownedRecord(ctx context.Context, userID, recordID uuid.UUID) (*domain.ObligationRecord, error) {
	rec, err := s.records.GetByID(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}
	if rec.UserID != userID {
		return nil, fmt.Errorf("get record: %w", domain.ErrNotFound)
	}
	return rec, nil
}

// ownedDistribution returns the distribution and its parent record.
func (s *Service) ownedDistribution(ctx context.Context, userID, id uuid.UUID) (*domain.DistributionRecord, *domain.ObligationRecord, error) {
	d, err := s.distributions.GetByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("get distribution: %w", err)
	}
	if d.UserID != userID {
		return nil, nil, fmt.Errorf("get distribution: %w", domain.ErrNotFound)
	}
	rec, err := s.ownedRecord(ctx, userID, d.RecordID)
	if err != nil {
		return nil, nil, err
	}
	return d, rec, nil
}

func (s *Service) invalidate(ctx context.Context, recordID uuid.UUID) {
	if err := s.metrics.Delete(ctx, domain.MetricDistributionBreakdown, recordID.String()); err != nil {
		s.log.WarnContext(ctx, "invalidate metric",
			slog.String("record_id", recordID.String()),
			slog.String("error", err.Error()),
		)
	}
}

func userFromCtx(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}
