package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/zakat-tracker/internal/domain"
	"github.com/heartmarshall/zakat-tracker/pkg/ctxutil"
)

// Summarize returns the distribution breakdown of one of the caller's
// records, served from cache while fresh.
func (s *Service) Summarize(ctx context.Context, recordID uuid.UUID) (*domain.DistributionSummary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rec, err := s.records.GetByID(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}
	if rec.UserID != userID {
		return nil, fmt.Errorf("get record: %w", domain.ErrNotFound)
	}

	var sum domain.DistributionSummary
	if s.cached(ctx, domain.MetricDistributionBreakdown, recordID.String(), &sum) {
		return &sum, nil
	}

	fresh, err := s.summarize(ctx, rec)
	if err != nil {
		return nil, err
	}
	if err := s.store(ctx, domain.MetricDistributionBreakdown, recordID.String(), fresh); err != nil {
		s.log.WarnContext(ctx, "cache distribution breakdown",
			slog.String("record_id", recordID.String()),
			slog.String("error", err.Error()),
		)
	}
	return fresh, nil
}

func (s *Service) summarize(ctx context.Context, rec *domain.ObligationRecord) (*domain.DistributionSummary, error) {
	ds, err := s.distributions.ListByRecord(ctx, rec.ID)
	if err != nil {
		return nil, fmt.Errorf("list distributions: %w", err)
	}
	return buildSummary(rec, ds, s.now()), nil
}

func buildSummary(rec *domain.ObligationRecord, ds []domain.DistributionRecord, now time.Time) *domain.DistributionSummary {
	sum := &domain.DistributionSummary{
		RecordID:        rec.ID,
		State:           rec.State,
		Currency:        rec.Currency,
		LevyAmount:      rec.LevyAmount,
		ByCategory:      make(map[domain.RecipientCategory]decimal.Decimal, len(domain.RecipientCategories)),
		ByRecipientType: make(map[domain.RecipientType]decimal.Decimal, 2),
		Count:           len(ds),
		GeneratedAt:     now,
	}
	if rec.State == domain.RecordStateFinalized {
		threshold := rec.ThresholdValue
		sum.Methodology = rec.Methodology
		sum.Basis = rec.Basis
		sum.ThresholdValue = &threshold
		sum.ThresholdFallback = rec.ThresholdFallback
		sum.FinalizedAt = rec.FinalizedAt
	}
	for _, c := range domain.RecipientCategories {
		sum.ByCategory[c] = decimal.Zero
	}
	sum.ByRecipientType[domain.RecipientTypeIndividual] = decimal.Zero
	sum.ByRecipientType[domain.RecipientTypeOrganization] = decimal.Zero

	for i := range ds {
		d := &ds[i]
		sum.ByCategory[d.Category] = sum.ByCategory[d.Category].Add(d.Amount)
		sum.ByRecipientType[d.RecipientType] = sum.ByRecipientType[d.RecipientType].Add(d.Amount)
		if sum.FirstAt == nil || d.DistributedAt.Before(*sum.FirstAt) {
			sum.FirstAt = &d.DistributedAt
		}
		if sum.LastAt == nil || d.DistributedAt.After(*sum.LastAt) {
			sum.LastAt = &d.DistributedAt
		}
	}

	sum.PaidTotal = domain.PaidTotal(ds)
	sum.Remaining = rec.LevyAmount.Sub(sum.PaidTotal)
	if sum.Remaining.IsNegative() {
		sum.Remaining = decimal.Zero
	}
	if rec.LevyAmount.IsPositive() {
		sum.PaidPercent = sum.PaidTotal.Div(rec.LevyAmount).Mul(hundred).Round(2)
	}
	return sum
}
