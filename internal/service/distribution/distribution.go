package distribution

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/zakat-tracker/internal/domain"
)

// RecordDistribution adds a payment to one of the caller's records.
func (s *Service) RecordDistribution(ctx context.Context, input RecordDistributionInput) (*domain.DistributionRecord, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if err := input.Validate(now); err != nil {
		return nil, err
	}

	rec, err := s.ownedRecord(ctx, userID, input.RecordID)
	if err != nil {
		return nil, err
	}
	if !rec.State.AcceptsNewDistributions() {
		return nil, domain.NewStateConflict("record distribution", rec.State)
	}

	distributedAt := input.DistributedAt
	if distributedAt.IsZero() {
		distributedAt = now
	}
	d := &domain.DistributionRecord{
		ID:            uuid.New(),
		RecordID:      rec.ID,
		UserID:        userID,
		Amount:        input.Amount,
		Currency:      rec.Currency,
		Category:      input.Category,
		RecipientType: input.RecipientType,
		DistributedAt: distributedAt,
		Notes:         strings.TrimSpace(input.Notes),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.distributions.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("create distribution: %w", err)
	}
	s.invalidate(ctx, rec.ID)

	s.log.InfoContext(ctx, "distribution recorded",
		slog.String("record_id", rec.ID.String()),
		slog.String("distribution_id", d.ID.String()),
		slog.String("category", d.Category.String()),
	)
	return d, nil
}

// UpdateDistribution edits a distribution while its record is not FINALIZED.
func (s *Service) UpdateDistribution(ctx context.Context, input UpdateDistributionInput) (*domain.DistributionRecord, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if err := input.Validate(now); err != nil {
		return nil, err
	}

	d, rec, err := s.ownedDistribution(ctx, userID, input.DistributionID)
	if err != nil {
		return nil, err
	}
	if !rec.State.AllowsDistributionEdits() {
		return nil, domain.NewStateConflict("update distribution", rec.State)
	}

	if input.Amount != nil {
		d.Amount = *input.Amount
	}
	if input.Category != nil {
		d.Category = *input.Category
	}
	if input.RecipientType != nil {
		d.RecipientType = *input.RecipientType
	}
	if input.DistributedAt != nil {
		d.DistributedAt = *input.DistributedAt
	}
	if input.Notes != nil {
		d.Notes = strings.TrimSpace(*input.Notes)
	}
	d.UpdatedAt = now

	if err := s.distributions.Update(ctx, d); err != nil {
		return nil, fmt.Errorf("update distribution: %w", err)
	}
	s.invalidate(ctx, rec.ID)

	s.log.InfoContext(ctx, "distribution updated",
		slog.String("record_id", rec.ID.String()),
		slog.String("distribution_id", d.ID.String()),
	)
	return d, nil
}

// DeleteDistribution removes a distribution while its record is not FINALIZED.
func (s *Service) DeleteDistribution(ctx context.Context, id uuid.UUID) error {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return err
	}

	_, rec, err := s.ownedDistribution(ctx, userID, id)
	if err != nil {
		return err
	}
	if !rec.State.AllowsDistributionEdits() {
		return domain.NewStateConflict("delete distribution", rec.State)
	}

	if err := s.distributions.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete distribution: %w", err)
	}
	s.invalidate(ctx, rec.ID)

	s.log.InfoContext(ctx, "distribution deleted",
		slog.String("record_id", rec.ID.String()),
		slog.String("distribution_id", id.String()),
	)
	return nil
}

// ListDistributions returns a record's distributions, oldest first.
func (s *Service) ListDistributions(ctx context.Context, recordID uuid.UUID) ([]domain.DistributionRecord, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedRecord(ctx, userID, recordID); err != nil {
		return nil, err
	}
	ds, err := s.distributions.ListByRecord(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("list distributions: %w", err)
	}
	return ds, nil
}

// PaidTotal returns the sum distributed against a record.
func (s *Service) PaidTotal(ctx context.Context, recordID uuid.UUID) (decimal.Decimal, error) {
	ds, err := s.ListDistributions(ctx, recordID)
	if err != nil {
		return decimal.Zero, err
	}
	return domain.PaidTotal(ds), nil
}
