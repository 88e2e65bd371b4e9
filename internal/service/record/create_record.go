package record

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/zakat-tracker/internal/domain"
)

// CreateRecord opens a record for the authenticated user, computes its
// figures and starts the waiting period when the threshold is already met.
func (s *Service) CreateRecord(ctx context.Context, input CreateRecordInput) (*domain.ObligationRecord, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	rules, _ := domain.RulesFor(input.Methodology)
	basis := input.Basis
	if basis == "" {
		basis = rules.DefaultBasis
	}

	refs := input.AssetRefs
	if len(refs) == 0 {
		if refs, err = s.wealth.CurrentRefs(ctx, userID); err != nil {
			return nil, fmt.Errorf("current assets: %w", err)
		}
	}

	now := s.now()
	rec := &domain.ObligationRecord{
		ID:          uuid.New(),
		UserID:      userID,
		State:       domain.RecordStateDraft,
		Methodology: input.Methodology,
		Basis:       basis,
		Currency:    s.cfg.Currency,
		LevyRate:    rules.LevyRate(input.LevyRate),
		AssetRefs:   refs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := s.recompute(ctx, rec, now); err != nil {
		return nil, err
	}
	if err := s.track(rec, now); err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.records.Create(txCtx, rec); err != nil {
			return fmt.Errorf("create record: %w", err)
		}
		changes := domain.DiffRecords(&domain.ObligationRecord{}, rec)
		entries := domain.NewAuditEntries(rec, changes, domain.AuditActorUser, &userID, "created", now)
		if err := s.audit.Append(txCtx, entries...); err != nil {
			return fmt.Errorf("append audit: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "record created",
		slog.String("user_id", userID.String()),
		slog.String("record_id", rec.ID.String()),
		slog.String("state", rec.State.String()),
	)
	return rec, nil
}
