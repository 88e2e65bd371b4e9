package record

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/zakat-tracker/internal/domain"
)

// Finalize freezes the record's figures and asset snapshot. Allowed once the
// waiting period is complete, and again after an unlock.
func (s *Service) Finalize(ctx context.Context, id uuid.UUID) (*domain.ObligationRecord, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	rec, err := s.mutate(ctx, userID, id, "finalize", "finalized",
		func(ctx context.Context, rec *domain.ObligationRecord, now time.Time) error {
			if !rec.State.CanTransitionTo(domain.RecordStateFinalized) {
				return domain.NewStateConflict("finalize", rec.State)
			}
			sum, err := s.recompute(ctx, rec, now)
			if err != nil {
				return err
			}
			return rec.Finalize(sum.Assets, now)
		})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "record finalized",
		slog.String("user_id", userID.String()),
		slog.String("record_id", rec.ID.String()),
		slog.String("levy", rec.LevyAmount.StringFixed(2)),
	)
	return rec, nil
}

// Unlock reopens a finalized record for correction. reason is required and
// stored in the audit trail.
func (s *Service) Unlock(ctx context.Context, id uuid.UUID, reason string) (*domain.ObligationRecord, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateReason(reason); err != nil {
		return nil, err
	}

	rec, err := s.mutate(ctx, userID, id, "unlock", reason,
		func(_ context.Context, rec *domain.ObligationRecord, now time.Time) error {
			return rec.Unlock(reason, now)
		})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "record unlocked",
		slog.String("user_id", userID.String()),
		slog.String("record_id", rec.ID.String()),
	)
	return rec, nil
}
