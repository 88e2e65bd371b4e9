package record

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/zakat-tracker/internal/domain"
)

// Recalculate refreshes the figures of a live record from current asset
// values and thresholds. A DRAFT record that now meets the threshold starts
// its waiting period.
func (s *Service) Recalculate(ctx context.Context, id uuid.UUID) (*domain.ObligationRecord, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	rec, err := s.mutate(ctx, userID, id, "recalculate", "recalculated",
		func(ctx context.Context, rec *domain.ObligationRecord, now time.Time) error {
			switch rec.State {
			case domain.RecordStateDraft, domain.RecordStateActiveTracking, domain.RecordStateUnlocked:
			default:
				return domain.NewStateConflict("recalculate", rec.State)
			}
			if _, err := s.recompute(ctx, rec, now); err != nil {
				return err
			}
			return s.track(rec, now)
		})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "record recalculated",
		slog.String("record_id", rec.ID.String()),
		slog.String("state", rec.State.String()),
	)
	return rec, nil
}

// RefreshAssets replaces the selection of a DRAFT or UNLOCKED record with the
// user's current eligible assets and recomputes. The state is left as is; a
// DRAFT that now meets the threshold activates on the next Recalculate.
func (s *Service) RefreshAssets(ctx context.Context, id uuid.UUID) (*domain.ObligationRecord, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	rec, err := s.mutate(ctx, userID, id, "refresh assets", "assets refreshed",
		func(ctx context.Context, rec *domain.ObligationRecord, now time.Time) error {
			if !rec.State.IsEditable() {
				return domain.NewStateConflict("refresh assets", rec.State)
			}
			refs, err := s.wealth.CurrentRefs(ctx, rec.UserID)
			if err != nil {
				return fmt.Errorf("current assets: %w", err)
			}
			rec.AssetRefs = refs
			_, err = s.recompute(ctx, rec, now)
			return err
		})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "record assets refreshed",
		slog.String("record_id", rec.ID.String()),
		slog.Int("assets", len(rec.AssetRefs)),
	)
	return rec, nil
}
