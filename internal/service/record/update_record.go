package record

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/zakat-tracker/internal/domain"
)

// UpdateRecord changes methodology, basis, selection or rate of a DRAFT or
// UNLOCKED record and recomputes its figures.
func (s *Service) UpdateRecord(ctx context.Context, input UpdateRecordInput) (*domain.ObligationRecord, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	rec, err := s.mutate(ctx, userID, input.RecordID, "update record", "updated",
		func(ctx context.Context, rec *domain.ObligationRecord, now time.Time) error {
			if !rec.State.IsEditable() {
				return domain.NewStateConflict("update record", rec.State)
			}

			if input.Methodology != nil && *input.Methodology != rec.Methodology {
				rec.Methodology = *input.Methodology
				if input.Basis == nil {
					rules, _ := domain.RulesFor(rec.Methodology)
					rec.Basis = rules.DefaultBasis
				}
			}
			if input.Basis != nil {
				rec.Basis = *input.Basis
			}
			if input.AssetRefs != nil {
				rec.AssetRefs = *input.AssetRefs
			}

			rules, _ := domain.RulesFor(rec.Methodology)
			if input.LevyRate != nil {
				if errs := validateRate(rules.RateOverride, *input.LevyRate); errs != nil {
					return domain.NewValidationErrors(errs)
				}
				rec.LevyRate = *input.LevyRate
			} else if !rules.RateOverride {
				rec.LevyRate = domain.StandardLevyRate
			}

			if _, err := s.recompute(ctx, rec, now); err != nil {
				return err
			}
			return s.track(rec, now)
		})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "record updated",
		slog.String("user_id", userID.String()),
		slog.String("record_id", rec.ID.String()),
		slog.String("state", rec.State.String()),
	)
	return rec, nil
}
