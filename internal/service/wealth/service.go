package wealth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/zakat-tracker/internal/domain"
)

type assetSource interface {
	ListEligible(ctx context.Context, userID uuid.UUID) ([]domain.Asset, error)
}

// Service resolves live assets from the asset collaborator before
// aggregating. Nothing is cached.
type Service struct {
	assets assetSource
	log    *slog.Logger
}

// NewService creates a new wealth service.
func NewService(log *slog.Logger, assets assetSource) *Service {
	return &Service{
		assets: assets,
		log:    log.With("service", "wealth"),
	}
}

// AggregateForUser fetches the user's eligible assets and aggregates those
// referenced by refs.
func (s *Service) AggregateForUser(ctx context.Context, userID uuid.UUID, refs []uuid.UUID, rules domain.MethodologyRules, currency string) (domain.WealthSummary, error) {
	assets, err := s.assets.ListEligible(ctx, userID)
	if err != nil {
		return domain.WealthSummary{}, fmt.Errorf("list eligible assets: %w", err)
	}

	sum := Aggregate(assets, refs, rules, currency)
	if sum.SkippedCurrency > 0 {
		s.log.DebugContext(ctx, "assets in other currencies skipped",
			slog.String("user_id", userID.String()),
			slog.Int("skipped", sum.SkippedCurrency),
		)
	}
	return sum, nil
}

// CurrentRefs returns the ids of the user's currently eligible assets.
func (s *Service) CurrentRefs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	assets, err := s.assets.ListEligible(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list eligible assets: %w", err)
	}
	return AssetIDs(assets), nil
}
