// Package threshold determines the nisab threshold for a basis metal,
// caching prices and falling back to configured constants when the price
// source is unavailable.
package threshold

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/zakat-tracker/internal/domain"
)

type priceSource interface {
	FetchPricePerGram(ctx context.Context, basis domain.ThresholdBasis, currency string) (domain.PriceQuote, error)
}

type priceCache interface {
	Get(ctx context.Context, basis domain.ThresholdBasis, currency string) (domain.Threshold, bool, error)
	Set(ctx context.Context, t domain.Threshold, ttl time.Duration) error
}

// Config holds the weights, fallback prices and cache policy.
type Config struct {
	Currency            string
	CacheTTL            time.Duration
	FetchTimeout        time.Duration
	GoldGrams           decimal.Decimal
	SilverGrams         decimal.Decimal
	FallbackGoldPrice   decimal.Decimal
	FallbackSilverPrice decimal.Decimal
}

// Service provides threshold lookups.
type Service struct {
	source priceSource
	cache  priceCache
	cfg    Config
	group  singleflight.Group
	log    *slog.Logger
	now    func() time.Time
}

// NewService creates a new threshold service.
func NewService(log *slog.Logger, source priceSource, cache priceCache, cfg Config) *Service {
	return &Service{
		source: source,
		cache:  cache,
		cfg:    cfg,
		log:    log.With("service", "threshold"),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// GetThreshold returns the current threshold for basis. A cached value is
// served while fresh. On a miss the price source is queried once per basis
// regardless of concurrent callers; if it fails the fallback constant is
// used and cached for the same TTL.
func (s *Service) GetThreshold(ctx context.Context, basis domain.ThresholdBasis) (domain.Threshold, error) {
	if !basis.IsValid() {
		return domain.Threshold{}, domain.NewValidationError("basis", "must be GOLD or SILVER")
	}

	if t, ok := s.cached(ctx, basis); ok {
		return t, nil
	}

	v, err, _ := s.group.Do(s.cfg.Currency+":"+string(basis), func() (any, error) {
		// Another caller may have filled the cache while we waited.
		if t, ok := s.cached(ctx, basis); ok {
			return t, nil
		}
		return s.load(ctx, basis)
	})
	if err != nil {
		return domain.Threshold{}, err
	}
	return v.(domain.Threshold), nil
}

// ThresholdFor resolves the threshold a record compares against. Rules with
// LowerOfBoth use whichever of gold and silver is lower; otherwise basis is
// used, defaulting to the methodology's basis.
func (s *Service) ThresholdFor(ctx context.Context, rules domain.MethodologyRules, basis domain.ThresholdBasis) (domain.Threshold, error) {
	if basis == "" {
		basis = rules.DefaultBasis
	}
	if !rules.LowerOfBoth {
		return s.GetThreshold(ctx, basis)
	}

	gold, err := s.GetThreshold(ctx, domain.ThresholdBasisGold)
	if err != nil {
		return domain.Threshold{}, err
	}
	silver, err := s.GetThreshold(ctx, domain.ThresholdBasisSilver)
	if err != nil {
		return domain.Threshold{}, err
	}
	if silver.Value.LessThan(gold.Value) {
		return silver, nil
	}
	return gold, nil
}

func (s *Service) cached(ctx context.Context, basis domain.ThresholdBasis) (domain.Threshold, bool) {
	t, ok, err := s.cache.Get(ctx, basis, s.cfg.Currency)
	if err != nil {
		s.log.WarnContext(ctx, "threshold cache read failed",
			slog.String("basis", string(basis)),
			slog.String("error", err.Error()),
		)
		return domain.Threshold{}, false
	}
	return t, ok
}

func (s *Service) load(ctx context.Context, basis domain.ThresholdBasis) (domain.Threshold, error) {
	grams := s.grams(basis)

	fetchCtx := ctx
	if s.cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, s.cfg.FetchTimeout)
		defer cancel()
	}

	var t domain.Threshold
	quote, err := s.source.FetchPricePerGram(fetchCtx, basis, s.cfg.Currency)
	if err == nil {
		t = domain.Threshold{
			Basis:        basis,
			Value:        grams.Mul(quote.PricePerGram).Round(2),
			PricePerGram: quote.PricePerGram,
			Grams:        grams,
			Currency:     s.cfg.Currency,
			AsOf:         quote.AsOf,
		}
	} else {
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			return domain.Threshold{}, ctx.Err()
		}
		s.log.WarnContext(ctx, "price source unavailable, using fallback",
			slog.String("basis", string(basis)),
			slog.String("error", err.Error()),
		)
		t, err = s.fallback(basis, grams)
		if err != nil {
			return domain.Threshold{}, err
		}
	}

	if err := s.cache.Set(ctx, t, s.cfg.CacheTTL); err != nil {
		s.log.WarnContext(ctx, "threshold cache write failed",
			slog.String("basis", string(basis)),
			slog.String("error", err.Error()),
		)
	}
	return t, nil
}

func (s *Service) fallback(basis domain.ThresholdBasis, grams decimal.Decimal) (domain.Threshold, error) {
	price := s.cfg.FallbackGoldPrice
	if basis == domain.ThresholdBasisSilver {
		price = s.cfg.FallbackSilverPrice
	}
	if !price.IsPositive() || !grams.IsPositive() {
		return domain.Threshold{}, fmt.Errorf("%s: no fallback configured: %w", basis, domain.ErrThresholdUnavailable)
	}
	return domain.Threshold{
		Basis:        basis,
		Value:        grams.Mul(price).Round(2),
		PricePerGram: price,
		Grams:        grams,
		Currency:     s.cfg.Currency,
		AsOf:         s.now(),
		Fallback:     true,
	}, nil
}

func (s *Service) grams(basis domain.ThresholdBasis) decimal.Decimal {
	if basis == domain.ThresholdBasisSilver {
		return s.cfg.SilverGrams
	}
	return s.cfg.GoldGrams
}
