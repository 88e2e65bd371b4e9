package config

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if len(c.Cipher.Secret) < 16 {
		return fmt.Errorf("cipher.secret must be at least 16 characters (got %d)", len(c.Cipher.Secret))
	}

	if err := c.Threshold.validate(); err != nil {
		return fmt.Errorf("threshold: %w", err)
	}

	if c.Threshold.CacheBackend == "redis" && c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr is required when threshold.cache_backend is redis")
	}

	if err := c.Analytics.validate(); err != nil {
		return fmt.Errorf("analytics: %w", err)
	}

	if c.Hawl.BatchSize <= 0 {
		return fmt.Errorf("hawl.batch_size must be > 0 (got %d)", c.Hawl.BatchSize)
	}
	if c.Hawl.MaxRetries <= 0 {
		return fmt.Errorf("hawl.max_retries must be > 0 (got %d)", c.Hawl.MaxRetries)
	}

	if c.Reminder.Lookahead <= 0 || c.Reminder.DedupeWindow <= 0 {
		return fmt.Errorf("reminder.lookahead and reminder.dedupe_window must be > 0")
	}

	if c.Jobs.ShutdownTimeout <= 0 {
		return fmt.Errorf("jobs.shutdown_timeout must be > 0 (got %s)", c.Jobs.ShutdownTimeout)
	}

	return nil
}

func (t *ThresholdConfig) validate() error {
	switch t.CacheBackend {
	case "memory", "redis":
	default:
		return fmt.Errorf("cache_backend must be memory or redis (got %q)", t.CacheBackend)
	}
	if t.CacheTTL <= 0 {
		return fmt.Errorf("cache_ttl must be > 0 (got %s)", t.CacheTTL)
	}
	if strings.TrimSpace(t.Currency) == "" {
		return fmt.Errorf("currency is required")
	}
	t.Currency = strings.ToUpper(strings.TrimSpace(t.Currency))

	var err error
	if t.GoldGrams, err = ParseDecimal(t.GoldGramsRaw); err != nil {
		return fmt.Errorf("gold_grams: %w", err)
	}
	if t.SilverGrams, err = ParseDecimal(t.SilverGramsRaw); err != nil {
		return fmt.Errorf("silver_grams: %w", err)
	}
	if t.FallbackGoldPrice, err = ParseDecimal(t.FallbackGoldPriceRaw); err != nil {
		return fmt.Errorf("fallback_gold_price: %w", err)
	}
	if t.FallbackSilverPrice, err = ParseDecimal(t.FallbackSilverPriceRaw); err != nil {
		return fmt.Errorf("fallback_silver_price: %w", err)
	}
	return nil
}

func (a *AnalyticsConfig) validate() error {
	v, err := ParseDecimal(a.TrendThresholdRaw)
	if err != nil {
		return fmt.Errorf("trend_threshold: %w", err)
	}
	if v.IsNegative() {
		return fmt.Errorf("trend_threshold must be >= 0 (got %s)", v)
	}
	a.TrendThreshold = v
	if a.RegenBatchSize <= 0 {
		return fmt.Errorf("regen_batch_size must be > 0 (got %d)", a.RegenBatchSize)
	}
	return nil
}

// ParseDecimal parses a non-negative decimal. An empty string yields zero,
// which disables the corresponding fallback.
func ParseDecimal(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid decimal %q: %w", raw, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("must be >= 0 (got %s)", d)
	}
	return d, nil
}
