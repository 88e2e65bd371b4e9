// Package cache holds the Redis-backed threshold price cache shared across
// replicas.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/zakat-tracker/internal/domain"
)

// Connect initializes a Redis client from URL or host:port input.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	var opt *redis.Options
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		opt = parsed
	} else {
		opt = &redis.Options{Addr: addr, Password: password, DB: db}
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// ThresholdStore caches thresholds as JSON under prefix+currency+":"+basis.
type ThresholdStore struct {
	client *redis.Client
	prefix string
}

// NewThresholdStore creates a ThresholdStore.
func NewThresholdStore(client *redis.Client, prefix string) *ThresholdStore {
	return &ThresholdStore{client: client, prefix: prefix}
}

type storedThreshold struct {
	Basis        string    `json:"basis"`
	Value        string    `json:"value"`
	PricePerGram string    `json:"price_per_gram"`
	Grams        string    `json:"grams"`
	Currency     string    `json:"currency"`
	AsOf         time.Time `json:"as_of"`
	Fallback     bool      `json:"fallback"`
}

func (s *ThresholdStore) key(basis domain.ThresholdBasis, currency string) string {
	return s.prefix + strings.ToUpper(currency) + ":" + string(basis)
}

// Get returns the cached threshold. ok is false on a miss.
func (s *ThresholdStore) Get(ctx context.Context, basis domain.ThresholdBasis, currency string) (domain.Threshold, bool, error) {
	raw, err := s.client.Get(ctx, s.key(basis, currency)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Threshold{}, false, nil
	}
	if err != nil {
		return domain.Threshold{}, false, fmt.Errorf("redis get threshold: %w", err)
	}

	var st storedThreshold
	if err := json.Unmarshal(raw, &st); err != nil {
		return domain.Threshold{}, false, fmt.Errorf("decode cached threshold: %w", err)
	}
	t, err := st.toDomain()
	if err != nil {
		return domain.Threshold{}, false, fmt.Errorf("decode cached threshold: %w", err)
	}
	return t, true, nil
}

// Set stores t for ttl.
func (s *ThresholdStore) Set(ctx context.Context, t domain.Threshold, ttl time.Duration) error {
	raw, err := json.Marshal(storedThreshold{
		Basis:        string(t.Basis),
		Value:        t.Value.String(),
		PricePerGram: t.PricePerGram.String(),
		Grams:        t.Grams.String(),
		Currency:     t.Currency,
		AsOf:         t.AsOf,
		Fallback:     t.Fallback,
	})
	if err != nil {
		return fmt.Errorf("encode threshold: %w", err)
	}
	if err := s.client.Set(ctx, s.key(t.Basis, t.Currency), raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set threshold: %w", err)
	}
	return nil
}
