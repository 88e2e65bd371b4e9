package threshold

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/heartmarshall/zakat-tracker/internal/domain"
)

type memoryEntry struct {
	threshold domain.Threshold
	expiresAt time.Time
}

// MemoryCache is the in-process threshold cache used by single-replica
// deployments.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryCache creates an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func memoryKey(basis domain.ThresholdBasis, currency string) string {
	return strings.ToUpper(currency) + ":" + string(basis)
}

// Get returns a fresh cached threshold.
func (c *MemoryCache) Get(_ context.Context, basis domain.ThresholdBasis, currency string) (domain.Threshold, bool, error) {
	c.mu.RLock()
	e, ok := c.entries[memoryKey(basis, currency)]
	c.mu.RUnlock()
	if !ok || !c.now().Before(e.expiresAt) {
		return domain.Threshold{}, false, nil
	}
	return e.threshold, true, nil
}

// Set stores t until ttl elapses.
func (c *MemoryCache) Set(_ context.Context, t domain.Threshold, ttl time.Duration) error {
	c.mu.Lock()
	c.entries[memoryKey(t.Basis, t.Currency)] = memoryEntry{threshold: t, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
	return nil
}
