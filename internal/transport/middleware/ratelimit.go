package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/heartmarshall/zakat-tracker/pkg/ctxutil"
)

// KeyFunc picks the bucket a request is charged to.
type KeyFunc func(r *http.Request) string

// OperatorOrIP keys authenticated requests by operator subject and the rest
// by client host.
func OperatorOrIP(r *http.Request) string {
	if sub, ok := ctxutil.OperatorFromCtx(r.Context()); ok {
		return "op:" + sub
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}

// RateLimiter is a per-key token bucket refilled at perMinute tokens per
// minute with a burst of perMinute. Idle buckets are swept in the
// background until Stop.
type RateLimiter struct {
	perMinute int
	idleTTL   time.Duration
	now       func() time.Time

	mu      sync.Mutex
	buckets map[string]*bucket

	stop chan struct{}
	once sync.Once
}

type bucket struct {
	tokens float64
	last   time.Time
}

func NewRateLimiter(perMinute int, sweepEvery time.Duration) *RateLimiter {
	if perMinute < 1 {
		perMinute = 1
	}
	rl := &RateLimiter{
		perMinute: perMinute,
		idleTTL:   10 * time.Minute,
		now:       time.Now,
		buckets:   make(map[string]*bucket),
		stop:      make(chan struct{}),
	}
	go rl.sweepLoop(sweepEvery)
	return rl
}

// Stop ends the sweeper. Safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Middleware rejects requests over the limit for their key with 429 and a
// Retry-After hint in whole seconds.
func (rl *RateLimiter) Middleware(key KeyFunc) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if wait, ok := rl.take(key(r)); !ok {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"rate limit exceeded"}` + "\n"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// take spends one token for key. When none is left it reports how long until
// the next one accrues.
func (rl *RateLimiter) take(key string) (time.Duration, bool) {
	now := rl.now()
	burst := float64(rl.perMinute)
	perSecond := burst / 60

	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{tokens: burst, last: now}
		rl.buckets[key] = b
	}
	if elapsed := now.Sub(b.last).Seconds(); elapsed > 0 {
		b.tokens = math.Min(burst, b.tokens+elapsed*perSecond)
		b.last = now
	}
	if b.tokens < 1 {
		return time.Duration((1 - b.tokens) / perSecond * float64(time.Second)), false
	}
	b.tokens--
	return 0, true
}

func (rl *RateLimiter) sweep() {
	cutoff := rl.now().Add(-rl.idleTTL)
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, b := range rl.buckets {
		if b.last.Before(cutoff) {
			delete(rl.buckets, key)
		}
	}
}

func (rl *RateLimiter) sweepLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}
