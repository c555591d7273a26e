package middleware

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/diegogutti007/sistema-golden-backend/internal/config"
)

// localBuckets holds one limiter per key in process memory. Idle keys are
// dropped after the configured TTL.
type localBuckets struct {
	mu        sync.Mutex
	limiters  map[string]*localEntry
	limit     rate.Limit
	burst     int
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type localEntry struct {
	lim  *rate.Limiter
	seen time.Time
}

func newLocalBuckets(cfg config.RateLimitConfig) *localBuckets {
	every := cfg.RefillInterval / time.Duration(cfg.RefillTokens)
	return &localBuckets{
		limiters: make(map[string]*localEntry),
		limit:    rate.Every(every),
		burst:    cfg.Capacity,
		ttl:      cfg.TTL,
		now:      time.Now,
	}
}

func (b *localBuckets) take(_ context.Context, key string) (decision, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	b.sweep(now)

	e, ok := b.limiters[key]
	if !ok {
		e = &localEntry{lim: rate.NewLimiter(b.limit, b.burst)}
		b.limiters[key] = e
	}
	e.seen = now

	r := e.lim.ReserveN(now, 1)
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return decision{allowed: false, retry: delay}, nil
	}
	return decision{allowed: true, remaining: int64(e.lim.TokensAt(now))}, nil
}

func (b *localBuckets) sweep(now time.Time) {
	if now.Sub(b.lastSweep) < b.ttl {
		return
	}
	b.lastSweep = now
	for k, e := range b.limiters {
		if now.Sub(e.seen) > b.ttl {
			delete(b.limiters, k)
		}
	}
}
