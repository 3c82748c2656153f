package ratelimit

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// window tracks one key's request count within the current fixed window.
type window struct {
	count   int64
	resetAt time.Time
}

// MemoryLimiter is a fixed-window limiter held entirely in process memory.
// Stale windows are evicted by the underlying TTL cache's janitor.
type MemoryLimiter struct {
	mu      sync.Mutex
	windows *gocache.Cache
	limit   int
	period  time.Duration

	// now is injectable for tests.
	now func() time.Time
}

// NewMemoryLimiter creates a limiter allowing limit requests per key per
// period. The backing cache evicts windows that have been expired for at
// least one full period.
func NewMemoryLimiter(limit int, period time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		windows: gocache.New(period, 2*period),
		limit:   limit,
		period:  period,
		now:     time.Now,
	}
}

// Allow checks the key against the current window, starting a new window
// when none is active. Never returns an error; the error return satisfies
// the Limiter interface shared with the Redis backend.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (*Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	var win *window
	if v, ok := l.windows.Get(key); ok {
		win = v.(*window)
	}

	if win == nil || !now.Before(win.resetAt) {
		win = &window{count: 0, resetAt: now.Add(l.period)}
		l.windows.Set(key, win, l.period)
	}

	result := &Result{
		Limit:   l.limit,
		ResetAt: win.resetAt,
	}

	if win.count >= int64(l.limit) {
		result.Allowed = false
		result.Remaining = 0
		result.RetryAfter = win.resetAt.Sub(now)
		return result, nil
	}

	win.count++
	result.Allowed = true
	result.Remaining = int64(l.limit) - win.count
	return result, nil
}
