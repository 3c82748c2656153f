package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/subcheck/subcheck/internal/ratelimit"
)

// rateLimitPrefix is the Redis key prefix for verification rate limits.
const rateLimitPrefix = "ratelimit:verify:"

// fixedWindowScript implements the fixed-window counter atomically. The
// first request for a key starts the window and sets its TTL; subsequent
// requests increment the counter until the key expires.
var fixedWindowScript = redis.NewScript(`
	local key = KEYS[1]
	local limit = tonumber(ARGV[1])
	local window = tonumber(ARGV[2])  -- window length in seconds

	local count = redis.call('INCR', key)
	if count == 1 then
		redis.call('EXPIRE', key, window)
	end

	local ttl = redis.call('TTL', key)
	if ttl < 0 then
		ttl = window
	end

	local allowed = 0
	if count <= limit then
		allowed = 1
	end

	return {allowed, count, ttl}
`)

// Limiter is a Redis-backed fixed-window rate limiter.
type Limiter struct {
	cache  *Cache
	limit  int
	period time.Duration
}

// NewLimiter creates a Redis limiter allowing limit requests per key per period.
func NewLimiter(cache *Cache, limit int, period time.Duration) *Limiter {
	return &Limiter{cache: cache, limit: limit, period: period}
}

// Allow checks and updates the rate limit for a key. Fails open on Redis
// errors so a cache outage never blocks verification traffic.
func (l *Limiter) Allow(ctx context.Context, key string) (*ratelimit.Result, error) {
	redisKey := rateLimitPrefix + hashKey(key)

	values, err := fixedWindowScript.Run(ctx, l.cache.client,
		[]string{redisKey},
		l.limit, int(l.period.Seconds()),
	).Int64Slice()
	if err != nil {
		return &ratelimit.Result{
			Allowed:   true,
			Limit:     l.limit,
			Remaining: int64(l.limit),
			ResetAt:   time.Now().Add(l.period),
		}, nil
	}

	allowed := values[0] == 1
	count := values[1]
	ttl := time.Duration(values[2]) * time.Second

	result := &ratelimit.Result{
		Allowed: allowed,
		Limit:   l.limit,
		ResetAt: time.Now().Add(ttl),
	}
	if remaining := int64(l.limit) - count; remaining > 0 {
		result.Remaining = remaining
	}
	if !allowed {
		result.RetryAfter = ttl
	}

	return result, nil
}

// hashKey creates a truncated SHA256 hash of a limiter key. Keys embed raw
// client addresses and user agents; hashing keeps them out of Redis.
func hashKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:8])
}
