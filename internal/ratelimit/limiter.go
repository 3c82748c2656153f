// Package ratelimit provides fixed-window request rate limiting.
//
// Two backends exist: an in-process limiter backed by a TTL cache (the
// default), and a Redis-backed limiter in internal/cache for deployments
// running more than one instance.
package ratelimit

import (
	"context"
	"time"
)

// Result contains the outcome of a rate limit check.
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int64
	ResetAt    time.Time
	RetryAfter time.Duration
}

// Limiter checks and updates the request count for a key.
type Limiter interface {
	Allow(ctx context.Context, key string) (*Result, error)
}
