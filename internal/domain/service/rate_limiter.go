package service

import (
	"context"
	"time"
)

// RateDecision is the outcome of one rate limit check.
type RateDecision struct {
	Allowed    bool
	Limit      int
	Remaining  int64
	RetryAfter time.Duration
}

// RateLimiter consumes one token from the bucket identified by key.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (RateDecision, error)
}
