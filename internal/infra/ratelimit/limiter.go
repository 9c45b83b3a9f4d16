package ratelimit

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"sync"
	"time"

	"zerowaste/config"
	"zerowaste/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

// tokenBucketScript refills KEYS[1] by whole intervals, then takes one token.
// Returns {allowed, remaining, retry_after_ms}.
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill_tokens = tonumber(ARGV[3])
local interval_ms = tonumber(ARGV[4])
local ttl_seconds = tonumber(ARGV[5])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
    tokens = capacity
    last_refill = now_ms
end

if interval_ms > 0 and refill_tokens > 0 then
    local elapsed = math.max(0, now_ms - last_refill)
    local intervals = math.floor(elapsed / interval_ms)
    if intervals > 0 then
        tokens = math.min(capacity, tokens + (intervals * refill_tokens))
        last_refill = last_refill + (intervals * interval_ms)
    end
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
    allowed = 1
    tokens = tokens - 1
else
    retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return { allowed, tokens, retry_after_ms }
`)

const (
	defaultPrefix         = "rl"
	defaultCapacity       = 10
	defaultRefillTokens   = 1
	defaultRefillInterval = 6 * time.Second
	defaultTTL            = 10 * time.Minute
)

// LimiterParams holds dependencies for the RateLimiter, injected by Fx
type LimiterParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Redis  *redis.Client `optional:"true"`
}

// NewRateLimiter picks the Redis bucket when a client is available, the in-process one otherwise,
// and a limiter that always allows when rate limiting is disabled
func NewRateLimiter(params LimiterParams) service.RateLimiter {
	cfg := normalize(params.Config.RateLimit)
	if !cfg.Enabled {
		params.Logger.Info("Rate limiting disabled")

		return allowAll{}
	}

	if params.Redis != nil {
		return NewRedisLimiter(params.Redis, cfg, time.Now)
	}

	return NewMemoryLimiter(cfg)
}

func normalize(in *config.RateLimitConfig) config.RateLimitConfig {
	if in == nil {
		return config.RateLimitConfig{}
	}

	cfg := *in
	if cfg.Prefix == "" {
		cfg.Prefix = defaultPrefix
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = defaultCapacity
	}
	if cfg.RefillTokens <= 0 {
		cfg.RefillTokens = defaultRefillTokens
	}
	if cfg.RefillInterval <= 0 {
		cfg.RefillInterval = defaultRefillInterval
	}
	if cfg.TTL < time.Second {
		cfg.TTL = defaultTTL
	}

	return cfg
}

type allowAll struct{}

func (allowAll) Allow(context.Context, string) (service.RateDecision, error) {
	return service.RateDecision{Allowed: true, Remaining: math.MaxInt64}, nil
}

type redisLimiter struct {
	client *redis.Client
	cfg    config.RateLimitConfig
	now    func() time.Time
}

// NewRedisLimiter creates a token bucket shared by every replica through Redis
func NewRedisLimiter(client *redis.Client, cfg config.RateLimitConfig, now func() time.Time) service.RateLimiter {
	return &redisLimiter{client: client, cfg: normalize(&cfg), now: now}
}

func (l *redisLimiter) Allow(ctx context.Context, key string) (service.RateDecision, error) {
	args := []any{
		l.now().UnixMilli(),
		l.cfg.Capacity,
		l.cfg.RefillTokens,
		l.cfg.RefillInterval.Milliseconds(),
		int64(l.cfg.TTL / time.Second),
	}

	vals, err := tokenBucketScript.Run(ctx, l.client, []string{l.cfg.Prefix + ":" + key}, args...).Slice()
	if err != nil {
		return service.RateDecision{}, errors.Wrap(err, "run token bucket script")
	}
	if len(vals) != 3 {
		return service.RateDecision{}, errors.Errorf("unexpected token bucket result: %v", vals)
	}

	return service.RateDecision{
		Allowed:    asInt64(vals[0]) == 1,
		Limit:      l.cfg.Capacity,
		Remaining:  asInt64(vals[1]),
		RetryAfter: time.Duration(asInt64(vals[2])) * time.Millisecond,
	}, nil
}

func asInt64(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case float64:
		return int64(t)
	case string:
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return n
		}
	}

	return 0
}

// memoryLimiter keeps one x/time/rate bucket per key in this process.
// Buckets untouched for cfg.TTL are dropped on the next sweep.
type memoryLimiter struct {
	cfg   config.RateLimitConfig
	every rate.Limit
	now   func() time.Time

	mu        sync.Mutex
	buckets   map[string]*memoryBucket
	lastSweep time.Time
}

type memoryBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewMemoryLimiter creates a per-process token bucket for single-instance deployments
func NewMemoryLimiter(cfg config.RateLimitConfig) service.RateLimiter {
	return newMemoryLimiter(cfg, time.Now)
}

func newMemoryLimiter(cfg config.RateLimitConfig, now func() time.Time) *memoryLimiter {
	cfg = normalize(&cfg)

	return &memoryLimiter{
		cfg:       cfg,
		every:     rate.Every(cfg.RefillInterval / time.Duration(cfg.RefillTokens)),
		now:       now,
		buckets:   make(map[string]*memoryBucket),
		lastSweep: now(),
	}
}

func (l *memoryLimiter) Allow(_ context.Context, key string) (service.RateDecision, error) {
	now := l.now()

	l.mu.Lock()
	l.sweepLocked(now)
	entry, ok := l.buckets[key]
	if !ok {
		entry = &memoryBucket{limiter: rate.NewLimiter(l.every, l.cfg.Capacity)}
		l.buckets[key] = entry
	}
	entry.lastSeen = now
	bucket := entry.limiter
	l.mu.Unlock()

	reservation := bucket.ReserveN(now, 1)
	delay := reservation.DelayFrom(now)
	if delay > 0 {
		reservation.CancelAt(now)

		return service.RateDecision{
			Allowed:    false,
			Limit:      l.cfg.Capacity,
			Remaining:  0,
			RetryAfter: delay,
		}, nil
	}

	return service.RateDecision{
		Allowed:   true,
		Limit:     l.cfg.Capacity,
		Remaining: int64(bucket.TokensAt(now)),
	}, nil
}

// sweepLocked drops idle buckets at most once per TTL. Callers hold l.mu.
func (l *memoryLimiter) sweepLocked(now time.Time) {
	if now.Sub(l.lastSweep) < l.cfg.TTL {
		return
	}

	for key, entry := range l.buckets {
		if now.Sub(entry.lastSeen) >= l.cfg.TTL {
			delete(l.buckets, key)
		}
	}
	l.lastSweep = now
}

func (l *memoryLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.buckets)
}

// Module provides the rate limiting FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRedisClient, NewRateLimiter),
)
