package middleware

import (
	"log/slog"
	"math"
	"strconv"

	deliverycontext "zerowaste/internal/delivery/context"
	domainerrors "zerowaste/internal/domain/errors"
	"zerowaste/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	HeaderRateLimitLimit     = "X-RateLimit-Limit"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
)

// RateLimitMiddlewareParams holds dependencies for RateLimitMiddleware, injected by Fx.
type RateLimitMiddlewareParams struct {
	fx.In

	Limiter service.RateLimiter
	Logger  *slog.Logger
}

// RateLimitMiddleware throttles credential endpoints per client IP.
type RateLimitMiddleware struct {
	limiter service.RateLimiter
	logger  *slog.Logger
}

// NewRateLimitMiddleware creates a new rate limiting middleware
func NewRateLimitMiddleware(params RateLimitMiddlewareParams) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: params.Limiter,
		logger:  params.Logger,
	}
}

// Limit returns a middleware drawing from the bucket of scope and the client IP.
// A limiter outage lets the request through.
func (m *RateLimitMiddleware) Limit(scope string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := scope + ":" + c.RealIP()

			decision, err := m.limiter.Allow(ctx, key)
			if err != nil {
				deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Rate limiter unavailable, allowing request",
					slog.String("scope", scope),
					slog.Any("error", err),
				)

				return next(c)
			}

			header := c.Response().Header()
			if decision.Limit > 0 {
				header.Set(HeaderRateLimitLimit, strconv.Itoa(decision.Limit))
				header.Set(HeaderRateLimitRemaining, strconv.FormatInt(max(decision.Remaining, 0), 10))
			}

			if !decision.Allowed {
				seconds := int(math.Ceil(decision.RetryAfter.Seconds()))
				header.Set(echo.HeaderRetryAfter, strconv.Itoa(max(seconds, 1)))

				return domainerrors.ErrRateLimited
			}

			return next(c)
		}
	}
}
