package middleware

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/chamodKanishka/Cooking-Skill-Management-System/pkg/observability"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// RateLimit allows limit requests per client IP within window, counted in Redis.
// Redis errors let the request through. A nil client disables the limiter.
func RateLimit(client *redis.Client, limit int, window time.Duration, name string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if client == nil || limit <= 0 {
			return next
		}
		return func(c echo.Context) error {
			key := fmt.Sprintf("ratelimit:%s:%s", name, c.RealIP())

			count, err := hit(c.Request().Context(), client, key, window)
			if err != nil {
				log.Printf("Rate limiter %s unavailable: %v", name, err)
				return next(c)
			}
			if count > int64(limit) {
				observability.RateLimitedTotal.WithLabelValues(name).Inc()
				if ttl, err := client.TTL(c.Request().Context(), key).Result(); err == nil && ttl > 0 {
					c.Response().Header().Set("Retry-After", fmt.Sprintf("%d", int(ttl.Seconds())+1))
				}
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests, please try again later")
			}
			return next(c)
		}
	}
}

// hit counts one request. INCR and TTL share one MULTI/EXEC; any key left
// without an expiry, including one whose earlier EXPIRE failed, gets the window.
func hit(ctx context.Context, client *redis.Client, key string, window time.Duration) (int64, error) {
	var incr *redis.IntCmd
	var ttl *redis.DurationCmd
	if _, err := client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		ttl = pipe.TTL(ctx, key)
		return nil
	}); err != nil {
		return 0, err
	}
	if ttl.Val() < 0 {
		if err := client.Expire(ctx, key, window).Err(); err != nil {
			return 0, err
		}
	}
	return incr.Val(), nil
}
