package middleware

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"task-manager/domain/ports"
	"task-manager/pkg/logger"
	"task-manager/pkg/utils"
)

// RateLimitMiddleware limits requests per client IP. Limiter failures let
// the request through.
func RateLimitMiddleware(limiter ports.RateLimiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result, err := limiter.Allow(c.UserContext(), c.IP())
		if err != nil {
			logger.WarnContext(c.UserContext(), "Rate limit check failed", "ip", c.IP(), "error", err)
			return c.Next()
		}

		c.Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))

		if !result.Allowed {
			retryAfter := int(math.Ceil(result.RetryAfter.Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(retryAfter))
			logger.WarnContext(c.UserContext(), "Rate limit exceeded", "ip", c.IP(), "limit", result.Limit)
			return utils.TooManyRequestsResponse(c)
		}

		return c.Next()
	}
}
