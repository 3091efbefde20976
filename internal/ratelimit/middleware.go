package ratelimit

import (
	"time"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/client-registry/pkg/util"
)

// New returns a Fiber middleware that admits at most max requests per client
// IP within the sliding window. Each route is configured with its own
// (max, window) pair over a shared limiter.
func New(limiter *Limiter, max int, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !limiter.Admit(c.IP(), max, window) {
			return apperrors.NewRateLimited()
		}
		return c.Next()
	}
}
