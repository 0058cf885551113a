package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// newLimiter membatasi per IP; kelebihan request dijawab 429 lewat ErrorHandler.
func newLimiter(max int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return fiber.NewError(fiber.StatusTooManyRequests, message)
		},
	})
}

// GlobalRateLimiter: untuk semua endpoint biasa
func GlobalRateLimiter() fiber.Handler {
	return newLimiter(100, 1*time.Minute, "too many requests, try again later")
}

// LoginRateLimiter: untuk route login (lebih ketat)
func LoginRateLimiter() fiber.Handler {
	return newLimiter(5, 1*time.Minute, "too many login attempts, try again in a minute")
}

// RegisterRateLimiter: untuk route register
func RegisterRateLimiter() fiber.Handler {
	return newLimiter(3, 5*time.Minute, "too many registrations, try again in a few minutes")
}
