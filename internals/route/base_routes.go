package routes

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"schooladmin_backend/internals/middlewares"
)

func BaseRoutes(app *fiber.App) {
	// ❤️ Health check (anti-cold start)
	app.Get("/health", func(c *fiber.Ctx) error {
		c.Set("X-Uptime-Seconds", strconv.Itoa(int(time.Since(startTime).Seconds())))
		return c.SendString("ok")
	})

	app.Get("/metrics", middlewares.MetricsHandler())
}
