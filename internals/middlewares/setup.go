package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"

	"schooladmin_backend/internals/configs"
	"schooladmin_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global sesuai urutan: recover paling luar.
// Limiter global hanya dipasang kalau cfg.RateLimit aktif.
func SetupMiddlewares(app *fiber.App, cfg configs.Config) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestContext(cfg.RequestTimeout))
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware(cfg.CORSAllowOrigins))
	if cfg.RateLimit {
		app.Use(GlobalRateLimiter())
	}
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(Metrics())
}
