// file: internals/features/teachers/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"schooladmin_backend/internals/features/school/repository"
	"schooladmin_backend/internals/features/teachers/auth/controller"
	"schooladmin_backend/internals/features/teachers/auth/service"
	helperAuth "schooladmin_backend/internals/helpers/auth"
	rateLimiter "schooladmin_backend/internals/middlewares"
)

// AuthRoutes: register & login, both public; rate limited per IP when limit is set.
func AuthRoutes(r fiber.Router, repo *repository.EntityRepository, tokens *helperAuth.TokenService, limit bool) {
	authController := controller.NewAuthController(service.NewAuthService(repo, tokens))

	if limit {
		r.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
		r.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
		return
	}
	r.Post("/register", authController.Register)
	r.Post("/login", authController.Login)
}
