// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"schooladmin_backend/internals/configs"
	schoolRoute "schooladmin_backend/internals/features/school/route"
	"schooladmin_backend/internals/features/school/repository"
	authRoute "schooladmin_backend/internals/features/teachers/auth/route"
	helper "schooladmin_backend/internals/helpers"
	helperAuth "schooladmin_backend/internals/helpers/auth"
	"schooladmin_backend/internals/middlewares"
	authMiddleware "schooladmin_backend/internals/middlewares/auth"
)

var startTime time.Time

// Deps is everything the HTTP surface needs, built once in main.
type Deps struct {
	Config configs.Config
	Repo   *repository.EntityRepository
	Tokens *helperAuth.TokenService
}

// NewApp builds the fiber app with the global middlewares and all routes.
func NewApp(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		// 🚀 sonic for JSON
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          helper.ErrorHandler,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})

	middlewares.SetupMiddlewares(app, d.Config)
	SetupRoutes(app, d)
	return app
}

func SetupRoutes(app *fiber.App, d Deps) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app)

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, d.Repo, d.Tokens, d.Config.RateLimit)

	log.Println("[INFO] Setting up SchoolRoutes (Auth gate)...")
	schoolRoute.SchoolRoutes(app, d.Repo, authMiddleware.AuthJWT(d.Tokens))
}
