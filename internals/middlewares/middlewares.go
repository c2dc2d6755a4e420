package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/OscarGirao89/FusionArte-sub000/internals/middlewares/logger"
)

// SetupMiddlewares installs the base middleware chain.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
}
