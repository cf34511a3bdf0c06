package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"bootcampku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar sesuai urutan
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
