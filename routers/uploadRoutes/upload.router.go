package uploadRoutes

import (
	controllers "aipartners/controllers/upload"
	"aipartners/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUploadRoutes(app *fiber.App) {
	app.Post("/api/upload", middleware.JWTMiddleware, middleware.RequireAdmin, controllers.UploadFile)
}
