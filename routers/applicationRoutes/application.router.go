package applicationRoutes

import (
	controllers "aipartners/controllers/application"
	"aipartners/middleware"
	validators "aipartners/validators/application"

	"github.com/gofiber/fiber/v2"
)

func SetupApplicationRoutes(app *fiber.App) {
	applicationGroup := app.Group("/api/applications")

	// Admin member list; registered before the :id patch route
	applicationGroup.Get("/members", middleware.JWTMiddleware, middleware.RequireAdmin, controllers.GetMembers)

	// Public enrollment submission
	applicationGroup.Post("/", validators.CreateApplication(), controllers.CreateApplication)

	// Admin application management
	applicationGroup.Get("/", middleware.JWTMiddleware, middleware.RequireAdmin, controllers.GetApplications)
	applicationGroup.Patch("/:id", middleware.JWTMiddleware, middleware.RequireAdmin, validators.UpdateApplicationStatus(), controllers.UpdateApplicationStatus)
}
