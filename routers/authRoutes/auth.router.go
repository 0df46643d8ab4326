package authRoutes

import (
	authControllers "aipartners/controllers/auth"
	"aipartners/middleware"
	authValidators "aipartners/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Get("/me", middleware.JWTMiddleware, authControllers.Me)
	authGroup.Post("/setup", authValidators.Setup(), authControllers.Setup)
}
