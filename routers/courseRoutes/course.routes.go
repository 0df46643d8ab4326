package courseRoutes

import (
	controllers "aipartners/controllers/course"
	"aipartners/middleware"
	validators "aipartners/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the public catalog and admin course management
// routes. Order matters: the curriculum delete route must be registered
// before the :slug wildcard.
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses")

	// Admin course and curriculum management
	courseGroup.Post("/", middleware.JWTMiddleware, middleware.RequireAdmin, validators.CreateCourse(), controllers.CreateCourse)
	courseGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireAdmin, validators.UpdateCourse(), controllers.UpdateCourse)
	courseGroup.Post("/:id/curriculum", middleware.JWTMiddleware, middleware.RequireAdmin, validators.AddCurriculumItem(), controllers.AddCurriculumItem)
	courseGroup.Delete("/curriculum/:itemId", middleware.JWTMiddleware, middleware.RequireAdmin, validators.DeleteCurriculumItem(), controllers.DeleteCurriculumItem)

	// Public catalog
	courseGroup.Get("/", controllers.GetCourses)
	courseGroup.Get("/:slug", controllers.GetCourseBySlug)
}
