package main

import (
	"log"
	"strings"
	"time"

	"aipartners/config"
	"aipartners/database"
	"aipartners/middleware"
	applicationRoutes "aipartners/routers/applicationRoutes"
	authRoutes "aipartners/routers/authRoutes"
	courseRoutes "aipartners/routers/courseRoutes"
	uploadRoutes "aipartners/routers/uploadRoutes"
	voucherRoutes "aipartners/routers/voucherRoutes"
	"aipartners/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	utils.StartVoucherScheduler()

	app := fiber.New(fiber.Config{
		BodyLimit:    utils.MaxUploadSize + 1024*1024, // multipart overhead
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.AppConfig.CorsOrigin,
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Uploaded curriculum attachments
	app.Static("/uploads", config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app)
	voucherRoutes.SetupVoucherRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	applicationRoutes.SetupApplicationRoutes(app)
	uploadRoutes.SetupUploadRoutes(app)

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// In production the built frontend is served from ./dist with an SPA
	// catch-all that leaves API and upload paths alone.
	if config.AppConfig.Env == "production" {
		app.Static("/", "./dist")
		app.Get("*", func(c *fiber.Ctx) error {
			path := c.Path()
			if strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/uploads/") {
				return c.SendStatus(fiber.StatusNotFound)
			}
			return c.SendFile("./dist/index.html")
		})
	}

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
