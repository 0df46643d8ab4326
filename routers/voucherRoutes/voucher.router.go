package voucherRoutes

import (
	controllers "aipartners/controllers/voucher"
	"aipartners/middleware"
	validators "aipartners/validators/voucher"

	"github.com/gofiber/fiber/v2"
)

func SetupVoucherRoutes(app *fiber.App) {
	voucherGroup := app.Group("/api/vouchers")

	// Public pre-check used by the enrollment modal
	voucherGroup.Post("/validate", validators.ValidateVoucher(), controllers.ValidateVoucher)

	// Admin voucher management
	voucherGroup.Get("/", middleware.JWTMiddleware, middleware.RequireAdmin, controllers.GetVouchers)
	voucherGroup.Post("/", middleware.JWTMiddleware, middleware.RequireAdmin, validators.CreateVoucher(), controllers.CreateVoucher)
	voucherGroup.Patch("/:id", middleware.JWTMiddleware, middleware.RequireAdmin, validators.UpdateVoucherStatus(), controllers.UpdateVoucherStatus)
	voucherGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireAdmin, validators.DeleteVoucher(), controllers.DeleteVoucher)
}
