package voucherValidator

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateVoucherStatusValidation(t *testing.T) {
	app := fiber.New()
	app.Patch("/vouchers/:id", UpdateVoucherStatus(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
	}{
		{"active accepted", "/vouchers/1", `{"status":"active"}`, fiber.StatusOK},
		{"expired accepted", "/vouchers/1", `{"status":"expired"}`, fiber.StatusOK},
		{"deleted accepted", "/vouchers/1", `{"status":"deleted"}`, fiber.StatusOK},
		{"unknown status rejected", "/vouchers/1", `{"status":"revoked"}`, fiber.StatusUnprocessableEntity},
		{"missing status rejected", "/vouchers/1", `{}`, fiber.StatusUnprocessableEntity},
		{"bad id rejected", "/vouchers/zero", `{"status":"active"}`, fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("PATCH", tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestCreateVoucherValidation(t *testing.T) {
	app := fiber.New()
	app.Post("/vouchers", CreateVoucher(), func(c *fiber.Ctx) error {
		reqData := c.Locals("validatedVoucher").(*CreateVoucherRequest)
		return c.JSON(reqData)
	})

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"plain code accepted", `{"code":"A4K2026"}`, fiber.StatusOK},
		{"scoped code accepted", `{"code":"PREMIUM2026","course_id":3}`, fiber.StatusOK},
		{"short code rejected", `{"code":"AB"}`, fiber.StatusUnprocessableEntity},
		{"missing code rejected", `{}`, fiber.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/vouchers", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
