package voucherValidator

import (
	"strconv"

	"aipartners/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateVoucherRequest struct {
	Code     string `json:"code" validate:"required,min=4,max=32"`
	CourseID *uint  `json:"course_id"`
}

type UpdateVoucherStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active used expired deleted"`
}

type ValidateVoucherRequest struct {
	Code string `json:"code" validate:"required"`
}

func fieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		errors[fe.Field()] = "invalid value"
	}
	return errors
}

// CreateVoucher validator middleware
func CreateVoucher() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateVoucherRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "잘못된 요청입니다")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedVoucher", reqData)
		return c.Next()
	}
}

// UpdateVoucherStatus validator middleware
func UpdateVoucherStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		voucherID, err := strconv.Atoi(c.Params("id"))
		if err != nil || voucherID <= 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "잘못된 요청입니다")
		}

		reqData := new(UpdateVoucherStatusRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "잘못된 요청입니다")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("voucherID", voucherID)
		c.Locals("validatedStatus", reqData)
		return c.Next()
	}
}

// DeleteVoucher validator middleware
func DeleteVoucher() fiber.Handler {
	return func(c *fiber.Ctx) error {
		voucherID, err := strconv.Atoi(c.Params("id"))
		if err != nil || voucherID <= 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "잘못된 요청입니다")
		}

		c.Locals("voucherID", voucherID)
		return c.Next()
	}
}

// ValidateVoucher validator middleware for the public validate endpoint
func ValidateVoucher() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ValidateVoucherRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "잘못된 요청입니다")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedCode", reqData)
		return c.Next()
	}
}
