package applicationValidator

import (
	"strconv"

	"aipartners/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateApplicationRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required"`
	Age           string `json:"age"`
	Job           string `json:"job"`
	CourseSlug    string `json:"course_slug" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=voucher transfer"`
	VoucherCode   string `json:"voucher_code" validate:"required_if=PaymentMethod voucher"`
}

type UpdateApplicationStatusRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=pending confirmed cancelled"`
}

func fieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		errors[fe.Field()] = "invalid value"
	}
	return errors
}

// CreateApplication validator middleware for the public enrollment form
func CreateApplication() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateApplicationRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "잘못된 요청입니다")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedApplication", reqData)
		return c.Next()
	}
}

// UpdateApplicationStatus validator middleware
func UpdateApplicationStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		applicationID, err := strconv.Atoi(c.Params("id"))
		if err != nil || applicationID <= 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "잘못된 요청입니다")
		}

		reqData := new(UpdateApplicationStatusRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "잘못된 요청입니다")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("applicationID", applicationID)
		c.Locals("validatedStatus", reqData)
		return c.Next()
	}
}
