package courseValidator

import (
	"strconv"

	"aipartners/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateCourseRequest struct {
	Slug        string `json:"slug" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Price       int    `json:"price" validate:"min=0"`
	Icon        string `json:"icon"`
	Featured    bool   `json:"featured"`
}

type UpdateCourseRequest struct {
	Title       string `json:"title" validate:"required"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Price       int    `json:"price" validate:"min=0"`
	Icon        string `json:"icon"`
	Featured    bool   `json:"featured"`
	IsActive    bool   `json:"is_active"`
}

type CurriculumItemRequest struct {
	Phase       string `json:"phase"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	ContentType string `json:"content_type" validate:"omitempty,oneof=text pdf image video"`
	ContentURL  string `json:"content_url"`
	SortOrder   int    `json:"sort_order" validate:"min=0"`
}

func fieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		errors[fe.Field()] = "invalid value"
	}
	return errors
}

// CreateCourse validator middleware
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "잘못된 요청입니다")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validator middleware, also checks the :id path param
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := strconv.Atoi(c.Params("id"))
		if err != nil || courseID <= 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "잘못된 요청입니다")
		}

		reqData := new(UpdateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "잘못된 요청입니다")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// AddCurriculumItem validator middleware
func AddCurriculumItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := strconv.Atoi(c.Params("id"))
		if err != nil || courseID <= 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "잘못된 요청입니다")
		}

		reqData := new(CurriculumItemRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "잘못된 요청입니다")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedItem", reqData)
		return c.Next()
	}
}

// DeleteCurriculumItem validator middleware
func DeleteCurriculumItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		itemID, err := strconv.Atoi(c.Params("itemId"))
		if err != nil || itemID <= 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "잘못된 요청입니다")
		}

		c.Locals("itemID", itemID)
		return c.Next()
	}
}
