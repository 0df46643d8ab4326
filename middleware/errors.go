package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorHandler converts errors that fire before any handler runs (body
// limit, router faults) into the uniform JSON error body. Without it a
// request larger than the body limit gets a bare 413 instead of the
// localized message the upload handler returns for oversized files.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if code == fiber.StatusRequestEntityTooLarge {
		return ErrorResponse(c, code, "파일 크기는 50MB를 초과할 수 없습니다")
	}
	return ErrorResponse(c, code, "요청 처리 중 오류가 발생했습니다")
}
