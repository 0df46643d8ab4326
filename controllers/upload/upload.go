package uploadController

import (
	"log"

	"aipartners/config"
	"aipartners/middleware"
	"aipartners/utils"

	"github.com/gofiber/fiber/v2"
)

// UploadFile accepts a single multipart file for curriculum attachments.
// The MIME check runs before anything touches disk, so a rejected file is
// never written.
func UploadFile(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "파일이 없습니다")
	}

	if file.Size > utils.MaxUploadSize {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "파일 크기는 50MB를 초과할 수 없습니다")
	}

	mimeType := file.Header.Get("Content-Type")
	if !utils.IsAllowedMIME(mimeType) {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "지원하지 않는 파일 형식입니다. (jpg, png, gif, webp, pdf만 가능)")
	}

	filename, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
	if err != nil {
		log.Printf("Upload error: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "파일 업로드 중 오류가 발생했습니다")
	}

	return c.JSON(fiber.Map{
		"url":          "/uploads/" + filename,
		"filename":     filename,
		"originalname": file.Filename,
		"mimetype":     mimeType,
		"size":         file.Size,
	})
}
