package courseController

import (
	"log"

	"aipartners/database"
	"aipartners/middleware"
	"aipartners/models"
	courseValidator "aipartners/validators/course"

	"github.com/gofiber/fiber/v2"
)

func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "잘못된 요청입니다")
	}

	icon := reqData.Icon
	if icon == "" {
		icon = "book"
	}

	course := models.Course{
		Slug:        reqData.Slug,
		Title:       reqData.Title,
		Subtitle:    reqData.Subtitle,
		Description: reqData.Description,
		Price:       reqData.Price,
		Icon:        icon,
		Featured:    reqData.Featured,
		IsActive:    true,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		log.Printf("Create course error: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "과정 생성 중 오류가 발생했습니다")
	}

	return c.JSON(course)
}

// UpdateCourse replaces every editable field with the caller's values
func UpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.UpdateCourseRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "잘못된 요청입니다")
	}

	updates := map[string]interface{}{
		"title":       reqData.Title,
		"subtitle":    reqData.Subtitle,
		"description": reqData.Description,
		"price":       reqData.Price,
		"icon":        reqData.Icon,
		"featured":    reqData.Featured,
		"is_active":   reqData.IsActive,
	}

	if err := database.Database.Db.Model(&models.Course{}).Where("id = ?", courseID).Updates(updates).Error; err != nil {
		log.Printf("Update course error: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "과정 수정 중 오류가 발생했습니다")
	}

	return middleware.MessageResponse(c, "과정이 수정되었습니다")
}

func AddCurriculumItem(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	reqData, ok := c.Locals("validatedItem").(*courseValidator.CurriculumItemRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "잘못된 요청입니다")
	}

	contentType := reqData.ContentType
	if contentType == "" {
		contentType = "text"
	}

	item := models.CurriculumItem{
		CourseID:    uint(courseID),
		Phase:       reqData.Phase,
		Title:       reqData.Title,
		Description: reqData.Description,
		ContentType: contentType,
		ContentURL:  reqData.ContentURL,
		SortOrder:   reqData.SortOrder,
	}

	if err := database.Database.Db.Create(&item).Error; err != nil {
		log.Printf("Add curriculum item error: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "커리큘럼 추가 중 오류가 발생했습니다")
	}

	return c.JSON(item)
}

func DeleteCurriculumItem(c *fiber.Ctx) error {
	itemID := c.Locals("itemID").(int)

	if err := database.Database.Db.Delete(&models.CurriculumItem{}, itemID).Error; err != nil {
		log.Printf("Delete curriculum item error: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "커리큘럼 삭제 중 오류가 발생했습니다")
	}

	return middleware.MessageResponse(c, "커리큘럼 항목이 삭제되었습니다")
}
