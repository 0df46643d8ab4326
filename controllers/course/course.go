package courseController

import (
	"log"

	"aipartners/database"
	"aipartners/middleware"
	"aipartners/models"

	"github.com/gofiber/fiber/v2"
)

// GetCourses returns the public catalog: active courses only, ascending by id
func GetCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.Where("is_active = ?", true).Order("id asc").Find(&courses).Error; err != nil {
		log.Printf("Get courses error: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "과정 목록 조회 중 오류가 발생했습니다")
	}

	return c.JSON(courses)
}

// GetCourseBySlug returns one course plus its curriculum ordered by
// (phase, sort_order)
func GetCourseBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var course models.Course
	if err := database.Database.Db.Where("slug = ?", slug).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "과정을 찾을 수 없습니다")
	}

	var curriculum []models.CurriculumItem
	if err := database.Database.Db.
		Where("course_id = ?", course.ID).
		Order("phase, sort_order").
		Find(&curriculum).Error; err != nil {
		log.Printf("Get course error: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "과정 조회 중 오류가 발생했습니다")
	}

	return c.JSON(fiber.Map{
		"id":          course.ID,
		"slug":        course.Slug,
		"title":       course.Title,
		"subtitle":    course.Subtitle,
		"description": course.Description,
		"price":       course.Price,
		"icon":        course.Icon,
		"featured":    course.Featured,
		"is_active":   course.IsActive,
		"created_at":  course.CreatedAt,
		"curriculum":  curriculum,
	})
}
