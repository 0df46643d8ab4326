package voucherController

import (
	"log"
	"strings"
	"time"

	"aipartners/database"
	"aipartners/middleware"
	"aipartners/models"
	voucherValidator "aipartners/validators/voucher"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// NormalizeCode upper-cases and trims a voucher code. Codes are unique
// regardless of case, so every write and lookup goes through this.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Consume atomically marks an active voucher as used by the given user.
// The conditional update closes the race between two submissions racing on
// the same code: only one can flip status off "active".
func Consume(db *gorm.DB, voucherID uint, userID uint) bool {
	now := time.Now()
	result := db.Model(&models.Voucher{}).
		Where("id = ? AND status = ?", voucherID, models.VoucherActive).
		Updates(map[string]interface{}{
			"status":  models.VoucherUsed,
			"used_by": userID,
			"used_at": now,
		})
	if result.Error != nil {
		log.Printf("Consume voucher error: %v", result.Error)
		return false
	}
	return result.RowsAffected == 1
}

// GetVouchers returns every voucher for the admin panel, joined with the
// redeeming user's name and the scoped course title
func GetVouchers(c *fiber.Ctx) error {
	var vouchers []models.VoucherWithNames
	err := database.Database.Db.Model(&models.Voucher{}).
		Select("vouchers.*, COALESCE(u.name, '') as used_by_name, COALESCE(co.title, '') as course_title").
		Joins("LEFT JOIN users u ON vouchers.used_by = u.id").
		Joins("LEFT JOIN courses co ON vouchers.course_id = co.id").
		Order("vouchers.created_at desc").
		Scan(&vouchers).Error
	if err != nil {
		log.Printf("Get vouchers error: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "바우처 목록 조회 중 오류가 발생했습니다")
	}

	return c.JSON(vouchers)
}

func CreateVoucher(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedVoucher").(*voucherValidator.CreateVoucherRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "잘못된 요청입니다")
	}

	code := NormalizeCode(reqData.Code)

	var existing models.Voucher
	if err := database.Database.Db.Where("code = ?", code).First(&existing).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "이미 존재하는 코드입니다")
	}

	voucher := models.Voucher{
		Code:     code,
		CourseID: reqData.CourseID,
		Status:   models.VoucherActive,
	}
	if err := database.Database.Db.Create(&voucher).Error; err != nil {
		log.Printf("Create voucher error: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "바우처 생성 중 오류가 발생했습니다")
	}

	return c.JSON(voucher)
}

func UpdateVoucherStatus(c *fiber.Ctx) error {
	voucherID := c.Locals("voucherID").(int)
	reqData, ok := c.Locals("validatedStatus").(*voucherValidator.UpdateVoucherStatusRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "잘못된 요청입니다")
	}

	// Deleted is terminal: no transition leaves it.
	result := database.Database.Db.Model(&models.Voucher{}).
		Where("id = ? AND status <> ?", voucherID, models.VoucherDeleted).
		Update("status", reqData.Status)
	if result.Error != nil {
		log.Printf("Update voucher error: %v", result.Error)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "바우처 상태 변경 중 오류가 발생했습니다")
	}
	if result.RowsAffected == 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "삭제된 바우처는 변경할 수 없습니다")
	}

	return middleware.MessageResponse(c, "바우처 상태가 변경되었습니다")
}

// DeleteVoucher soft-deletes by flipping status; voucher rows are never
// removed so that used codes stay auditable
func DeleteVoucher(c *fiber.Ctx) error {
	voucherID := c.Locals("voucherID").(int)

	if err := database.Database.Db.Model(&models.Voucher{}).
		Where("id = ?", voucherID).
		Update("status", models.VoucherDeleted).Error; err != nil {
		log.Printf("Delete voucher error: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "바우처 삭제 중 오류가 발생했습니다")
	}

	return middleware.MessageResponse(c, "바우처가 삭제되었습니다")
}

// ValidateVoucher is the public pre-check used by the enrollment modal.
// It accepts only codes whose stored status is exactly "active".
func ValidateVoucher(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCode").(*voucherValidator.ValidateVoucherRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "잘못된 요청입니다")
	}

	var voucher models.Voucher
	err := database.Database.Db.
		Where("code = ? AND status = ?", NormalizeCode(reqData.Code), models.VoucherActive).
		First(&voucher).Error
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"valid": false,
			"error": "유효하지 않은 바우처 코드입니다",
		})
	}

	return c.JSON(fiber.Map{
		"valid":   true,
		"voucher": voucher,
	})
}
