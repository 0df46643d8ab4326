package applicationController

import (
	"log"

	"aipartners/config"
	voucherController "aipartners/controllers/voucher"
	"aipartners/database"
	"aipartners/middleware"
	"aipartners/models"
	"aipartners/utils"
	applicationValidator "aipartners/validators/application"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ConfirmationMessage returns the localized confirmation shown after a
// successful submission, keyed by payment method.
func ConfirmationMessage(paymentMethod string) string {
	if paymentMethod == models.PaymentMethodVoucher {
		return "무료 수강 신청이 완료되었습니다!"
	}
	return "신청이 완료되었습니다. 입금 확인 후 안내해드립니다."
}

// findOrCreateUser resolves the applicant by email, creating an account with
// a random throwaway password when none exists. Such accounts cannot log in
// until a real password is set through some other channel.
func findOrCreateUser(db *gorm.DB, reqData *applicationValidator.CreateApplicationRequest) (uint, error) {
	var user models.User
	err := db.Where("email = ?", reqData.Email).First(&user).Error
	if err == nil {
		return user.ID, nil
	}
	if err != gorm.ErrRecordNotFound {
		return 0, err
	}

	tempPassword, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), config.AppConfig.SaltRound)
	if err != nil {
		return 0, err
	}

	user = models.User{
		Email:        reqData.Email,
		PasswordHash: string(tempPassword),
		Name:         reqData.Name,
		Phone:        reqData.Phone,
		Age:          reqData.Age,
		Job:          reqData.Job,
	}
	if err := db.Create(&user).Error; err != nil {
		return 0, err
	}
	return user.ID, nil
}

// CreateApplication handles the public enrollment form. The steps run
// sequentially and earlier writes are not rolled back when a later step
// fails: a user created before an invalid voucher is reported persists.
func CreateApplication(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedApplication").(*applicationValidator.CreateApplicationRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "잘못된 요청입니다")
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("slug = ?", reqData.CourseSlug).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "유효하지 않은 과정입니다")
	}

	userID, err := findOrCreateUser(db, reqData)
	if err != nil {
		log.Printf("Create application user error: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "신청 처리 중 오류가 발생했습니다")
	}

	var voucherID *uint
	paymentStatus := models.PaymentPending

	if reqData.PaymentMethod == models.PaymentMethodVoucher {
		var voucher models.Voucher
		code := voucherController.NormalizeCode(reqData.VoucherCode)
		if err := db.Where("code = ? AND status = ?", code, models.VoucherActive).First(&voucher).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "유효하지 않은 바우처 코드입니다")
		}

		// Conditional update; loses the race to a concurrent submission
		// cleanly instead of double-spending the code.
		if !voucherController.Consume(db, voucher.ID, userID) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "유효하지 않은 바우처 코드입니다")
		}

		voucherID = &voucher.ID
		paymentStatus = models.PaymentConfirmed
	}

	application := models.Application{
		UserID:        userID,
		CourseID:      course.ID,
		VoucherID:     voucherID,
		PaymentMethod: reqData.PaymentMethod,
		PaymentStatus: paymentStatus,
	}
	if err := db.Create(&application).Error; err != nil {
		log.Printf("Create application error: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "신청 처리 중 오류가 발생했습니다")
	}

	// Best-effort notifications; the submission already succeeded.
	go utils.SendApplicationEmail(reqData.Email, reqData.Name, course.Title, reqData.PaymentMethod)
	go utils.NotifyNewApplication(reqData.Name, reqData.Email, course.Title, reqData.PaymentMethod)

	return c.JSON(fiber.Map{
		"success":     true,
		"application": application,
		"message":     ConfirmationMessage(reqData.PaymentMethod),
	})
}

// GetApplications returns every application for the admin panel, joined
// with applicant and course display fields
func GetApplications(c *fiber.Ctx) error {
	var applications []models.ApplicationWithNames
	err := database.Database.Db.Model(&models.Application{}).
		Select("applications.*, u.name, u.email, u.phone, co.title as course_title, COALESCE(v.code, '') as voucher_code").
		Joins("JOIN users u ON applications.user_id = u.id").
		Joins("JOIN courses co ON applications.course_id = co.id").
		Joins("LEFT JOIN vouchers v ON applications.voucher_id = v.id").
		Order("applications.created_at desc").
		Scan(&applications).Error
	if err != nil {
		log.Printf("Get applications error: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "신청 목록 조회 중 오류가 발생했습니다")
	}

	return c.JSON(applications)
}

func UpdateApplicationStatus(c *fiber.Ctx) error {
	applicationID := c.Locals("applicationID").(int)
	reqData, ok := c.Locals("validatedStatus").(*applicationValidator.UpdateApplicationStatusRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "잘못된 요청입니다")
	}

	if err := database.Database.Db.Model(&models.Application{}).
		Where("id = ?", applicationID).
		Update("payment_status", reqData.PaymentStatus).Error; err != nil {
		log.Printf("Update application error: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "신청 상태 변경 중 오류가 발생했습니다")
	}

	return middleware.MessageResponse(c, "신청 상태가 변경되었습니다")
}

// GetMembers lists every user row for the admin member page
func GetMembers(c *fiber.Ctx) error {
	var members []models.User
	err := database.Database.Db.
		Select("id", "email", "name", "phone", "age", "job", "role", "created_at").
		Order("created_at desc").
		Find(&members).Error
	if err != nil {
		log.Printf("Get members error: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "회원 목록 조회 중 오류가 발생했습니다")
	}

	return c.JSON(members)
}
