package authController

import (
	"log"
	"strings"

	"aipartners/config"
	"aipartners/database"
	"aipartners/middleware"
	"aipartners/models"
	authValidator "aipartners/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// isLegacyHash reports whether a stored credential is still plain text.
// Bootstrap admin rows may be seeded with a plain password; bcrypt output
// always starts with "$2".
func isLegacyHash(stored string) bool {
	return !strings.HasPrefix(stored, "$2")
}

// migrateLegacyPassword rehashes a plain-text credential after a successful
// match. One-time migration; failures only leave the row un-migrated.
func migrateLegacyPassword(user *models.User, password string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error rehashing legacy password for user %d: %v", user.ID, err)
		return
	}
	user.PasswordHash = string(hash)
	if err := database.Database.Db.Model(user).Update("password_hash", user.PasswordHash).Error; err != nil {
		log.Printf("Error persisting migrated password for user %d: %v", user.ID, err)
	}
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "잘못된 요청입니다")
	}

	var user models.User
	if err := database.Database.Db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "이메일 또는 비밀번호가 올바르지 않습니다")
	}

	if isLegacyHash(user.PasswordHash) {
		if user.PasswordHash != reqData.Password {
			return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "이메일 또는 비밀번호가 올바르지 않습니다")
		}
		migrateLegacyPassword(&user, reqData.Password)
	} else if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(reqData.Password)); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "이메일 또는 비밀번호가 올바르지 않습니다")
	}

	token, err := middleware.GenerateJWT(user.ID, user.Email, user.Name, user.Role)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "로그인 처리 중 오류가 발생했습니다")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}

func Me(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(middleware.AuthClaims)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "인증이 필요합니다")
	}

	var user models.User
	if err := database.Database.Db.Select("id", "email", "name", "role").First(&user, claims.ID).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "사용자를 찾을 수 없습니다")
	}

	return c.JSON(fiber.Map{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
		"role":  user.Role,
	})
}

// Setup creates the bootstrap admin account. Allowed at most once.
func Setup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSetup").(*authValidator.SetupRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "잘못된 요청입니다")
	}

	var count int64
	if err := database.Database.Db.Model(&models.User{}).Where("role = ?", "admin").Count(&count).Error; err != nil {
		log.Printf("Setup error: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "관리자 생성 중 오류가 발생했습니다")
	}
	if count > 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "이미 관리자가 존재합니다")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "관리자 생성 중 오류가 발생했습니다")
	}

	admin := models.User{
		Email:        reqData.Email,
		PasswordHash: string(hash),
		Name:         reqData.Name,
		Role:         "admin",
	}
	if err := database.Database.Db.Create(&admin).Error; err != nil {
		log.Printf("Error creating admin: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "관리자 생성 중 오류가 발생했습니다")
	}

	return middleware.MessageResponse(c, "관리자 계정이 생성되었습니다")
}
