package applicationController

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"aipartners/config"
	voucherController "aipartners/controllers/voucher"
	"aipartners/database"
	"aipartners/models"
	applicationValidator "aipartners/validators/application"
	voucherValidator "aipartners/validators/voucher"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: bcrypt.MinCost}
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.CurriculumItem{},
		&models.Voucher{},
		&models.Application{},
	))
	database.Database = database.DbInstance{Db: db}
	return db
}

func newEnrollmentApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/applications", applicationValidator.CreateApplication(), CreateApplication)
	app.Post("/api/vouchers/validate", voucherValidator.ValidateVoucher(), voucherController.ValidateVoucher)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func TestConfirmationMessage(t *testing.T) {
	assert.Equal(t, "무료 수강 신청이 완료되었습니다!", ConfirmationMessage("voucher"))
	assert.Equal(t, "신청이 완료되었습니다. 입금 확인 후 안내해드립니다.", ConfirmationMessage("transfer"))
}

func TestCreateApplicationUnknownCourseCreatesNothing(t *testing.T) {
	db := setupTestDB(t)
	app := newEnrollmentApp()

	status, body := postJSON(t, app, "/api/applications",
		`{"name":"A","email":"a@b.com","phone":"010","course_slug":"no-such-course","payment_method":"transfer"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.NotEmpty(t, body["error"])

	var users, applications int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Application{}).Count(&applications).Error)
	assert.Zero(t, users)
	assert.Zero(t, applications)
}

func TestCreateApplicationReusesExistingUser(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Course{Slug: "gce-l1", Title: "GCE L1 부트캠프", IsActive: true}).Error)
	require.NoError(t, db.Create(&models.Course{Slug: "gce-l2", Title: "GCE L2 부트캠프", IsActive: true}).Error)

	app := newEnrollmentApp()

	for _, slug := range []string{"gce-l1", "gce-l2"} {
		status, body := postJSON(t, app, "/api/applications",
			`{"name":"A","email":"a@b.com","phone":"010","course_slug":"`+slug+`","payment_method":"transfer"}`)
		require.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, true, body["success"])
	}

	var users, applications int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Application{}).Count(&applications).Error)
	assert.Equal(t, int64(1), users, "same email must map to one user row")
	assert.Equal(t, int64(2), applications)

	var pending int64
	require.NoError(t, db.Model(&models.Application{}).
		Where("payment_status = ?", models.PaymentPending).Count(&pending).Error)
	assert.Equal(t, int64(2), pending, "transfer applications await payment confirmation")
}

func TestCreateApplicationVoucherFlow(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Course{Slug: "vibe-basic", Title: "바이브코딩 기초", IsActive: true}).Error)
	require.NoError(t, db.Create(&models.Voucher{Code: "A4K2026", Status: models.VoucherActive}).Error)

	app := newEnrollmentApp()

	// Lowercase submission must match the uppercase-stored code
	status, body := postJSON(t, app, "/api/applications",
		`{"name":"A","email":"a@b.com","phone":"010","course_slug":"vibe-basic","payment_method":"voucher","voucher_code":"a4k2026"}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "무료 수강 신청이 완료되었습니다!", body["message"])

	application, ok := body["application"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, models.PaymentConfirmed, application["payment_status"])

	var user models.User
	require.NoError(t, db.Where("email = ?", "a@b.com").First(&user).Error)

	var voucher models.Voucher
	require.NoError(t, db.Where("code = ?", "A4K2026").First(&voucher).Error)
	assert.Equal(t, models.VoucherUsed, voucher.Status)
	require.NotNil(t, voucher.UsedBy)
	assert.Equal(t, user.ID, *voucher.UsedBy)

	// The consumed code fails a second submission and no longer validates
	status, body = postJSON(t, app, "/api/applications",
		`{"name":"B","email":"b@b.com","phone":"011","course_slug":"vibe-basic","payment_method":"voucher","voucher_code":"A4K2026"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.NotEmpty(t, body["error"])

	var applications int64
	require.NoError(t, db.Model(&models.Application{}).Count(&applications).Error)
	assert.Equal(t, int64(1), applications)

	status, body = postJSON(t, app, "/api/vouchers/validate", `{"code":"A4K2026"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, body["valid"])
}
