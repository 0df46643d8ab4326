package main

import (
	"log"

	"aipartners/config"
	"aipartners/database"
	"aipartners/models"
)

// Seeds the catalog with the launch lineup and a few demo vouchers.
// Safe to re-run: existing slugs and codes are skipped.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	courses := []models.Course{
		{
			Slug:        "gce-l1",
			Title:       "GCE L1 부트캠프",
			Subtitle:    "Google Certified Educator Level 1",
			Description: "구글 공인교육자 자격증 취득 과정. 1일 집중 부트캠프로 구글 에듀케이터 인증을 획득하세요.",
			Price:       150000,
			Icon:        "award",
			IsActive:    true,
		},
		{
			Slug:        "gce-l2",
			Title:       "GCE L2 부트캠프",
			Subtitle:    "Google Certified Educator Level 2",
			Description: "심화 디지털 교육 전문가 과정. Level 1 이후 더 깊은 전문성을 원하는 교육자를 위한 과정입니다.",
			Price:       150000,
			Icon:        "award",
			Featured:    true,
			IsActive:    true,
		},
		{
			Slug:        "vibe-basic",
			Title:       "바이브코딩 기초",
			Subtitle:    "Vibe Coding for Non-Developers",
			Description: "비개발자를 위한 창의적 설계와 AI 협업. 코딩 없이 AI와 함께 아이디어를 현실로 만드세요.",
			Price:       300000,
			Icon:        "code",
			IsActive:    true,
		},
	}

	inserted := 0
	for _, course := range courses {
		var existing models.Course
		if err := db.Where("slug = ?", course.Slug).First(&existing).Error; err == nil {
			log.Printf("Course %s already exists, skipping", course.Slug)
			continue
		}
		if err := db.Create(&course).Error; err != nil {
			log.Fatalf("Failed to seed course %s: %v", course.Slug, err)
		}
		inserted++
	}
	log.Printf("Seeded %d course(s)", inserted)

	codes := []string{"A4K2026", "PREMIUM2026", "AIPARTNERS"}
	inserted = 0
	for _, code := range codes {
		var existing models.Voucher
		if err := db.Where("code = ?", code).First(&existing).Error; err == nil {
			log.Printf("Voucher %s already exists, skipping", code)
			continue
		}
		voucher := models.Voucher{Code: code, Status: models.VoucherActive}
		if err := db.Create(&voucher).Error; err != nil {
			log.Fatalf("Failed to seed voucher %s: %v", code, err)
		}
		inserted++
	}
	log.Printf("Seeded %d voucher(s)", inserted)
}
