package utils

import (
	"log"
	"time"

	"aipartners/config"
	"aipartners/database"
	"aipartners/models"

	"github.com/robfig/cron/v3"
)

// expireStaleVouchers transitions active vouchers past their TTL to
// expired. Used and deleted vouchers are never touched.
func expireStaleVouchers() {
	ttlDays := config.AppConfig.VoucherTTLDays
	if ttlDays <= 0 {
		return
	}

	cutoff := time.Now().AddDate(0, 0, -ttlDays)
	result := database.Database.Db.Model(&models.Voucher{}).
		Where("status = ? AND created_at < ?", models.VoucherActive, cutoff).
		Update("status", models.VoucherExpired)

	if result.Error != nil {
		log.Printf("[VOUCHER-SCHEDULER] Error expiring vouchers: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("[VOUCHER-SCHEDULER] Expired %d stale voucher(s)", result.RowsAffected)
	}
}

// StartVoucherScheduler runs the hourly expiry sweep when VOUCHER_TTL_DAYS
// is set. Without a TTL the scheduler is not started and vouchers expire
// only through the admin panel.
func StartVoucherScheduler() {
	if config.AppConfig.VoucherTTLDays <= 0 {
		return
	}

	c := cron.New()
	if _, err := c.AddFunc("@hourly", expireStaleVouchers); err != nil {
		log.Printf("[VOUCHER-SCHEDULER] Failed to schedule expiry sweep: %v", err)
		return
	}
	c.Start()

	// Catch up immediately on boot
	go expireStaleVouchers()

	log.Printf("[VOUCHER-SCHEDULER] Expiry sweep scheduled hourly (TTL %d days)", config.AppConfig.VoucherTTLDays)
}
