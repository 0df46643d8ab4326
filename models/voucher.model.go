package models

import "time"

// Voucher status transitions: active → used, active → expired, and any
// non-deleted status → deleted. Nothing leaves deleted.
const (
	VoucherActive  = "active"
	VoucherUsed    = "used"
	VoucherExpired = "expired"
	VoucherDeleted = "deleted"
)

// Voucher is a single-use code granting free enrollment in one course,
// or any course when CourseID is nil. Codes are stored uppercase.
type Voucher struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Code      string     `gorm:"uniqueIndex;not null" json:"code"`
	CourseID  *uint      `json:"course_id"`
	Status    string     `gorm:"default:'active'" json:"status"`
	UsedBy    *uint      `json:"used_by"`
	UsedAt    *time.Time `json:"used_at"`
	CreatedAt time.Time  `json:"created_at"`
}

// VoucherWithNames is the admin list row, joined for display.
type VoucherWithNames struct {
	Voucher
	UsedByName  string `json:"used_by_name"`
	CourseTitle string `json:"course_title"`
}
