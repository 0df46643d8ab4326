package models

import "time"

const (
	PaymentMethodVoucher  = "voucher"
	PaymentMethodTransfer = "transfer"

	PaymentPending   = "pending"
	PaymentConfirmed = "confirmed"
	PaymentCancelled = "cancelled"
)

// Application links a user to a course with a payment method and status.
// Created by public submission; payment_status mutated only by admins.
type Application struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"index;not null" json:"user_id"`
	CourseID      uint      `gorm:"index;not null" json:"course_id"`
	VoucherID     *uint     `json:"voucher_id"`
	PaymentMethod string    `gorm:"not null" json:"payment_method"` // voucher, transfer
	PaymentStatus string    `gorm:"default:'pending'" json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
}

// ApplicationWithNames is the admin list row, joined for display.
type ApplicationWithNames struct {
	Application
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CourseTitle string `json:"course_title"`
	VoucherCode string `json:"voucher_code"`
}
