package models

import "time"

// User accounts are created two ways: by the one-time admin setup, or
// implicitly on the first application a visitor submits. Implicit accounts
// get a random throwaway password and cannot log in.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Name         string    `gorm:"default:''" json:"name"`
	Phone        string    `gorm:"default:''" json:"phone"`
	Age          string    `gorm:"default:''" json:"age"`
	Job          string    `gorm:"default:''" json:"job"`
	Role         string    `gorm:"default:'user'" json:"role"` // user, admin
	CreatedAt    time.Time `json:"created_at"`
}
