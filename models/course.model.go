package models

import "time"

// Course is one catalog entry on the public site.
type Course struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Title       string    `gorm:"not null" json:"title"`
	Subtitle    string    `gorm:"default:''" json:"subtitle"`
	Description string    `gorm:"type:text" json:"description"`
	Price       int       `gorm:"default:0" json:"price"` // KRW
	Icon        string    `gorm:"default:'book'" json:"icon"`
	Featured    bool      `gorm:"default:false" json:"featured"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
