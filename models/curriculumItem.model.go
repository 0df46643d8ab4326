package models

// CurriculumItem is one unit of course content, grouped by phase and
// displayed ordered by (phase, sort_order).
type CurriculumItem struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	CourseID    uint   `gorm:"index;not null" json:"course_id"`
	Phase       string `gorm:"default:''" json:"phase"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	ContentType string `gorm:"default:'text'" json:"content_type"` // text, pdf, image, video
	ContentURL  string `gorm:"default:''" json:"content_url"`
	SortOrder   int    `gorm:"default:0" json:"sort_order"`
}
