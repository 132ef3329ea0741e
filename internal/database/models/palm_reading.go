package models

import (
	"time"
)

// PalmReading is a stored palm analysis tied to an uploaded image.
// ConfidenceScore is a fixed-precision numeric column carried as text;
// callers parse it back to float64 on every read path.
type PalmReading struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	UserID             uint      `gorm:"not null;index" json:"user_id"`
	ImageURL           string    `gorm:"not null" json:"image_url"`
	ReadingTextBengali string    `gorm:"not null" json:"reading_text_bengali"`
	ReadingTextHindi   string    `gorm:"not null" json:"reading_text_hindi"`
	ReadingTextEnglish string    `gorm:"not null" json:"reading_text_english"`
	ConfidenceScore    string    `gorm:"type:numeric(3,2);not null" json:"confidence_score"`
	CreatedAt          time.Time `json:"created_at"`
}

// TableName overrides the table name
func (PalmReading) TableName() string {
	return "palm_readings"
}
