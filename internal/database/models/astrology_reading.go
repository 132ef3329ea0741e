package models

import (
	"time"
)

// AstrologyReading is a stored analysis tied to birth data. The zodiac,
// moon and rising signs are caller-supplied text, not computed here.
// BirthLatitude and BirthLongitude are fixed-precision numeric columns
// carried as text; callers parse them back to float64 on every read path.
type AstrologyReading struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	UserID             uint      `gorm:"not null;index" json:"user_id"`
	BirthDate          time.Time `gorm:"not null" json:"birth_date"`
	BirthTime          string    `gorm:"not null" json:"birth_time"`
	BirthPlace         string    `gorm:"not null" json:"birth_place"`
	BirthLatitude      string    `gorm:"type:numeric(10,7);not null" json:"birth_latitude"`
	BirthLongitude     string    `gorm:"type:numeric(10,7);not null" json:"birth_longitude"`
	ReadingTextBengali string    `gorm:"not null" json:"reading_text_bengali"`
	ReadingTextHindi   string    `gorm:"not null" json:"reading_text_hindi"`
	ReadingTextEnglish string    `gorm:"not null" json:"reading_text_english"`
	ZodiacSign         string    `gorm:"not null" json:"zodiac_sign"`
	MoonSign           string    `gorm:"not null" json:"moon_sign"`
	RisingSign         string    `gorm:"not null" json:"rising_sign"`
	CreatedAt          time.Time `json:"created_at"`
}

// TableName overrides the table name
func (AstrologyReading) TableName() string {
	return "astrology_readings"
}
