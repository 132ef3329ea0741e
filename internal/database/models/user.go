package models

import (
	"time"
)

// User represents a registered account with its locale preference
type User struct {
	ID                uint      `gorm:"primarykey" json:"id"`
	Email             string    `gorm:"uniqueIndex;not null" json:"email"`
	Name              string    `gorm:"not null" json:"name"`
	PreferredLanguage Language  `gorm:"not null;default:english" json:"preferred_language"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	// Relationships
	PalmReadings      []PalmReading      `gorm:"foreignKey:UserID" json:"palm_readings,omitempty"`
	AstrologyReadings []AstrologyReading `gorm:"foreignKey:UserID" json:"astrology_readings,omitempty"`
}

// TableName overrides the table name
func (User) TableName() string {
	return "users"
}
