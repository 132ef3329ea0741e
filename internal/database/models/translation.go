package models

import (
	"time"
)

// Translation is a UI-string dictionary entry keyed by logical name
type Translation struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Key         string    `gorm:"uniqueIndex;not null" json:"key"`
	TextBengali string    `gorm:"not null" json:"text_bengali"`
	TextHindi   string    `gorm:"not null" json:"text_hindi"`
	TextEnglish string    `gorm:"not null" json:"text_english"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (Translation) TableName() string {
	return "translations"
}

// TextFor returns the stored text for the requested language, falling
// back to english when the language is unrecognized.
func (t *Translation) TextFor(lang Language) string {
	switch lang {
	case LanguageBengali:
		return t.TextBengali
	case LanguageHindi:
		return t.TextHindi
	default:
		return t.TextEnglish
	}
}
