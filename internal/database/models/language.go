package models

// Language identifies one of the supported reading/UI languages
type Language string

const (
	LanguageBengali Language = "bengali"
	LanguageHindi   Language = "hindi"
	LanguageEnglish Language = "english"
)

// IsValidLanguage reports whether lang is one of the supported languages
func IsValidLanguage(lang Language) bool {
	switch lang {
	case LanguageBengali, LanguageHindi, LanguageEnglish:
		return true
	}
	return false
}
