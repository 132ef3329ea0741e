package service

import (
	"errors"
	"log/slog"

	"github.com/astropalm/backend-go/internal/database/models"
	"github.com/astropalm/backend-go/internal/database/repository"
)

// UpsertTranslationInput carries the fields for creating or replacing a
// translation entry keyed by its logical name.
type UpsertTranslationInput struct {
	Key         string
	TextBengali string
	TextHindi   string
	TextEnglish string
}

// TranslationService defines the interface for translation business logic
type TranslationService interface {
	CreateTranslation(input UpsertTranslationInput) (*models.Translation, error)
	GetTranslations(language models.Language, keys []string) (map[string]string, error)
}

type translationService struct {
	translationRepo repository.TranslationRepository
	logger          *slog.Logger
}

// NewTranslationService creates a new translation service instance
func NewTranslationService(translationRepo repository.TranslationRepository, logger *slog.Logger) TranslationService {
	return &translationService{
		translationRepo: translationRepo,
		logger:          logger,
	}
}

// CreateTranslation upserts by key: an existing row gets its three text
// fields replaced in place, otherwise a new row is inserted. The
// select-then-branch is not atomic under concurrent writers for the same
// key; the unique index on key backstops duplicate inserts.
func (s *translationService) CreateTranslation(input UpsertTranslationInput) (*models.Translation, error) {
	s.logger.Info("🌐 [TranslationService] Upserting translation", "key", input.Key)

	existing, err := s.translationRepo.FindByKey(input.Key)
	if err != nil && !errors.Is(err, repository.ErrTranslationNotFound) {
		s.logger.Error("❌ [TranslationService] Database error checking key", "key", input.Key, "error", err)
		return nil, err
	}

	if existing != nil {
		existing.TextBengali = input.TextBengali
		existing.TextHindi = input.TextHindi
		existing.TextEnglish = input.TextEnglish

		if err := s.translationRepo.Update(existing); err != nil {
			s.logger.Error("❌ [TranslationService] Failed to update translation", "key", input.Key, "error", err)
			return nil, err
		}

		s.logger.Info("✅ [TranslationService] Translation updated", "key", input.Key)
		return existing, nil
	}

	translation := &models.Translation{
		Key:         input.Key,
		TextBengali: input.TextBengali,
		TextHindi:   input.TextHindi,
		TextEnglish: input.TextEnglish,
	}

	if err := s.translationRepo.Create(translation); err != nil {
		s.logger.Error("❌ [TranslationService] Failed to create translation", "key", input.Key, "error", err)
		return nil, err
	}

	s.logger.Info("✅ [TranslationService] Translation created", "key", input.Key)
	return translation, nil
}

// GetTranslations maps key to the text in the requested language (english
// when the language value is unrecognized). With a non-empty key list the
// result is restricted to those keys; keys with no row are simply absent.
func (s *translationService) GetTranslations(language models.Language, keys []string) (map[string]string, error) {
	var translations []models.Translation
	var err error

	if len(keys) > 0 {
		translations, err = s.translationRepo.FindByKeys(keys)
	} else {
		translations, err = s.translationRepo.FindAll()
	}
	if err != nil {
		s.logger.Error("❌ [TranslationService] Failed to fetch translations", "error", err)
		return nil, err
	}

	result := make(map[string]string, len(translations))
	for i := range translations {
		result[translations[i].Key] = translations[i].TextFor(language)
	}
	return result, nil
}
