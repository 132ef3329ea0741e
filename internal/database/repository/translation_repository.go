package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/astropalm/backend-go/internal/database/models"
)

// TranslationRepository defines the interface for translation data operations
type TranslationRepository interface {
	Create(translation *models.Translation) error
	Update(translation *models.Translation) error
	FindByKey(key string) (*models.Translation, error)
	FindByKeys(keys []string) ([]models.Translation, error)
	FindAll() ([]models.Translation, error)
}

type translationRepository struct {
	db *gorm.DB
}

// NewTranslationRepository creates a new translation repository instance
func NewTranslationRepository(db *gorm.DB) TranslationRepository {
	return &translationRepository{db: db}
}

func (r *translationRepository) Create(translation *models.Translation) error {
	return r.db.Create(translation).Error
}

func (r *translationRepository) Update(translation *models.Translation) error {
	return r.db.Save(translation).Error
}

func (r *translationRepository) FindByKey(key string) (*models.Translation, error) {
	var translation models.Translation
	err := r.db.Where("key = ?", key).First(&translation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTranslationNotFound
		}
		return nil, err
	}
	return &translation, nil
}

func (r *translationRepository) FindByKeys(keys []string) ([]models.Translation, error) {
	var translations []models.Translation
	err := r.db.Where("key IN ?", keys).Find(&translations).Error
	if err != nil {
		return nil, err
	}
	return translations, nil
}

func (r *translationRepository) FindAll() ([]models.Translation, error) {
	var translations []models.Translation
	err := r.db.Find(&translations).Error
	if err != nil {
		return nil, err
	}
	return translations, nil
}

// Repository errors
var (
	ErrTranslationNotFound = errors.New("translation not found")
)
