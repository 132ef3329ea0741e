package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/astropalm/backend-go/internal/database/models"
)

// AstrologyReadingRepository defines the interface for astrology reading data operations
type AstrologyReadingRepository interface {
	Create(reading *models.AstrologyReading) error
	FindByID(id uint) (*models.AstrologyReading, error)
	FindByUserID(userID uint) ([]models.AstrologyReading, error)
}

type astrologyReadingRepository struct {
	db *gorm.DB
}

// NewAstrologyReadingRepository creates a new astrology reading repository instance
func NewAstrologyReadingRepository(db *gorm.DB) AstrologyReadingRepository {
	return &astrologyReadingRepository{db: db}
}

func (r *astrologyReadingRepository) Create(reading *models.AstrologyReading) error {
	return r.db.Create(reading).Error
}

func (r *astrologyReadingRepository) FindByID(id uint) (*models.AstrologyReading, error) {
	var reading models.AstrologyReading
	err := r.db.First(&reading, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAstrologyReadingNotFound
		}
		return nil, err
	}
	return &reading, nil
}

// FindByUserID returns all readings for a user, newest first
func (r *astrologyReadingRepository) FindByUserID(userID uint) ([]models.AstrologyReading, error) {
	var readings []models.AstrologyReading
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&readings).Error
	if err != nil {
		return nil, err
	}
	return readings, nil
}

// Repository errors
var (
	ErrAstrologyReadingNotFound = errors.New("astrology reading not found")
)
