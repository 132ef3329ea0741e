package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/astropalm/backend-go/internal/database/models"
)

// PalmReadingRepository defines the interface for palm reading data operations
type PalmReadingRepository interface {
	Create(reading *models.PalmReading) error
	FindByID(id uint) (*models.PalmReading, error)
	FindByUserID(userID uint) ([]models.PalmReading, error)
}

type palmReadingRepository struct {
	db *gorm.DB
}

// NewPalmReadingRepository creates a new palm reading repository instance
func NewPalmReadingRepository(db *gorm.DB) PalmReadingRepository {
	return &palmReadingRepository{db: db}
}

func (r *palmReadingRepository) Create(reading *models.PalmReading) error {
	return r.db.Create(reading).Error
}

func (r *palmReadingRepository) FindByID(id uint) (*models.PalmReading, error) {
	var reading models.PalmReading
	err := r.db.First(&reading, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPalmReadingNotFound
		}
		return nil, err
	}
	return &reading, nil
}

// FindByUserID returns all readings for a user, newest first
func (r *palmReadingRepository) FindByUserID(userID uint) ([]models.PalmReading, error) {
	var readings []models.PalmReading
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
	ErrPalmReadingNotFound = errors.New("palm reading not found")
)
