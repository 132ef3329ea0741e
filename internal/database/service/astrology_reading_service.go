package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/astropalm/backend-go/internal/database/models"
	"github.com/astropalm/backend-go/internal/database/repository"
)

// CreateAstrologyReadingInput carries the validated fields for an
// astrology reading. The signs and reading texts are caller-supplied;
// no astronomical computation happens server-side.
type CreateAstrologyReadingInput struct {
	UserID             uint
	BirthDate          time.Time
	BirthTime          string
	BirthPlace         string
	BirthLatitude      float64
	BirthLongitude     float64
	ReadingTextBengali string
	ReadingTextHindi   string
	ReadingTextEnglish string
	ZodiacSign         string
	MoonSign           string
	RisingSign         string
}

// AstrologyReadingResult is an astrology reading with its numeric
// columns parsed back to genuine floating-point values.
type AstrologyReadingResult struct {
	ID                 uint      `json:"id"`
	UserID             uint      `json:"user_id"`
	BirthDate          time.Time `json:"birth_date"`
	BirthTime          string    `json:"birth_time"`
	BirthPlace         string    `json:"birth_place"`
	BirthLatitude      float64   `json:"birth_latitude"`
	BirthLongitude     float64   `json:"birth_longitude"`
	ReadingTextBengali string    `json:"reading_text_bengali"`
	ReadingTextHindi   string    `json:"reading_text_hindi"`
	ReadingTextEnglish string    `json:"reading_text_english"`
	ZodiacSign         string    `json:"zodiac_sign"`
	MoonSign           string    `json:"moon_sign"`
	RisingSign         string    `json:"rising_sign"`
	CreatedAt          time.Time `json:"created_at"`
}

// AstrologyReadingService defines the interface for astrology reading business logic
type AstrologyReadingService interface {
	CreateAstrologyReading(input CreateAstrologyReadingInput) (*AstrologyReadingResult, error)
	GetUserAstrologyReadings(userID uint) ([]AstrologyReadingResult, error)
	GetAstrologyReadingByID(id uint) (*AstrologyReadingResult, error)
}

type astrologyReadingService struct {
	astrologyRepo repository.AstrologyReadingRepository
	userRepo      repository.UserRepository
	logger        *slog.Logger
}

// NewAstrologyReadingService creates a new astrology reading service instance
func NewAstrologyReadingService(
	astrologyRepo repository.AstrologyReadingRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) AstrologyReadingService {
	return &astrologyReadingService{
		astrologyRepo: astrologyRepo,
		userRepo:      userRepo,
		logger:        logger,
	}
}

func (s *astrologyReadingService) CreateAstrologyReading(input CreateAstrologyReadingInput) (*AstrologyReadingResult, error) {
	s.logger.Info("🔮 [AstrologyReadingService] Creating astrology reading", "user_id", input.UserID)

	// Verify user exists
	if _, err := s.userRepo.FindByID(input.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, notFoundErrorf("user with id %d does not exist", input.UserID)
		}
		s.logger.Error("❌ [AstrologyReadingService] Failed to verify user", "user_id", input.UserID, "error", err)
		return nil, err
	}

	astrologyReading := &models.AstrologyReading{
		UserID:             input.UserID,
		BirthDate:          input.BirthDate,
		BirthTime:          input.BirthTime,
		BirthPlace:         input.BirthPlace,
		BirthLatitude:      strconv.FormatFloat(input.BirthLatitude, 'f', -1, 64),
		BirthLongitude:     strconv.FormatFloat(input.BirthLongitude, 'f', -1, 64),
		ReadingTextBengali: input.ReadingTextBengali,
		ReadingTextHindi:   input.ReadingTextHindi,
		ReadingTextEnglish: input.ReadingTextEnglish,
		ZodiacSign:         input.ZodiacSign,
		MoonSign:           input.MoonSign,
		RisingSign:         input.RisingSign,
	}

	if err := s.astrologyRepo.Create(astrologyReading); err != nil {
		s.logger.Error("❌ [AstrologyReadingService] Failed to store astrology reading", "user_id", input.UserID, "error", err)
		return nil, err
	}

	s.logger.Info("✅ [AstrologyReadingService] Astrology reading stored", "reading_id", astrologyReading.ID)

	return toAstrologyReadingResult(astrologyReading)
}

// GetUserAstrologyReadings returns all readings for a user, newest first
func (s *astrologyReadingService) GetUserAstrologyReadings(userID uint) ([]AstrologyReadingResult, error) {
	readings, err := s.astrologyRepo.FindByUserID(userID)
	if err != nil {
		s.logger.Error("❌ [AstrologyReadingService] Failed to fetch user astrology readings", "user_id", userID, "error", err)
		return nil, err
	}

	results := make([]AstrologyReadingResult, 0, len(readings))
	for i := range readings {
		result, err := toAstrologyReadingResult(&readings[i])
		if err != nil {
			return nil, err
		}
		results = append(results, *result)
	}
	return results, nil
}

// GetAstrologyReadingByID returns the reading or nil when absent
func (s *astrologyReadingService) GetAstrologyReadingByID(id uint) (*AstrologyReadingResult, error) {
	astrologyReading, err := s.astrologyRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrAstrologyReadingNotFound) {
			return nil, nil
		}
		s.logger.Error("❌ [AstrologyReadingService] Failed to get astrology reading", "reading_id", id, "error", err)
		return nil, err
	}
	return toAstrologyReadingResult(astrologyReading)
}

// toAstrologyReadingResult parses the text-stored coordinates back to
// floats on every outbound path.
func toAstrologyReadingResult(m *models.AstrologyReading) (*AstrologyReadingResult, error) {
	latitude, err := strconv.ParseFloat(m.BirthLatitude, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse birth latitude %q: %w", m.BirthLatitude, err)
	}

	longitude, err := strconv.ParseFloat(m.BirthLongitude, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse birth longitude %q: %w", m.BirthLongitude, err)
	}

	return &AstrologyReadingResult{
		ID:                 m.ID,
		UserID:             m.UserID,
		BirthDate:          m.BirthDate,
		BirthTime:          m.BirthTime,
		BirthPlace:         m.BirthPlace,
		BirthLatitude:      latitude,
		BirthLongitude:     longitude,
		ReadingTextBengali: m.ReadingTextBengali,
		ReadingTextHindi:   m.ReadingTextHindi,
		ReadingTextEnglish: m.ReadingTextEnglish,
		ZodiacSign:         m.ZodiacSign,
		MoonSign:           m.MoonSign,
		RisingSign:         m.RisingSign,
		CreatedAt:          m.CreatedAt,
	}, nil
}
