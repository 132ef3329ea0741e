package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/astropalm/backend-go/internal/database/models"
	"github.com/astropalm/backend-go/internal/database/repository"
	"github.com/astropalm/backend-go/internal/reading"
)

// UploadPalmImageInput carries the validated fields for a palm upload.
// ImageData is an opaque base64 payload; Language is forwarded for the
// client and does not affect which reading texts get stored.
type UploadPalmImageInput struct {
	UserID    uint
	ImageData string
	Language  models.Language
}

// PalmReadingResult is a palm reading with its numeric column parsed
// back to a genuine floating-point value.
type PalmReadingResult struct {
	ID                 uint      `json:"id"`
	UserID             uint      `json:"user_id"`
	ImageURL           string    `json:"image_url"`
	ReadingTextBengali string    `json:"reading_text_bengali"`
	ReadingTextHindi   string    `json:"reading_text_hindi"`
	ReadingTextEnglish string    `json:"reading_text_english"`
	ConfidenceScore    float64   `json:"confidence_score"`
	CreatedAt          time.Time `json:"created_at"`
}

// PalmReadingService defines the interface for palm reading business logic
type PalmReadingService interface {
	UploadPalmImage(input UploadPalmImageInput) (*PalmReadingResult, error)
	GetUserPalmReadings(userID uint) ([]PalmReadingResult, error)
	GetPalmReadingByID(id uint) (*PalmReadingResult, error)
}

type palmReadingService struct {
	palmRepo  repository.PalmReadingRepository
	userRepo  repository.UserRepository
	generator reading.Generator
	logger    *slog.Logger
}

// NewPalmReadingService creates a new palm reading service instance
func NewPalmReadingService(
	palmRepo repository.PalmReadingRepository,
	userRepo repository.UserRepository,
	generator reading.Generator,
	logger *slog.Logger,
) PalmReadingService {
	return &palmReadingService{
		palmRepo:  palmRepo,
		userRepo:  userRepo,
		generator: generator,
		logger:    logger,
	}
}

func (s *palmReadingService) UploadPalmImage(input UploadPalmImageInput) (*PalmReadingResult, error) {
	s.logger.Info("🖐️ [PalmReadingService] Processing palm image upload", "user_id", input.UserID)

	// Verify user exists
	if _, err := s.userRepo.FindByID(input.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, notFoundErrorf("user not found")
		}
		s.logger.Error("❌ [PalmReadingService] Failed to verify user", "user_id", input.UserID, "error", err)
		return nil, err
	}

	// A real implementation would decode the payload, upload it to cloud
	// storage and run it through the analysis service. Both steps are
	// simulated in-process: a synthesized storage reference and the stub
	// generator's templated analysis.
	imageURL := fmt.Sprintf("https://palm-images.example.com/user-%d-%s.jpg", input.UserID, uuid.NewString())
	analysis := s.generator.AnalyzePalm()

	palmReading := &models.PalmReading{
		UserID:             input.UserID,
		ImageURL:           imageURL,
		ReadingTextBengali: analysis.TextBengali,
		ReadingTextHindi:   analysis.TextHindi,
		ReadingTextEnglish: analysis.TextEnglish,
		ConfidenceScore:    strconv.FormatFloat(analysis.ConfidenceScore, 'f', 2, 64),
	}

	if err := s.palmRepo.Create(palmReading); err != nil {
		s.logger.Error("❌ [PalmReadingService] Failed to store palm reading", "user_id", input.UserID, "error", err)
		return nil, err
	}

	s.logger.Info("✅ [PalmReadingService] Palm reading stored",
		"reading_id", palmReading.ID,
		"confidence_score", palmReading.ConfidenceScore,
	)

	return toPalmReadingResult(palmReading)
}

// GetUserPalmReadings returns all readings for a user, newest first
func (s *palmReadingService) GetUserPalmReadings(userID uint) ([]PalmReadingResult, error) {
	readings, err := s.palmRepo.FindByUserID(userID)
	if err != nil {
		s.logger.Error("❌ [PalmReadingService] Failed to fetch user palm readings", "user_id", userID, "error", err)
		return nil, err
	}

	results := make([]PalmReadingResult, 0, len(readings))
	for i := range readings {
		result, err := toPalmReadingResult(&readings[i])
		if err != nil {
			return nil, err
		}
		results = append(results, *result)
	}
	return results, nil
}

// GetPalmReadingByID returns the reading or nil when absent
func (s *palmReadingService) GetPalmReadingByID(id uint) (*PalmReadingResult, error) {
	palmReading, err := s.palmRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrPalmReadingNotFound) {
			return nil, nil
		}
		s.logger.Error("❌ [PalmReadingService] Failed to get palm reading", "reading_id", id, "error", err)
		return nil, err
	}
	return toPalmReadingResult(palmReading)
}

// toPalmReadingResult parses the text-stored confidence score back to a
// float. Skipping the parse-back is a correctness bug, not a style choice.
func toPalmReadingResult(m *models.PalmReading) (*PalmReadingResult, error) {
	confidence, err := strconv.ParseFloat(m.ConfidenceScore, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse confidence score %q: %w", m.ConfidenceScore, err)
	}

	return &PalmReadingResult{
		ID:                 m.ID,
		UserID:             m.UserID,
		ImageURL:           m.ImageURL,
		ReadingTextBengali: m.ReadingTextBengali,
		ReadingTextHindi:   m.ReadingTextHindi,
		ReadingTextEnglish: m.ReadingTextEnglish,
		ConfidenceScore:    confidence,
		CreatedAt:          m.CreatedAt,
	}, nil
}
