package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/astropalm/backend-go/internal/database/service"
)

// AstrologyReadingHandler handles the astrology reading RPC procedures
type AstrologyReadingHandler struct {
	astrologyService service.AstrologyReadingService
	logger           *slog.Logger
}

// NewAstrologyReadingHandler creates a new astrology reading handler
func NewAstrologyReadingHandler(astrologyService service.AstrologyReadingService, logger *slog.Logger) *AstrologyReadingHandler {
	return &AstrologyReadingHandler{
		astrologyService: astrologyService,
		logger:           logger,
	}
}

// CreateAstrologyReadingRequest carries caller-supplied birth details,
// signs, and reading texts. Coordinates are range-checked here, before
// any persistence access. The text and sign fields are pointers so that
// an absent field is rejected while a present-but-empty string is
// accepted.
type CreateAstrologyReadingRequest struct {
	UserID             uint      `json:"user_id" binding:"required"`
	BirthDate          time.Time `json:"birth_date" binding:"required"`
	BirthTime          string    `json:"birth_time" binding:"required"`
	BirthPlace         string    `json:"birth_place" binding:"required"`
	BirthLatitude      float64   `json:"birth_latitude" binding:"min=-90,max=90"`
	BirthLongitude     float64   `json:"birth_longitude" binding:"min=-180,max=180"`
	ReadingTextBengali *string   `json:"reading_text_bengali" binding:"required"`
	ReadingTextHindi   *string   `json:"reading_text_hindi" binding:"required"`
	ReadingTextEnglish *string   `json:"reading_text_english" binding:"required"`
	ZodiacSign         *string   `json:"zodiac_sign" binding:"required"`
	MoonSign           *string   `json:"moon_sign" binding:"required"`
	RisingSign         *string   `json:"rising_sign" binding:"required"`
}

// CreateAstrologyReading handles the createAstrologyReading mutation
func (h *AstrologyReadingHandler) CreateAstrologyReading(c *gin.Context) {
	var req CreateAstrologyReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("❌ [AstrologyReadingHandler] Invalid createAstrologyReading request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request. user_id, birth details, reading texts, signs, and coordinates within range required."})
		return
	}

	result, err := h.astrologyService.CreateAstrologyReading(service.CreateAstrologyReadingInput{
		UserID:             req.UserID,
		BirthDate:          req.BirthDate,
		BirthTime:          req.BirthTime,
		BirthPlace:         req.BirthPlace,
		BirthLatitude:      req.BirthLatitude,
		BirthLongitude:     req.BirthLongitude,
		ReadingTextBengali: *req.ReadingTextBengali,
		ReadingTextHindi:   *req.ReadingTextHindi,
		ReadingTextEnglish: *req.ReadingTextEnglish,
		ZodiacSign:         *req.ZodiacSign,
		MoonSign:           *req.MoonSign,
		RisingSign:         *req.RisingSign,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetUserAstrologyReadings handles the getUserAstrologyReadings query
func (h *AstrologyReadingHandler) GetUserAstrologyReadings(c *gin.Context) {
	var req GetUserReadingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.logger.Error("❌ [AstrologyReadingHandler] Invalid getUserAstrologyReadings request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Numeric user_id required"})
		return
	}

	results, err := h.astrologyService.GetUserAstrologyReadings(req.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

// GetAstrologyReadingByID handles the getAstrologyReadingById query;
// absence yields a null body, not an error
func (h *AstrologyReadingHandler) GetAstrologyReadingByID(c *gin.Context) {
	var req GetReadingByIDRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.logger.Error("❌ [AstrologyReadingHandler] Invalid getAstrologyReadingById request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Numeric id required"})
		return
	}

	result, err := h.astrologyService.GetAstrologyReadingByID(req.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if result == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, result)
}
