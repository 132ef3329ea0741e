package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/astropalm/backend-go/internal/database/models"
	"github.com/astropalm/backend-go/internal/database/service"
)

// PalmReadingHandler handles the palm reading RPC procedures
type PalmReadingHandler struct {
	palmService service.PalmReadingService
	logger      *slog.Logger
}

// NewPalmReadingHandler creates a new palm reading handler
func NewPalmReadingHandler(palmService service.PalmReadingService, logger *slog.Logger) *PalmReadingHandler {
	return &PalmReadingHandler{
		palmService: palmService,
		logger:      logger,
	}
}

// Request DTOs. The language on read requests is validated and forwarded
// for client-side formatting only; stored rows always carry all three
// languages.
type UploadPalmImageRequest struct {
	UserID    uint            `json:"user_id" binding:"required"`
	ImageData string          `json:"image_data" binding:"required"`
	Language  models.Language `json:"language" binding:"required,oneof=bengali hindi english"`
}

type GetUserReadingsRequest struct {
	UserID   uint            `form:"user_id" binding:"required"`
	Language models.Language `form:"language" binding:"omitempty,oneof=bengali hindi english"`
}

type GetReadingByIDRequest struct {
	ID       uint            `form:"id" binding:"required"`
	Language models.Language `form:"language" binding:"omitempty,oneof=bengali hindi english"`
}

// UploadPalmImage handles the uploadPalmImage mutation
func (h *PalmReadingHandler) UploadPalmImage(c *gin.Context) {
	var req UploadPalmImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("❌ [PalmReadingHandler] Invalid uploadPalmImage request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request. user_id, image_data, and language required."})
		return
	}

	result, err := h.palmService.UploadPalmImage(service.UploadPalmImageInput{
		UserID:    req.UserID,
		ImageData: req.ImageData,
		Language:  req.Language,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetUserPalmReadings handles the getUserPalmReadings query
func (h *PalmReadingHandler) GetUserPalmReadings(c *gin.Context) {
	var req GetUserReadingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.logger.Error("❌ [PalmReadingHandler] Invalid getUserPalmReadings request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Numeric user_id required"})
		return
	}

	results, err := h.palmService.GetUserPalmReadings(req.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

// GetPalmReadingByID handles the getPalmReadingById query; absence yields
// a null body, not an error
func (h *PalmReadingHandler) GetPalmReadingByID(c *gin.Context) {
	var req GetReadingByIDRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.logger.Error("❌ [PalmReadingHandler] Invalid getPalmReadingById request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Numeric id required"})
		return
	}

	result, err := h.palmService.GetPalmReadingByID(req.ID)
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
