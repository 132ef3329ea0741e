package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/astropalm/backend-go/internal/database/models"
	"github.com/astropalm/backend-go/internal/database/service"
)

// TranslationHandler handles the translation RPC procedures
type TranslationHandler struct {
	translationService service.TranslationService
	logger             *slog.Logger
}

// NewTranslationHandler creates a new translation handler
func NewTranslationHandler(translationService service.TranslationService, logger *slog.Logger) *TranslationHandler {
	return &TranslationHandler{
		translationService: translationService,
		logger:             logger,
	}
}

// Request DTOs. The text fields are pointers so that an absent field is
// rejected while a present-but-empty string is accepted.
type CreateTranslationRequest struct {
	Key         string  `json:"key" binding:"required"`
	TextBengali *string `json:"text_bengali" binding:"required"`
	TextHindi   *string `json:"text_hindi" binding:"required"`
	TextEnglish *string `json:"text_english" binding:"required"`
}

type GetTranslationsRequest struct {
	Language models.Language `form:"language" binding:"required,oneof=bengali hindi english"`
	Keys     []string        `form:"keys"`
}

// CreateTranslation handles the createTranslation mutation (upsert by key)
func (h *TranslationHandler) CreateTranslation(c *gin.Context) {
	var req CreateTranslationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("❌ [TranslationHandler] Invalid createTranslation request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request. key and all three text fields required."})
		return
	}

	translation, err := h.translationService.CreateTranslation(service.UpsertTranslationInput{
		Key:         req.Key,
		TextBengali: *req.TextBengali,
		TextHindi:   *req.TextHindi,
		TextEnglish: *req.TextEnglish,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, translation)
}

// GetTranslations handles the getTranslations query, returning a mapping
// from key to the text in the requested language
func (h *TranslationHandler) GetTranslations(c *gin.Context) {
	var req GetTranslationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.logger.Error("❌ [TranslationHandler] Invalid getTranslations request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid language required"})
		return
	}

	translations, err := h.translationService.GetTranslations(req.Language, req.Keys)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, translations)
}
