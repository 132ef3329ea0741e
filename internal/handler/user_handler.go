package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/astropalm/backend-go/internal/database/models"
	"github.com/astropalm/backend-go/internal/database/service"
)

// UserHandler handles the user RPC procedures
type UserHandler struct {
	userService service.UserService
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// Request DTOs
type CreateUserRequest struct {
	Email             string          `json:"email" binding:"required,email"`
	Name              string          `json:"name" binding:"required,min=1"`
	PreferredLanguage models.Language `json:"preferred_language" binding:"required,oneof=bengali hindi english"`
}

type UpdateUserRequest struct {
	ID                uint             `json:"id" binding:"required"`
	Email             *string          `json:"email" binding:"omitempty,email"`
	Name              *string          `json:"name" binding:"omitempty,min=1"`
	PreferredLanguage *models.Language `json:"preferred_language" binding:"omitempty,oneof=bengali hindi english"`
}

type GetUserRequest struct {
	ID uint `form:"id" binding:"required"`
}

// CreateUser handles the createUser mutation
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("❌ [UserHandler] Invalid createUser request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request. Valid email, non-empty name, and preferred_language required."})
		return
	}

	user, err := h.userService.CreateUser(service.CreateUserInput{
		Email:             req.Email,
		Name:              req.Name,
		PreferredLanguage: req.PreferredLanguage,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// UpdateUser handles the updateUser mutation; absent fields stay unchanged
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("❌ [UserHandler] Invalid updateUser request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request. Numeric id required; optional fields must be valid when present."})
		return
	}

	user, err := h.userService.UpdateUser(service.UpdateUserInput{
		ID:                req.ID,
		Email:             req.Email,
		Name:              req.Name,
		PreferredLanguage: req.PreferredLanguage,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUser handles the getUser query; absence yields a null body, not an error
func (h *UserHandler) GetUser(c *gin.Context) {
	var req GetUserRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.logger.Error("❌ [UserHandler] Invalid getUser request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Numeric id required"})
		return
	}

	user, err := h.userService.GetUser(req.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if user == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, user)
}
