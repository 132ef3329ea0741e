package service

import (
	"errors"
	"log/slog"

	"github.com/astropalm/backend-go/internal/database/models"
	"github.com/astropalm/backend-go/internal/database/repository"
)

// CreateUserInput carries the validated fields for user creation
type CreateUserInput struct {
	Email             string
	Name              string
	PreferredLanguage models.Language
}

// UpdateUserInput carries a partial update: nil fields are left unchanged
type UpdateUserInput struct {
	ID                uint
	Email             *string
	Name              *string
	PreferredLanguage *models.Language
}

// UserService defines the interface for user business logic
type UserService interface {
	CreateUser(input CreateUserInput) (*models.User, error)
	UpdateUser(input UpdateUserInput) (*models.User, error)
	GetUser(id uint) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repository.UserRepository, logger *slog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *userService) CreateUser(input CreateUserInput) (*models.User, error) {
	s.logger.Info("📝 [UserService] Creating user", "email", input.Email)

	// Check if email already exists
	existingUser, err := s.userRepo.FindByEmail(input.Email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		s.logger.Error("❌ [UserService] Database error checking email", "error", err)
		return nil, err
	}

	if existingUser != nil {
		s.logger.Warn("⚠️ [UserService] Email already registered", "email", input.Email)
		return nil, ErrEmailAlreadyExists
	}

	user := &models.User{
		Email:             input.Email,
		Name:              input.Name,
		PreferredLanguage: input.PreferredLanguage,
	}

	if err := s.userRepo.Create(user); err != nil {
		// Concurrent create may still hit the unique index
		if repository.IsUniqueViolation(err) {
			s.logger.Warn("⚠️ [UserService] Email already registered", "email", input.Email)
			return nil, ErrEmailAlreadyExists
		}
		s.logger.Error("❌ [UserService] Failed to create user", "error", err)
		return nil, err
	}

	s.logger.Info("✅ [UserService] User created", "user_id", user.ID)
	return user, nil
}

func (s *userService) UpdateUser(input UpdateUserInput) (*models.User, error) {
	s.logger.Info("📝 [UserService] Updating user", "user_id", input.ID)

	user, err := s.userRepo.FindByID(input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, notFoundErrorf("user with id %d not found", input.ID)
		}
		s.logger.Error("❌ [UserService] Failed to find user", "user_id", input.ID, "error", err)
		return nil, err
	}

	// Apply only the provided fields; Save always refreshes updated_at
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.PreferredLanguage != nil {
		user.PreferredLanguage = *input.PreferredLanguage
	}

	if err := s.userRepo.Update(user); err != nil {
		s.logger.Error("❌ [UserService] Failed to update user", "user_id", input.ID, "error", err)
		return nil, err
	}

	s.logger.Info("✅ [UserService] User updated", "user_id", user.ID)
	return user, nil
}

// GetUser returns the user or nil when absent; absence is not an error
func (s *userService) GetUser(id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil
		}
		s.logger.Error("❌ [UserService] Failed to get user", "user_id", id, "error", err)
		return nil, err
	}
	return user, nil
}
