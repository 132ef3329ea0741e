package service_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/astropalm/backend-go/internal/database/models"
	"github.com/astropalm/backend-go/internal/database/repository"
)

// setupTestDB creates a new in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.PalmReading{},
		&models.AstrologyReading{},
		&models.Translation{},
	)
	require.NoError(t, err)

	return db
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testDeps bundles the repositories the reading service tests seed through
type testDeps struct {
	db            *gorm.DB
	userRepo      repository.UserRepository
	palmRepo      repository.PalmReadingRepository
	astrologyRepo repository.AstrologyReadingRepository
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	user := &models.User{
		Email:             email,
		Name:              "Test User",
		PreferredLanguage: models.LanguageEnglish,
	}
	require.NoError(t, repository.NewUserRepository(db).Create(user))
	return user
}
