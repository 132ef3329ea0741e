package service_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astropalm/backend-go/internal/database/models"
	"github.com/astropalm/backend-go/internal/database/repository"
	"github.com/astropalm/backend-go/internal/database/service"
	"github.com/astropalm/backend-go/internal/reading"
)

func newPalmService(t *testing.T) (service.PalmReadingService, *testDeps) {
	db := setupTestDB(t)
	deps := &testDeps{
		db:       db,
		palmRepo: repository.NewPalmReadingRepository(db),
		userRepo: repository.NewUserRepository(db),
	}
	svc := service.NewPalmReadingService(deps.palmRepo, deps.userRepo, reading.NewStubGenerator(), testLogger())
	return svc, deps
}

func TestPalmReadingService_UploadPalmImage(t *testing.T) {
	svc, deps := newPalmService(t)
	user := createTestUser(t, deps.db, "upload@example.com")

	result, err := svc.UploadPalmImage(service.UploadPalmImageInput{
		UserID:    user.ID,
		ImageData: "ZmFrZS1pbWFnZS1kYXRh",
		Language:  models.LanguageHindi,
	})
	require.NoError(t, err)

	assert.NotZero(t, result.ID)
	assert.Contains(t, result.ImageURL, fmt.Sprintf("palm-images.example.com/user-%d-", user.ID))

	// All three languages populated regardless of the requested language
	assert.NotEmpty(t, result.ReadingTextBengali)
	assert.NotEmpty(t, result.ReadingTextHindi)
	assert.NotEmpty(t, result.ReadingTextEnglish)

	assert.GreaterOrEqual(t, result.ConfidenceScore, 0.6)
	assert.LessOrEqual(t, result.ConfidenceScore, 0.95)
}

func TestPalmReadingService_UploadPalmImage_UserNotFound(t *testing.T) {
	svc, _ := newPalmService(t)

	_, err := svc.UploadPalmImage(service.UploadPalmImageInput{
		UserID:    999999,
		ImageData: "ZmFrZQ==",
		Language:  models.LanguageEnglish,
	})
	require.Error(t, err)
	assert.True(t, service.IsNotFound(err))
	assert.Equal(t, "user not found", err.Error())
}

func TestPalmReadingService_ConfidenceRoundTrip(t *testing.T) {
	svc, deps := newPalmService(t)
	user := createTestUser(t, deps.db, "roundtrip@example.com")

	uploaded, err := svc.UploadPalmImage(service.UploadPalmImageInput{
		UserID:    user.ID,
		ImageData: "ZmFrZQ==",
		Language:  models.LanguageBengali,
	})
	require.NoError(t, err)

	fetched, err := svc.GetPalmReadingByID(uploaded.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)

	// Written then read back, the score survives within storage precision
	assert.InDelta(t, uploaded.ConfidenceScore, fetched.ConfidenceScore, 0.001)
}

func TestPalmReadingService_GetUserPalmReadings_NewestFirst(t *testing.T) {
	svc, deps := newPalmService(t)
	user := createTestUser(t, deps.db, "palmlist@example.com")

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		require.NoError(t, deps.palmRepo.Create(&models.PalmReading{
			UserID:             user.ID,
			ImageURL:           fmt.Sprintf("https://palm-images.example.com/img-%d.jpg", i),
			ReadingTextBengali: "বাংলা",
			ReadingTextHindi:   "हिंदी",
			ReadingTextEnglish: "english",
			ConfidenceScore:    "0.75",
			CreatedAt:          base.Add(time.Duration(i) * time.Minute),
		}))
	}

	results, err := svc.GetUserPalmReadings(user.ID)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.True(t, results[0].CreatedAt.After(results[1].CreatedAt))
	assert.True(t, results[1].CreatedAt.After(results[2].CreatedAt))
}

func TestPalmReadingService_GetUserPalmReadings_Empty(t *testing.T) {
	svc, deps := newPalmService(t)
	user := createTestUser(t, deps.db, "nopalms@example.com")

	results, err := svc.GetUserPalmReadings(user.ID)
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestPalmReadingService_GetPalmReadingByID_Absent(t *testing.T) {
	svc, _ := newPalmService(t)

	result, err := svc.GetPalmReadingByID(999999)
	require.NoError(t, err)
	assert.Nil(t, result)
}
