package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astropalm/backend-go/internal/database/models"
	"github.com/astropalm/backend-go/internal/database/repository"
	"github.com/astropalm/backend-go/internal/database/service"
)

func newAstrologyService(t *testing.T) (service.AstrologyReadingService, *testDeps) {
	db := setupTestDB(t)
	deps := &testDeps{
		db:            db,
		userRepo:      repository.NewUserRepository(db),
		astrologyRepo: repository.NewAstrologyReadingRepository(db),
	}
	svc := service.NewAstrologyReadingService(deps.astrologyRepo, deps.userRepo, testLogger())
	return svc, deps
}

func validAstrologyInput(userID uint) service.CreateAstrologyReadingInput {
	return service.CreateAstrologyReadingInput{
		UserID:             userID,
		BirthDate:          time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC),
		BirthTime:          "14:30",
		BirthPlace:         "New York, USA",
		BirthLatitude:      40.7128,
		BirthLongitude:     -89.9999,
		ReadingTextBengali: "বাংলা পাঠ",
		ReadingTextHindi:   "हिंदी पाठ",
		ReadingTextEnglish: "english text",
		ZodiacSign:         "Taurus",
		MoonSign:           "Cancer",
		RisingSign:         "Leo",
	}
}

func TestAstrologyReadingService_CreateAstrologyReading(t *testing.T) {
	svc, deps := newAstrologyService(t)
	user := createTestUser(t, deps.db, "astro@example.com")

	result, err := svc.CreateAstrologyReading(validAstrologyInput(user.ID))
	require.NoError(t, err)

	assert.NotZero(t, result.ID)
	assert.Equal(t, "Taurus", result.ZodiacSign)

	// Coordinates survive the text-storage round trip exactly
	assert.Equal(t, 40.7128, result.BirthLatitude)
	assert.Equal(t, -89.9999, result.BirthLongitude)
}

func TestAstrologyReadingService_CreateAstrologyReading_UserNotFound(t *testing.T) {
	svc, _ := newAstrologyService(t)

	_, err := svc.CreateAstrologyReading(validAstrologyInput(999999))
	require.Error(t, err)
	assert.True(t, service.IsNotFound(err))
	assert.Equal(t, "user with id 999999 does not exist", err.Error())
}

func TestAstrologyReadingService_CoordinateRoundTrip(t *testing.T) {
	svc, deps := newAstrologyService(t)
	user := createTestUser(t, deps.db, "coords@example.com")

	input := validAstrologyInput(user.ID)
	input.BirthLatitude = 90.0
	input.BirthLongitude = -180.0

	created, err := svc.CreateAstrologyReading(input)
	require.NoError(t, err)

	fetched, err := svc.GetAstrologyReadingByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)

	assert.Equal(t, 90.0, fetched.BirthLatitude)
	assert.Equal(t, -180.0, fetched.BirthLongitude)
}

func TestAstrologyReadingService_GetUserAstrologyReadings_NewestFirst(t *testing.T) {
	svc, deps := newAstrologyService(t)
	user := createTestUser(t, deps.db, "astrolist@example.com")

	base := time.Now().Add(-time.Hour)
	for i, place := range []string{"first", "second", "third"} {
		require.NoError(t, deps.astrologyRepo.Create(&models.AstrologyReading{
			UserID:             user.ID,
			BirthDate:          time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
			BirthTime:          "12:00",
			BirthPlace:         place,
			BirthLatitude:      "10.5",
			BirthLongitude:     "20.5",
			ReadingTextBengali: "বাংলা",
			ReadingTextHindi:   "हिंदी",
			ReadingTextEnglish: "english",
			ZodiacSign:         "Aries",
			MoonSign:           "Aries",
			RisingSign:         "Aries",
			CreatedAt:          base.Add(time.Duration(i) * time.Minute),
		}))
	}

	results, err := svc.GetUserAstrologyReadings(user.ID)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "third", results[0].BirthPlace)
	assert.Equal(t, "first", results[2].BirthPlace)
}

func TestAstrologyReadingService_GetUserAstrologyReadings_Empty(t *testing.T) {
	svc, deps := newAstrologyService(t)
	user := createTestUser(t, deps.db, "noastro@example.com")

	results, err := svc.GetUserAstrologyReadings(user.ID)
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestAstrologyReadingService_GetAstrologyReadingByID_Absent(t *testing.T) {
	svc, _ := newAstrologyService(t)

	result, err := svc.GetAstrologyReadingByID(999999)
	require.NoError(t, err)
	assert.Nil(t, result)
}
