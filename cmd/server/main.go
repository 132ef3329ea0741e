package main

import (
	"fmt"
	"os"

	"github.com/astropalm/backend-go/internal/api"
	"github.com/astropalm/backend-go/internal/config"
	"github.com/astropalm/backend-go/internal/database"
	"github.com/astropalm/backend-go/internal/database/repository"
	"github.com/astropalm/backend-go/internal/database/service"
	"github.com/astropalm/backend-go/internal/handler"
	"github.com/astropalm/backend-go/internal/logger"
	"github.com/astropalm/backend-go/internal/reading"
)

func main() {
	// 1. Config
	cfg := config.LoadConfig()

	// 2. Logger
	appLogger := logger.New(cfg)

	appLogger.Info("🚀 [Go] Starting reading backend...",
		"environment", cfg.AppEnv,
	)

	// 3. Connect to Database
	if err := database.ConnectDatabase(cfg, appLogger); err != nil {
		appLogger.Error("❌ Failed to connect to database", "error", err)
		os.Exit(1)
	}

	db := database.GetDatabase()

	// 4. Initialize Repositories
	userRepo := repository.NewUserRepository(db)
	palmRepo := repository.NewPalmReadingRepository(db)
	astrologyRepo := repository.NewAstrologyReadingRepository(db)
	translationRepo := repository.NewTranslationRepository(db)

	// 5. Initialize Services
	generator := reading.NewStubGenerator()
	userService := service.NewUserService(userRepo, appLogger)
	palmService := service.NewPalmReadingService(palmRepo, userRepo, generator, appLogger)
	astrologyService := service.NewAstrologyReadingService(astrologyRepo, userRepo, appLogger)
	translationService := service.NewTranslationService(translationRepo, appLogger)

	// 6. Initialize Handlers
	userHandler := handler.NewUserHandler(userService, appLogger)
	palmHandler := handler.NewPalmReadingHandler(palmService, appLogger)
	astrologyHandler := handler.NewAstrologyReadingHandler(astrologyService, appLogger)
	translationHandler := handler.NewTranslationHandler(translationService, appLogger)

	// 7. Setup Router and start HTTP Server
	r := api.SetupRouter(userHandler, palmHandler, astrologyHandler, translationHandler)

	addr := fmt.Sprintf(":%s", cfg.ApiServicePort)
	appLogger.Info("🌍 [Go] HTTP Server running...", "port", cfg.ApiServicePort)
	if err := r.Run(addr); err != nil {
		appLogger.Error("❌ HTTP Server failed", "error", err)
		os.Exit(1)
	}
}
