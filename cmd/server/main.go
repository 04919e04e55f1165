package main

import (
	"log"

	"github.com/masaar-cx/survey-analytics-service/internal/cache"
	"github.com/masaar-cx/survey-analytics-service/internal/config"
	"github.com/masaar-cx/survey-analytics-service/internal/handlers"
	"github.com/masaar-cx/survey-analytics-service/internal/repositories/postgres"
	"github.com/masaar-cx/survey-analytics-service/internal/services"
	"github.com/masaar-cx/survey-analytics-service/internal/utils"
	"github.com/masaar-cx/survey-analytics-service/pkg"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var logger utils.Logger
	if cfg.Environment == "production" {
		logger = utils.NewDefaultLogger()
	} else {
		logger = utils.NewDevelopmentLogger()
	}

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatal(err)
	}

	redisClient, err := pkg.NewRedisClient(cfg)
	if err != nil {
		logger.Error("Failed to connect to Redis", "error", err)
		log.Fatal(err)
	}
	defer redisClient.Close()

	slogger := logger.(*utils.SlogLogger).GetSlogLogger()
	publisher, err := cfg.Events.CreateEventPublisher(slogger)
	if err != nil {
		logger.Error("Failed to create event publisher", "error", err)
		log.Fatal(err)
	}
	defer publisher.Close()

	validator := utils.NewValidator()
	cacheService := cache.NewRedisCache(redisClient)

	surveyRepo := postgres.NewSurveyPostgreSQL(db)
	answerRepo := postgres.NewAnswerPostgreSQL(db)

	analyticsService := services.NewAnalyticsService(
		surveyRepo,
		answerRepo,
		cacheService,
		publisher,
		logger,
		validator,
		cfg.DefaultTimezone,
	)
	exportService := services.NewReportExportService(analyticsService, publisher, logger)

	router := handlers.NewRouter(logger, cfg.Environment)
	handlerManager := handlers.NewHandlerManager(analyticsService, exportService, validator, logger)
	handlerManager.SetupRoutes(router)

	logger.Info("Starting survey analytics service",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"default_timezone", cfg.DefaultTimezone)

	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Error("Server stopped", "error", err)
		log.Fatal(err)
	}
}
