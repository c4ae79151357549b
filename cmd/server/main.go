package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/futureissustainable/healthscore-2.0/config"
	httpDelivery "github.com/futureissustainable/healthscore-2.0/internal/delivery/http"
	"github.com/futureissustainable/healthscore-2.0/internal/infrastructure/gemini"
	"github.com/futureissustainable/healthscore-2.0/internal/infrastructure/history"
	"github.com/futureissustainable/healthscore-2.0/internal/usecase"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Server.Environment == "production" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	logger.WithFields(logrus.Fields{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"model":       cfg.Gemini.Model,
	}).Info("starting healthscore backend v2.0.0")

	// Initialize infrastructure dependencies
	geminiClient := gemini.NewClient(gemini.Config{
		APIKey:  cfg.Gemini.APIKey,
		BaseURL: cfg.Gemini.BaseURL,
		Model:   cfg.Gemini.Model,
	}, logger)

	historyStore := history.NewMemoryStore()

	// Initialize usecase layer
	analysisService := usecase.NewAnalysisService(
		geminiClient,
		geminiClient,
		historyStore,
		usecase.AnalysisServiceConfig{SafetyTimeout: cfg.Safety.Timeout},
		logger,
	)

	// Quota, handler, router
	quota := httpDelivery.NewQuota(cfg.Quota.DailyLimit, cfg.Quota.Window)
	handler := httpDelivery.NewHandler(analysisService, quota)
	router := httpDelivery.SetupRouter(cfg, handler, quota)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Infof("server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
