package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-matching-service/config"
	_ "go-matching-service/docs" // Important for Swagger
	v1 "go-matching-service/internal/delivery/http/v1"
	"go-matching-service/internal/domain"
	"go-matching-service/internal/matching"
	"go-matching-service/internal/usecase"
	"go-matching-service/pkg/embedding"
	"go-matching-service/pkg/logger"
	"go-matching-service/pkg/redis"
)

// @title           Job Matching Service API
// @version         1.0
// @description     Scores candidates against job postings and detects duplicate candidate records.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		os.Exit(1)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting matching service", "port", cfg.Port)

	// 3. Setup Redis (optional: embedding cache + rate limit counters)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, continuing without cache", "error", err.Error())
	}
	defer redis.Close()

	// 4. Setup Embedding Provider
	ctx := context.Background()
	gemini, err := embedding.NewGeminiEmbedder(ctx, cfg.GeminiAPIKey, cfg.EmbeddingModel)
	if err != nil {
		logger.Log.Error("Failed to create embedding provider", "error", err.Error())
		os.Exit(1)
	}

	var embedder domain.Embedder = gemini
	if redis.Client() != nil {
		embedder = embedding.NewCachedEmbedder(gemini, redis.Client(), gemini.Model())
		logger.Log.Info("Embedding cache enabled", "model", gemini.Model())
	}

	// 5. Setup Engine and UseCases
	engine := matching.NewEngine(embedder)
	matchUC := usecase.NewMatchUsecase(engine, cfg.DuplicateThreshold)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		MatchUC: matchUC,
		Config:  cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
