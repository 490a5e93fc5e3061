package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ratehub/database"
	"ratehub/internal/cache"
	"ratehub/internal/config"
	"ratehub/internal/http-api/handler"
	"ratehub/internal/http-api/repository"
	"ratehub/internal/http-api/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("could not load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	var statsCache *cache.Cache
	if cfg.CacheEnabled {
		statsCache, err = cache.New(context.Background(), cfg.RedisURL, cfg.RedisPassword, cfg.CacheTTL)
		if err != nil {
			logger.Error("redis connection failed", "error", err)
			os.Exit(1)
		}
		defer statsCache.Close()
	}

	adminRepo := repository.NewAdminRepository(db)
	userRepo := repository.NewUserRepository(db)
	workRepo := repository.NewWorkRepository(db)
	dimensionRepo := repository.NewDimensionRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	fileRepo := repository.NewFileRepository(db)

	authService := service.NewAuthService(adminRepo, cfg)
	userService := service.NewUserService(userRepo)
	workService := service.NewWorkService(workRepo)
	dimensionService := service.NewDimensionService(dimensionRepo)
	ratingService := service.NewRatingService(ratingRepo, dimensionRepo, statsCache, logger)
	statsService := service.NewStatsService(ratingRepo, workRepo, userRepo, statsCache, logger)
	fileService := service.NewFileService(fileRepo, workRepo, cfg.FileStoragePath, cfg.UploadMaxBytes, logger)

	router := handler.NewRouter(cfg, authService, handler.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		User:      handler.NewUserHandler(userService),
		Work:      handler.NewWorkHandler(workService, fileService),
		Dimension: handler.NewDimensionHandler(dimensionService),
		Rating:    handler.NewRatingHandler(ratingService),
		Stats:     handler.NewStatsHandler(statsService),
		File:      handler.NewFileHandler(fileService),
		Front:     handler.NewFrontHandler(userService, workService, dimensionService, ratingService),
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "port", cfg.HTTPPort, "env", cfg.GoEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
