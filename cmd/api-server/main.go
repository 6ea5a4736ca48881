package main

import (
	"fmt"
	"log/slog"
	"os"

	"mangashelf/database"
	"mangashelf/internal/cache"
	"mangashelf/internal/config"
	"mangashelf/internal/http-api/handler"
	"mangashelf/internal/http-api/repository"
	"mangashelf/internal/http-api/router"
	"mangashelf/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.Connect(cfg, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	redisClient, err := cache.Connect(cfg)
	if err != nil {
		logger.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewRefreshTokenRepository(redisClient)
	genreRepo := repository.NewGenreRepository(db)
	serieRepo := repository.NewSerieRepository(db)
	chapterRepo := repository.NewChapterRepository(db)
	bookmarkRepo := repository.NewBookmarkRepository(db)

	tokens := service.NewTokenService(cfg)
	authService := service.NewAuthService(userRepo, tokenRepo, tokens)
	userService := service.NewUserService(userRepo)
	genreService := service.NewGenreService(genreRepo, serieRepo)
	serieService := service.NewSerieService(serieRepo, genreRepo, bookmarkRepo)
	chapterService := service.NewChapterService(chapterRepo, serieRepo)
	bookmarkService := service.NewBookmarkService(bookmarkRepo, serieRepo)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.New(cfg, tokens, router.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		User:     handler.NewUserHandler(userService),
		Genre:    handler.NewGenreHandler(genreService),
		Serie:    handler.NewSerieHandler(serieService),
		Chapter:  handler.NewChapterHandler(chapterService),
		Bookmark: handler.NewBookmarkHandler(bookmarkService),
	})

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("starting api server", "addr", addr, "env", cfg.GoEnv)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
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

	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
