package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/redis/go-redis/v9"

	"sitefactory/api"
	"sitefactory/config"
	internalai "sitefactory/internal/ai"
	internalapi "sitefactory/internal/api"
	"sitefactory/internal/store"
	"sitefactory/internal/wizard"
)

func main() {
	initLogger()

	// Load .env before viper so env-based config sees it.
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("error loading .env file", "err", err)
		}
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		slog.Error("cannot load config", "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("could not create postgres pool", "err", err)
		os.Exit(1)
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		slog.Error("postgres connectivity check failed", "err", err)
		os.Exit(1)
	}
	slog.Info("postgres connection established")

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			slog.Warn("redis unreachable, slug cache disabled", "err", err)
			redisClient = nil
		}
	}
	slugCache := store.NewSlugCache(redisClient, cfg.CacheTTL())

	augmenter := internalai.NewAugmenter(cfg.OpenAIKey, cfg.OpenAIModel, cfg.AITimeout())
	catalog := store.NewInspirationCatalog(pool)
	wizardSvc := wizard.NewService(augmenter, catalog)
	projectStore := store.NewProjectStore(pool)

	handler := internalapi.NewAPIHandler(wizardSvc, projectStore, slugCache)

	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.AllowedOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.AllowedOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	api.RegisterRoutes(router, handler)

	server := &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("starting API server", "addr", cfg.ServerAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("API server listen error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutting down", "signal", sig.String())

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("forced shutdown", "err", err)
	} else {
		slog.Info("API server gracefully stopped")
	}
}

func initLogger() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			TimeFormat: time.Kitchen,
		}),
	))
}
