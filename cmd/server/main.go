package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"

	redis_cache "eventsphere-api/internal/cache/redis"
	"eventsphere-api/internal/config"
	http_delivery "eventsphere-api/internal/delivery/http"
	event_handler "eventsphere-api/internal/delivery/http/event"
	post_handler "eventsphere-api/internal/delivery/http/post"
	user_handler "eventsphere-api/internal/delivery/http/user"
	metrics_server "eventsphere-api/internal/delivery/metrics"
	bcrypt_hasher "eventsphere-api/internal/hasher/bcrypt"
	"eventsphere-api/internal/logger"
	prometheus_metrics "eventsphere-api/internal/metrics/prometheus"
	event_postgres "eventsphere-api/internal/repository/event/postgres"
	post_postgres "eventsphere-api/internal/repository/post/postgres"
	user_postgres "eventsphere-api/internal/repository/user/postgres"
	auth_service "eventsphere-api/internal/service/auth"
	engagement_service "eventsphere-api/internal/service/engagement"
	event_service "eventsphere-api/internal/service/event"
	feed_service "eventsphere-api/internal/service/feed"
	profile_service "eventsphere-api/internal/service/profile"
	disk_storage "eventsphere-api/internal/storage/disk"
)

func main() {
	cfg := config.MustLoad()
	dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DbName)
	ctx := context.Background()
	log := logger.New(cfg.Env)

	if err := runMigrations(dsn, cfg.Database.MigrationsPath); err != nil {
		log.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Error("Failed to parse postgres poolConfig", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	log.Info("Connecting to Redis",
		slog.String("address", cfg.Redis.Address),
		slog.Int("port", cfg.Redis.Port),
		slog.Int("db", cfg.Redis.DB))
	redisClient, err := redis_cache.NewClient(cfg.Redis, log)
	if err != nil {
		log.Error("Failed to create Redis client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", slog.String("error", err.Error()))
		}
	}()

	fileStorage, err := disk_storage.NewFileStorage(cfg.Uploads.Dir, log)
	if err != nil {
		log.Error("Failed to prepare upload storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	metrics := prometheus_metrics.NewPrometheusMetricsProvider()
	metrics.SetServiceHealth(true)

	feedCache := redis_cache.NewFeedCache(redisClient, log)

	postRepo := post_postgres.NewPostRepository(pool, log, metrics)
	userRepo := user_postgres.NewUserRepository(pool, log, metrics)
	eventRepo := event_postgres.NewEventRepository(pool, log, metrics)

	passwordHasher := bcrypt_hasher.NewHasher()

	likeService := engagement_service.NewLikeServiceCacheDecorator(
		engagement_service.NewLikeService(postRepo, log),
		feedCache,
		log,
		metrics,
	)
	feedService := feed_service.NewFeedServiceCacheDecorator(
		feed_service.NewFeedService(postRepo, log),
		feedCache,
		log,
		metrics,
	)
	authService := auth_service.NewAuthService(userRepo, passwordHasher, log)
	profileService := profile_service.NewProfileService(userRepo, fileStorage, passwordHasher, log)
	eventService := event_service.NewEventService(eventRepo, log)

	validate := validator.New()

	postHandler := post_handler.NewHandler(likeService, feedService, validate, log, metrics)
	userHandler := user_handler.NewHandler(authService, profileService, validate, log, metrics)
	eventHandler := event_handler.NewHandler(eventService, validate, log)

	router := http_delivery.NewRouter(postHandler, userHandler, eventHandler, cfg.Uploads.Dir, log, metrics)
	httpServer := http_delivery.NewServer(router, cfg.HTTPServer.Address, cfg.HTTPServer.Port, log)

	metricsServer := metrics_server.NewMetricsServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)
	metricsDone := make(chan bool, 1)

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		done <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	<-quit
	log.Info("Shutting down servers...")

	metrics.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	<-metricsDone

	log.Info("Server exited")
}

func runMigrations(dsn, migrationsPath string) error {
	m, err := migrate.New(fmt.Sprintf("file://%s", migrationsPath), dsn)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer func() {
		_, _ = m.Close()
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}
