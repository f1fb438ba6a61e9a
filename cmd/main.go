package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/airborne_threat_detection/internal/config"
	"github.com/shenikar/airborne_threat_detection/internal/gateway"
	v1 "github.com/shenikar/airborne_threat_detection/internal/handler/http/v1"
	"github.com/shenikar/airborne_threat_detection/internal/metrics"
	"github.com/shenikar/airborne_threat_detection/internal/repository"
	"github.com/shenikar/airborne_threat_detection/internal/service"
	"github.com/shenikar/airborne_threat_detection/internal/webhook"
	"github.com/shenikar/airborne_threat_detection/pkg/logger"
	"github.com/shenikar/airborne_threat_detection/pkg/postgres"
	redisclient "github.com/shenikar/airborne_threat_detection/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/airborne_threat_detection/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Airborne Threat Detection API
// @version 1.0
// @description Detection ingestion, incidents, alerts, threats and system health.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Вебхуки алертов: издатель пишет в очередь Redis, воркер доставляет
	webhookPublisher := webhook.NewRedisPublisher(redisClient)
	webhookWorker := webhook.NewWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Таблица уровней срочности
	severities, err := service.NewSeverityTable(cfg.SeverityTable)
	if err != nil {
		log.Fatalf("Invalid severity table: %v", err)
	}

	// Инициализация репозиториев
	incidentRepo := repository.NewIncidentRepository(dbpool, redisClient, cfg.IncidentCacheTTL)
	alertRepo := repository.NewAlertRepository(dbpool)
	threatRepo := repository.NewThreatRepository(dbpool)
	healthRepo := repository.NewSystemHealthRepository(dbpool)

	// Инициализация сервисов
	incidentService := service.NewIncidentService(incidentRepo, log, cfg)
	alertService := service.NewAlertService(alertRepo, webhookPublisher, severities, log)
	detectionClient := gateway.NewClient(cfg.DetectionURL, cfg.DetectionTimeout, log)
	detectionService := service.NewDetectionService(detectionClient, incidentService, alertService, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(v1.Services{
		Detection:    detectionService,
		Incidents:    incidentService,
		Alerts:       alertService,
		Threats:      service.NewThreatService(threatRepo, log),
		SystemHealth: service.NewSystemHealthService(healthRepo, log),
	}, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(v1.CORSMiddleware(cfg.CORSAllowedOrigins))
	router.Use(metrics.GinMiddleware())
	router.GET("/", v1.Root)
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Метрики Prometheus
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	// останавливаем воркер вебхуков
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
