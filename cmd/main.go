package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/accident_map/internal/config"
	"github.com/shenikar/accident_map/internal/geocode"
	v1 "github.com/shenikar/accident_map/internal/handler/http/v1"
	"github.com/shenikar/accident_map/internal/models"
	"github.com/shenikar/accident_map/internal/observability"
	"github.com/shenikar/accident_map/internal/repository"
	"github.com/shenikar/accident_map/internal/service"
	"github.com/shenikar/accident_map/pkg/firebolt"
	"github.com/shenikar/accident_map/pkg/logger"

	_ "github.com/shenikar/accident_map/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Accident Map API
// @version 1.0
// @description Spatial accident search over the Firebolt warehouse, rendered as GeoJSON.
// @host localhost:5000
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFile)

	// Метрики регистрируются в стандартном реестре, его отдает /metrics
	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)

	// Статическая таблица мест
	locations := models.NewLocationTable(cfg.Locations)
	log.WithField("count", len(cfg.Locations)).Info("Static locations loaded")

	// Инициализация геокодера и резолвера мест
	clock := clockwork.NewRealClock()
	geocoder := geocode.NewClient(cfg, clock, log, metrics)
	resolver := service.NewLocationResolver(locations, geocoder, log)

	// Инициализация репозиториев. Соединение с Firebolt открывается на каждый запрос.
	connector := firebolt.NewConnector(cfg)
	accidentRepo := repository.NewAccidentRepository(connector, clock, log, metrics)

	// Инициализация сервисов
	accidentService := service.NewAccidentService(resolver, accidentRepo, log, metrics)

	// Инициализация хэндлеров
	handler := v1.NewHandler(accidentService, log, cfg, metrics)

	// Настройка Gin роутера
	router := gin.Default()
	handler.RegisterRoutes(router)

	// Метрики и Swagger UI
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
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
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
