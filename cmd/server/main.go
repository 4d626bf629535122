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
	"go.uber.org/zap"

	"github.com/erick-chung/near-you/internal/application"
	"github.com/erick-chung/near-you/internal/auth"
	"github.com/erick-chung/near-you/internal/config"
	"github.com/erick-chung/near-you/internal/database"
	"github.com/erick-chung/near-you/internal/events"
	"github.com/erick-chung/near-you/internal/geo"
	"github.com/erick-chung/near-you/internal/handler"
	"github.com/erick-chung/near-you/internal/health"
	"github.com/erick-chung/near-you/internal/logger"
	"github.com/erick-chung/near-you/internal/middleware"
	"github.com/erick-chung/near-you/internal/places"
	"github.com/erick-chung/near-you/internal/repository"
	"github.com/erick-chung/near-you/internal/retry"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, "service-discovery")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-discovery",
		zap.String("port", cfg.Port),
	)

	// Connect to database
	db, err := database.Connect(cfg.DBConfig, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run database migrations
	if cfg.AppEnv == "development" {
		if err := db.AutoMigrate(&repository.FavoriteModel{}, &repository.SearchRecordModel{}); err != nil {
			log.Fatal("failed to run auto-migration", zap.Error(err))
		}
		log.Info("database migration completed (dev auto-migrate)")
	} else {
		if err := database.RunMigrations(cfg.DBConfig.URL(), "migrations", log); err != nil {
			log.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, 15*time.Minute)

	// Initialize Kafka producer
	kafkaProducer := events.NewProducer(cfg.KafkaBrokers, log)
	defer func() { _ = kafkaProducer.Close() }()

	// Initialize provider clients
	geoResolver := geo.NewResolver(cfg.GoogleMapsAPIKey)
	placesGateway := places.NewGateway(cfg.GoogleMapsAPIKey)

	retryPolicy := retry.NewPolicy(
		retry.WithMaxAttempts(cfg.Retry.MaxAttempts),
		retry.WithBaseDelay(cfg.Retry.BaseDelay),
	)

	// Initialize repositories
	favoriteRepo := repository.NewGormFavoriteRepository(db)
	historyRepo := repository.NewGormHistoryRepository(db)

	// Initialize application services
	searchService := application.NewSearchService(
		geoResolver,
		placesGateway,
		historyRepo,
		kafkaProducer,
		retryPolicy,
		log,
	)
	favoriteService := application.NewFavoriteService(favoriteRepo, kafkaProducer, log)

	// Initialize HTTP handlers
	searchHandler := handler.NewSearchHandler(searchService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// Register health check routes
	healthHandler := health.NewHandler(db, "service-discovery")
	healthHandler.RegisterRoutes(router)

	// Register routes
	searchHandler.RegisterRoutes(&router.RouterGroup, jwtManager)
	favoriteHandler.RegisterRoutes(&router.RouterGroup, jwtManager)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down service-discovery...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("service-discovery stopped")
}
