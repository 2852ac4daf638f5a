package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fleetops/internal/config"
	"fleetops/internal/handlers"
	"fleetops/internal/middleware"
	"fleetops/internal/repositories/mongodb"
	"fleetops/internal/scheduler"
	"fleetops/internal/services"
	"fleetops/pkg/cache"
	"fleetops/pkg/database"
	"fleetops/pkg/logger"
	"fleetops/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.Logger.Level),
		Format: cfg.Logger.Format,
		Output: cfg.Logger.Output,
		Caller: cfg.Logger.Caller,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Connect to MongoDB and apply index migrations
	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Close()

	if err := database.NewMigrator(db.Database).Up(); err != nil {
		appLogger.Fatalf("Failed to run migrations: %v", err)
	}

	// Redis backs the dashboard cache and rate limiting. The server runs
	// without it, just slower.
	redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		appLogger.WithError(err).Warn("Redis unavailable, caching disabled")
		redisCache = nil
	} else {
		defer redisCache.Close()
	}

	// Repositories
	vehicleRepo := mongodb.NewVehicleRepository(db.Database)
	tripRepo := mongodb.NewTripRepository(db.Database)
	fuelRepo := mongodb.NewFuelRecordRepository(db.Database)
	maintenanceRepo := mongodb.NewMaintenanceRepository(db.Database)
	reportRepo := mongodb.NewPerformanceReportRepository(db.Database)

	// Services
	reconciler := services.NewStatusReconciler(vehicleRepo, maintenanceRepo, db, appLogger)
	vehicleService := services.NewVehicleService(vehicleRepo, tripRepo, fuelRepo, maintenanceRepo, appLogger)
	tripService := services.NewTripService(tripRepo, vehicleRepo, appLogger)
	fuelService := services.NewFuelService(fuelRepo, vehicleRepo, appLogger)
	maintenanceService := services.NewMaintenanceService(maintenanceRepo, vehicleRepo, reconciler, appLogger)
	reportService := services.NewReportService(reportRepo, fuelRepo, tripRepo, maintenanceRepo, vehicleRepo, appLogger)

	var dashboardCache services.DashboardCache
	if redisCache != nil {
		dashboardCache = redisCache
	}
	dashboardService := services.NewDashboardService(vehicleRepo, tripRepo, fuelRepo, maintenanceRepo, dashboardCache, appLogger)

	// Background jobs
	fleetScheduler := scheduler.NewScheduler(maintenanceRepo, reconciler, appLogger)
	fleetScheduler.Start()
	defer fleetScheduler.Stop()

	// HTTP surface
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(appLogger))
	if redisCache != nil {
		router.Use(middleware.RateLimit(redisCache, int64(cfg.Security.RateLimitPerMinute)))
	}

	routes.Setup(router, &routes.Handlers{
		Vehicle:     handlers.NewVehicleHandler(vehicleService),
		Trip:        handlers.NewTripHandler(tripService),
		Fuel:        handlers.NewFuelHandler(fuelService),
		Maintenance: handlers.NewMaintenanceHandler(maintenanceService),
		Report:      handlers.NewReportHandler(reportService),
		Dashboard:   handlers.NewDashboardHandler(dashboardService),
	}, cfg.Security.JWTSecret)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "degraded",
				"version": cfg.App.Version,
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": cfg.App.Version,
		})
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		appLogger.Infof("Starting server on port %d", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Errorf("Forced shutdown: %v", err)
	}
}
