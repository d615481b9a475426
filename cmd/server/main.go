package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"fleetflow/internal/config"
	"fleetflow/internal/handlers"
	"fleetflow/internal/middleware"
	"fleetflow/internal/repositories/mongodb"
	"fleetflow/internal/services"
	"fleetflow/routes"
	"fleetflow/pkg/cache"
	"fleetflow/pkg/database"
	"fleetflow/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: cfg.App.LogFormat,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	defer db.Close()

	indexCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureIndexes(indexCtx, db); err != nil {
		cancel()
		appLogger.WithError(err).Fatal("Failed to create indexes")
	}
	cancel()

	// The cache is optional; everything degrades to direct reads without it.
	var redisCache *cache.RedisCache
	redisCache, err = cache.NewRedisCache(&cache.RedisConfig{
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
		appLogger.WithError(err).Warn("Redis unavailable, running without cache")
		redisCache = nil
	}

	// Repositories
	var repoCache mongodb.CacheService
	var svcCache services.CacheService
	if redisCache != nil {
		repoCache = redisCache
		svcCache = redisCache
	}
	vehicleRepo := mongodb.NewVehicleRepository(db.Database, repoCache)
	driverRepo := mongodb.NewDriverRepository(db.Database)
	tripRepo := mongodb.NewTripRepository(db.Database)
	maintenanceRepo := mongodb.NewMaintenanceRepository(db.Database)
	expenseRepo := mongodb.NewExpenseRepository(db.Database)
	userRepo := mongodb.NewUserRepository(db.Database)

	// Services
	vehicleService := services.NewVehicleService(vehicleRepo, driverRepo, appLogger)
	driverService := services.NewDriverService(driverRepo, vehicleRepo, appLogger)
	tripService := services.NewTripService(tripRepo, vehicleRepo, driverRepo, appLogger)
	maintenanceService := services.NewMaintenanceService(maintenanceRepo, vehicleRepo, driverRepo, appLogger)
	expenseService := services.NewExpenseService(expenseRepo, appLogger)
	analyticsService := services.NewAnalyticsService(vehicleRepo, driverRepo, tripRepo, maintenanceRepo, expenseRepo, svcCache, appLogger)
	authService := services.NewAuthService(userRepo, cfg.Security.JWTSecret, appLogger)

	// Handlers
	vehicleHandler := handlers.NewVehicleHandler(vehicleService)
	driverHandler := handlers.NewDriverHandler(driverService)
	tripHandler := handlers.NewTripHandler(tripService)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	authHandler := handlers.NewAuthHandler(authService)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.Security.CORSAllowedOrigins))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(appLogger))

	v1 := router.Group("/api/v1")
	{
		routes.SetupAuthRoutes(v1, authHandler, cfg.Security.JWTSecret)
		routes.SetupVehicleRoutes(v1, vehicleHandler, cfg.Security.JWTSecret)
		routes.SetupDriverRoutes(v1, driverHandler, cfg.Security.JWTSecret)
		routes.SetupTripRoutes(v1, tripHandler, cfg.Security.JWTSecret)
		routes.SetupMaintenanceRoutes(v1, maintenanceHandler, cfg.Security.JWTSecret)
		routes.SetupExpenseRoutes(v1, expenseHandler, cfg.Security.JWTSecret)
		routes.SetupAnalyticsRoutes(v1, analyticsHandler, cfg.Security.JWTSecret)
	}

	router.GET("/health", func(c *gin.Context) {
		status := gin.H{
			"status":  "healthy",
			"version": cfg.App.Version,
		}
		if err := db.Ping(); err != nil {
			status["status"] = "degraded"
			status["database"] = err.Error()
		}
		c.JSON(http.StatusOK, status)
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	appLogger.WithField("addr", addr).Info("starting server")
	if err := http.ListenAndServe(addr, router); err != nil {
		appLogger.WithError(err).Fatal("server stopped")
	}
}
