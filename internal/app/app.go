package app

import (
	"context"
	"fmt"
	"time"

	"placement_backend/internal/auth"
	"placement_backend/internal/config"
	"placement_backend/internal/database"
	"placement_backend/internal/handlers"
	"placement_backend/internal/logger"
	"placement_backend/internal/middleware"
	"placement_backend/internal/preferences"
	"placement_backend/internal/repositories"
	"placement_backend/internal/routes"
	"placement_backend/internal/services"
	"placement_backend/internal/validator"
	"placement_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	cfg, err := config.Load()
	if err != nil {
		// логгер еще не настроен
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)
	apperrors.SetDebug(!cfg.IsProduction())
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Open(cfg)
	if err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to migrate schema", "error", err)
	}

	if cfg.Database.Seed {
		if err := database.SeedInitialData(context.Background(), gormDB); err != nil {
			logger.Fatal("Failed to seed initial data", "error", err)
		}
	}

	prefStore := initializePreferenceStore(cfg)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := prefStore.Close(ctx); err != nil {
			logger.Error("Failed to close preference store", "error", err)
		}
	}()

	ginRouter := SetupRouter(cfg, gormDB, prefStore)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает репозитории, сервисы, хэндлеры и маршруты.
// Используется и в Run, и в тестах хэндлеров.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB, prefStore preferences.Store) *gin.Engine {
	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute)

	serviceContainer := initializeServices(tokens, prefStore)
	appHandlers := initializeHandlers(cfg, serviceContainer)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers, tokens)

	return ginRouter
}

// initializePreferenceStore - MongoDB, если задан mongo.url, иначе симуляция.
// Недоступная MongoDB не мешает старту.
func initializePreferenceStore(cfg *config.Config) preferences.Store {
	if cfg.Mongo.URL == "" {
		logger.Warn("MONGO_URL is not set. Preferences are only logged.")
		return preferences.NewSimulatedStore()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := preferences.NewMongoStore(ctx, cfg.Mongo.URL, cfg.Mongo.Database)
	if err != nil {
		logger.Error("MongoDB unavailable, falling back to simulated preference store", "error", err)
		return preferences.NewSimulatedStore()
	}
	logger.Info("MongoDB preference store connected", "database", cfg.Mongo.Database)
	return store
}

func initializeServices(tokens *auth.TokenManager, prefStore preferences.Store) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	companyRepo := repositories.NewCompanyRepository()
	driveRepo := repositories.NewDriveRepository()
	applicationRepo := repositories.NewApplicationRepository()

	return &services.ServiceContainer{
		AuthService:           services.NewAuthService(userRepo, tokens),
		CompanyService:        services.NewCompanyService(companyRepo),
		DriveService:          services.NewDriveService(driveRepo, companyRepo),
		ApplicationService:    services.NewApplicationService(applicationRepo, userRepo, driveRepo),
		RecommendationService: services.NewRecommendationService(prefStore),
	}
}

func initializeHandlers(cfg *config.Config, services *services.ServiceContainer) *handlers.AppHandlers {
	baseHandler := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		AuthHandler:           handlers.NewAuthHandler(baseHandler, services.AuthService),
		CompanyHandler:        handlers.NewCompanyHandler(baseHandler, services.CompanyService),
		DriveHandler:          handlers.NewDriveHandler(baseHandler, services.DriveService),
		ApplicationHandler:    handlers.NewApplicationHandler(baseHandler, services.ApplicationService),
		RecommendationHandler: handlers.NewRecommendationHandler(baseHandler, services.RecommendationService),
		PageHandler:           handlers.NewPageHandler(cfg.Templates.Dir),
		HealthHandler:         handlers.NewHealthHandler(baseHandler),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}
