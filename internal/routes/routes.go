package routes

import (
	"placement_backend/internal/auth"
	"placement_backend/internal/handlers"
	"placement_backend/internal/logger"
	"placement_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes регистрирует API, страницы и служебные маршруты.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	tokens *auth.TokenManager,
) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.CompanyHandler.RegisterRoutes(api)
		appHandlers.DriveHandler.RegisterRoutes(api)
		appHandlers.ApplicationHandler.RegisterRoutes(api)
		appHandlers.RecommendationHandler.RegisterRoutes(api)
	}

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(tokens))
	{
		appHandlers.AuthHandler.RegisterProtectedRoutes(protected)
	}

	appHandlers.PageHandler.RegisterRoutes(ginRouter)

	ginRouter.GET("/health", appHandlers.HealthHandler.Health)
	ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	logger.Info("Routes registered", "count", len(ginRouter.Routes()))
}
