package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler           *AuthHandler
	CompanyHandler        *CompanyHandler
	DriveHandler          *DriveHandler
	ApplicationHandler    *ApplicationHandler
	RecommendationHandler *RecommendationHandler
	PageHandler           *PageHandler
	HealthHandler         *HealthHandler
}
