package services

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService           AuthService
	CompanyService        CompanyService
	DriveService          DriveService
	ApplicationService    ApplicationService
	RecommendationService RecommendationService
}
