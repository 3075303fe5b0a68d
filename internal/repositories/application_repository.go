package repositories

import (
	"placement_backend/internal/models"

	"gorm.io/gorm"
)

type ApplicationRepository interface {
	Create(db *gorm.DB, application *models.Application) error
	FindByDrive(db *gorm.DB, driveID uint) ([]models.Application, error)
	FindDetailsByUser(db *gorm.DB, userID uint) ([]models.ApplicationDetail, error)
	CountByUserAndDrive(db *gorm.DB, userID, driveID uint) (int64, error)
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, application *models.Application) error {
	return db.Omit("User", "Drive").Create(application).Error
}

func (r *ApplicationRepositoryImpl) FindByDrive(db *gorm.DB, driveID uint) ([]models.Application, error) {
	applications := []models.Application{}
	err := db.Where("drive_id = ?", driveID).Find(&applications).Error
	return applications, err
}

// FindDetailsByUser - явный JOIN заявок с наборами и компаниями
func (r *ApplicationRepositoryImpl) FindDetailsByUser(db *gorm.DB, userID uint) ([]models.ApplicationDetail, error) {
	details := []models.ApplicationDetail{}
	err := db.Table("applications").
		Select(`applications.id AS application_id,
			applications.drive_id AS drive_id,
			drives.role AS role,
			companies.id AS company_id,
			companies.name AS company_name,
			drives.package_lpa AS package_lpa,
			drives.deadline AS deadline,
			applications.status AS status,
			applications.applied_date AS applied_date`).
		Joins("JOIN drives ON drives.id = applications.drive_id").
		Joins("JOIN companies ON companies.id = drives.company_id").
		Where("applications.user_id = ?", userID).
		Scan(&details).Error
	return details, err
}

func (r *ApplicationRepositoryImpl) CountByUserAndDrive(db *gorm.DB, userID, driveID uint) (int64, error) {
	var count int64
	err := db.Model(&models.Application{}).
		Where("user_id = ? AND drive_id = ?", userID, driveID).
		Count(&count).Error
	return count, err
}
