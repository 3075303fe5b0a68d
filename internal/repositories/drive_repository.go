package repositories

import (
	"errors"

	"placement_backend/internal/models"

	"gorm.io/gorm"
)

var ErrDriveNotFound = errors.New("drive not found")

type DriveRepository interface {
	Create(db *gorm.DB, drive *models.Drive) error
	FindByID(db *gorm.DB, id uint) (*models.Drive, error)
	ExistsByID(db *gorm.DB, id uint) (bool, error)
	FindByCompany(db *gorm.DB, companyID uint) ([]models.Drive, error)
}

type DriveRepositoryImpl struct{}

func NewDriveRepository() DriveRepository {
	return &DriveRepositoryImpl{}
}

func (r *DriveRepositoryImpl) Create(db *gorm.DB, drive *models.Drive) error {
	// Omit: связанную компанию никогда не сохраняем вместе с набором
	return db.Omit("Company").Create(drive).Error
}

func (r *DriveRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Drive, error) {
	var drive models.Drive
	if err := db.First(&drive, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDriveNotFound
		}
		return nil, err
	}
	return &drive, nil
}

func (r *DriveRepositoryImpl) ExistsByID(db *gorm.DB, id uint) (bool, error) {
	var count int64
	if err := db.Model(&models.Drive{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByCompany возвращает пустой срез (не nil и не ошибку), если наборов нет
func (r *DriveRepositoryImpl) FindByCompany(db *gorm.DB, companyID uint) ([]models.Drive, error) {
	drives := []models.Drive{}
	err := db.Where("company_id = ?", companyID).Find(&drives).Error
	return drives, err
}
