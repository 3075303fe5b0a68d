package repositories

import (
	"errors"

	"placement_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCompanyNotFound      = errors.New("company not found")
	ErrCompanyAlreadyExists = errors.New("company already exists")
)

type CompanyRepository interface {
	Create(db *gorm.DB, company *models.Company) error
	FindByID(db *gorm.DB, id uint) (*models.Company, error)
	ExistsByID(db *gorm.DB, id uint) (bool, error)
	ExistsByName(db *gorm.DB, name string) (bool, error)
	FindAll(db *gorm.DB) ([]models.Company, error)
}

type CompanyRepositoryImpl struct{}

func NewCompanyRepository() CompanyRepository {
	return &CompanyRepositoryImpl{}
}

func (r *CompanyRepositoryImpl) Create(db *gorm.DB, company *models.Company) error {
	if err := db.Create(company).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrCompanyAlreadyExists
		}
		return err
	}
	return nil
}

func (r *CompanyRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Company, error) {
	var company models.Company
	if err := db.First(&company, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) ExistsByID(db *gorm.DB, id uint) (bool, error) {
	var count int64
	if err := db.Model(&models.Company{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CompanyRepositoryImpl) ExistsByName(db *gorm.DB, name string) (bool, error) {
	var count int64
	if err := db.Model(&models.Company{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll - порядок не гарантируется
func (r *CompanyRepositoryImpl) FindAll(db *gorm.DB) ([]models.Company, error) {
	companies := []models.Company{}
	err := db.Find(&companies).Error
	return companies, err
}
