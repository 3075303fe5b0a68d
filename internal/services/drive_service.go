package services

import (
	"errors"

	"placement_backend/internal/logger"
	"placement_backend/internal/models"
	"placement_backend/internal/repositories"
	"placement_backend/internal/services/dto"
	"placement_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type DriveService interface {
	CreateDrive(db *gorm.DB, req *dto.CreateDriveRequest) (*dto.DriveResponse, error)
	ListDrivesByCompany(db *gorm.DB, companyID uint) ([]*dto.DriveResponse, error)
}

type driveService struct {
	driveRepo   repositories.DriveRepository
	companyRepo repositories.CompanyRepository
}

func NewDriveService(driveRepo repositories.DriveRepository, companyRepo repositories.CompanyRepository) DriveService {
	return &driveService{
		driveRepo:   driveRepo,
		companyRepo: companyRepo,
	}
}

// CreateDrive проверяет компанию явно, не полагаясь только на внешний ключ
func (s *driveService) CreateDrive(db *gorm.DB, req *dto.CreateDriveRequest) (*dto.DriveResponse, error) {
	exists, err := s.companyRepo.ExistsByID(db, req.CompanyID)
	if err != nil {
		return nil, persistenceFailure(db, "Failed to check company before drive creation", err, "company_id", req.CompanyID)
	}
	if !exists {
		return nil, apperrors.ErrCompanyNotFound
	}

	drive := &models.Drive{
		CompanyID:  req.CompanyID,
		Role:       req.Role,
		PackageLPA: req.PackageLPA,
		Deadline:   req.Deadline.Time().UTC(),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return s.driveRepo.Create(tx, drive)
	})
	if err != nil {
		return nil, persistenceFailure(db, "Database error during drive creation", err, "company_id", req.CompanyID)
	}

	created, err := s.driveRepo.FindByID(db, drive.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrDriveNotFound) {
			return nil, apperrors.ErrDriveNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctxOf(db), "Drive created", "drive_id", created.ID, "company_id", created.CompanyID)
	return dto.NewDriveResponse(created), nil
}

// ListDrivesByCompany - пустой список, а не ошибка, если наборов нет
func (s *driveService) ListDrivesByCompany(db *gorm.DB, companyID uint) ([]*dto.DriveResponse, error) {
	drives, err := s.driveRepo.FindByCompany(db, companyID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	responses := make([]*dto.DriveResponse, 0, len(drives))
	for i := range drives {
		responses = append(responses, dto.NewDriveResponse(&drives[i]))
	}
	return responses, nil
}
