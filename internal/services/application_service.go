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

type ApplicationService interface {
	CreateApplication(db *gorm.DB, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error)
	ListApplicationsByUser(db *gorm.DB, userID uint) ([]models.ApplicationDetail, error)
	ListApplicationsByDrive(db *gorm.DB, driveID uint) ([]*dto.ApplicationResponse, error)
}

type applicationService struct {
	applicationRepo repositories.ApplicationRepository
	userRepo        repositories.UserRepository
	driveRepo       repositories.DriveRepository
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	userRepo repositories.UserRepository,
	driveRepo repositories.DriveRepository,
) ApplicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		userRepo:        userRepo,
		driveRepo:       driveRepo,
	}
}

// CreateApplication не запрещает повторную заявку на тот же набор,
// только пишет предупреждение в лог.
func (s *applicationService) CreateApplication(db *gorm.DB, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error) {
	ctx := ctxOf(db)

	if _, err := s.userRepo.FindByID(db, req.UserID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	exists, err := s.driveRepo.ExistsByID(db, req.DriveID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if !exists {
		return nil, apperrors.ErrDriveNotFound
	}

	previous, err := s.applicationRepo.CountByUserAndDrive(db, req.UserID, req.DriveID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if previous > 0 {
		logger.CtxWarn(ctx, "Duplicate application for the same drive", "user_id", req.UserID, "drive_id", req.DriveID, "existing", previous)
	}

	application := &models.Application{
		UserID:  req.UserID,
		DriveID: req.DriveID,
		Status:  req.Status,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return s.applicationRepo.Create(tx, application)
	})
	if err != nil {
		return nil, persistenceFailure(db, "Database error during application creation", err,
			"user_id", req.UserID, "drive_id", req.DriveID)
	}

	return dto.NewApplicationResponse(application), nil
}

func (s *applicationService) ListApplicationsByUser(db *gorm.DB, userID uint) ([]models.ApplicationDetail, error) {
	details, err := s.applicationRepo.FindDetailsByUser(db, userID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return details, nil
}

func (s *applicationService) ListApplicationsByDrive(db *gorm.DB, driveID uint) ([]*dto.ApplicationResponse, error) {
	applications, err := s.applicationRepo.FindByDrive(db, driveID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	responses := make([]*dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		responses = append(responses, dto.NewApplicationResponse(&applications[i]))
	}
	return responses, nil
}
