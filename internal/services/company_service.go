package services

import (
	"errors"

	"placement_backend/internal/models"
	"placement_backend/internal/repositories"
	"placement_backend/internal/services/dto"
	"placement_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CompanyService interface {
	CreateCompany(db *gorm.DB, req *dto.CreateCompanyRequest) (*dto.CompanyResponse, error)
	GetCompany(db *gorm.DB, id uint) (*dto.CompanyResponse, error)
	ListCompanies(db *gorm.DB) ([]*dto.CompanyResponse, error)
}

type companyService struct {
	companyRepo repositories.CompanyRepository
}

func NewCompanyService(companyRepo repositories.CompanyRepository) CompanyService {
	return &companyService{companyRepo: companyRepo}
}

func (s *companyService) CreateCompany(db *gorm.DB, req *dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	exists, err := s.companyRepo.ExistsByName(db, req.Name)
	if err != nil {
		return nil, persistenceFailure(db, "Failed to check company name", err, "name", req.Name)
	}
	if exists {
		return nil, apperrors.ErrCompanyAlreadyExists
	}

	company := &models.Company{
		Name:     req.Name,
		Industry: req.Industry,
		Location: req.Location,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return s.companyRepo.Create(tx, company)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyAlreadyExists) {
			return nil, apperrors.ErrCompanyAlreadyExists.WithError(err)
		}
		return nil, persistenceFailure(db, "Database error during company creation", err, "name", req.Name)
	}

	return dto.NewCompanyResponse(company), nil
}

func (s *companyService) GetCompany(db *gorm.DB, id uint) (*dto.CompanyResponse, error) {
	company, err := s.companyRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	return dto.NewCompanyResponse(company), nil
}

func (s *companyService) ListCompanies(db *gorm.DB) ([]*dto.CompanyResponse, error) {
	companies, err := s.companyRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	responses := make([]*dto.CompanyResponse, 0, len(companies))
	for i := range companies {
		responses = append(responses, dto.NewCompanyResponse(&companies[i]))
	}
	return responses, nil
}
