package dto

import "placement_backend/internal/models"

type CreateCompanyRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Industry string `json:"industry" validate:"required,max=255"`
	Location string `json:"location" validate:"required,max=255"`
}

type CompanyResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Industry string `json:"industry"`
	Location string `json:"location"`
}

func NewCompanyResponse(c *models.Company) *CompanyResponse {
	return &CompanyResponse{
		ID:       c.ID,
		Name:     c.Name,
		Industry: c.Industry,
		Location: c.Location,
	}
}
