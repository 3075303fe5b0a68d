package dto

import (
	"time"

	"placement_backend/internal/models"
)

type CreateDriveRequest struct {
	CompanyID  uint    `json:"company_id" validate:"required,gt=0"`
	Role       string  `json:"role" validate:"required,max=255"`
	PackageLPA float64 `json:"package_lpa" validate:"gte=0"`
	Deadline   Date    `json:"deadline" validate:"required"`
}

type DriveResponse struct {
	ID         uint      `json:"id"`
	CompanyID  uint      `json:"company_id"`
	Role       string    `json:"role"`
	PackageLPA float64   `json:"package_lpa"`
	Deadline   time.Time `json:"deadline"`
}

func NewDriveResponse(d *models.Drive) *DriveResponse {
	return &DriveResponse{
		ID:         d.ID,
		CompanyID:  d.CompanyID,
		Role:       d.Role,
		PackageLPA: d.PackageLPA,
		Deadline:   d.Deadline.UTC(),
	}
}
