package dto

import (
	"time"

	"placement_backend/internal/models"
)

type CreateApplicationRequest struct {
	UserID  uint                     `json:"user_id" validate:"required,gt=0"`
	DriveID uint                     `json:"drive_id" validate:"required,gt=0"`
	Status  models.ApplicationStatus `json:"status" validate:"omitempty,is-application-status"`
}

type ApplicationResponse struct {
	ID          uint                     `json:"id"`
	UserID      uint                     `json:"user_id"`
	DriveID     uint                     `json:"drive_id"`
	Status      models.ApplicationStatus `json:"status"`
	AppliedDate time.Time                `json:"applied_date"`
}

func NewApplicationResponse(a *models.Application) *ApplicationResponse {
	return &ApplicationResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		DriveID:     a.DriveID,
		Status:      a.Status,
		AppliedDate: a.AppliedDate,
	}
}
