package models

import (
	"time"

	"gorm.io/gorm"
)

// Application связывает одного пользователя с одним набором.
// Повторные заявки на ту же пару (user, drive) не запрещены.
type Application struct {
	ID          uint              `gorm:"primaryKey;autoIncrement"`
	UserID      uint              `gorm:"not null;index"`
	DriveID     uint              `gorm:"not null;index"`
	Status      ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	AppliedDate time.Time         `gorm:"not null"`

	User  *User  `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Drive *Drive `gorm:"foreignKey:DriveID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = ApplicationStatusPending
	}
	if a.AppliedDate.IsZero() {
		a.AppliedDate = time.Now().UTC()
	}
	return nil
}

// ApplicationDetail - строка JOIN applications/drives/companies
type ApplicationDetail struct {
	ApplicationID uint              `json:"application_id"`
	DriveID       uint              `json:"drive_id"`
	Role          string            `json:"role"`
	CompanyID     uint              `json:"company_id"`
	CompanyName   string            `json:"company_name"`
	PackageLPA    float64           `json:"package_lpa"`
	Deadline      time.Time         `json:"deadline"`
	Status        ApplicationStatus `json:"status"`
	AppliedDate   time.Time         `json:"applied_date"`
}
