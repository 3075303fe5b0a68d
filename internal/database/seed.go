package database

import (
	"context"
	"fmt"
	"time"

	"placement_backend/internal/logger"
	"placement_backend/internal/models"

	"gorm.io/gorm"
)

// SeedInitialData создает демонстрационную компанию и набор, если компаний еще нет.
func SeedInitialData(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Company{}).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count companies: %w", err)
		}
		if count > 0 {
			logger.CtxDebug(ctx, "Companies already present. Skipping seed.", "count", count)
			return nil
		}

		logger.CtxInfo(ctx, "Creating initial company and drive data...")

		company := &models.Company{
			Name:     "TechCorp Solutions",
			Industry: "IT",
			Location: "Pune",
		}
		if err := tx.Create(company).Error; err != nil {
			return fmt.Errorf("failed to seed company: %w", err)
		}

		drive := &models.Drive{
			CompanyID:  company.ID,
			Role:       "Software Intern",
			PackageLPA: 6.5,
			Deadline:   time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC),
		}
		if err := tx.Create(drive).Error; err != nil {
			return fmt.Errorf("failed to seed drive: %w", err)
		}

		logger.CtxInfo(ctx, "Initial data created successfully", "company_id", company.ID, "drive_id", drive.ID)
		return nil
	})
}
