package helpers

import (
	"testing"
	"time"

	"placement_backend/internal/config"
	"placement_backend/internal/database"
	"placement_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestConfig - конфигурация с in-memory sqlite
func TestConfig() *config.Config {
	cfg := config.Default()
	cfg.Server.Env = "test"
	cfg.Database.Driver = "sqlite"
	cfg.Database.DSN = ":memory:"
	cfg.Database.Seed = false
	cfg.JWT.Secret = "test-secret"
	return cfg
}

// NewTestDB открывает чистую БД со схемой. Каждый вызов - отдельная БД.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(TestConfig())
	require.NoError(t, err, "Не удалось открыть тестовую БД")
	require.NoError(t, database.AutoMigrate(db), "Не удалось выполнить AutoMigrate")

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func CreateCompany(t *testing.T, db *gorm.DB, name string) *models.Company {
	t.Helper()
	company := &models.Company{Name: name, Industry: "IT", Location: "Pune"}
	require.NoError(t, db.Create(company).Error)
	return company
}

func CreateDrive(t *testing.T, db *gorm.DB, companyID uint, role string) *models.Drive {
	t.Helper()
	drive := &models.Drive{
		CompanyID:  companyID,
		Role:       role,
		PackageLPA: 6.5,
		Deadline:   time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Omit("Company").Create(drive).Error)
	return drive
}

// CreateUser создает пользователя с уже готовым хешем (пароль не нужен)
func CreateUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		FullName:       "Test Student",
		Email:          email,
		HashedPassword: "$2a$10$invalidinvalidinvalidinvalidinvalidinvalidinvalidinvali",
		AccountType:    models.AccountTypeStudent,
		IsActive:       true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
