package repositories_test

import (
	"testing"

	"placement_backend/internal/models"
	"placement_backend/internal/repositories"
	"placement_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewUserRepository()

	user := &models.User{FullName: "Asha", Email: "asha@example.com", HashedPassword: "h", AccountType: models.AccountTypeStudent}
	require.NoError(t, repo.Create(db, user))
	assert.NotZero(t, user.ID)

	found, err := repo.FindByEmail(db, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.True(t, found.IsActive)

	// сравнение email точное
	_, err = repo.FindByEmail(db, "ASHA@example.com")
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)

	_, err = repo.FindByID(db, 999)
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewUserRepository()

	require.NoError(t, repo.Create(db, &models.User{FullName: "A", Email: "dup@example.com", HashedPassword: "h"}))
	err := repo.Create(db, &models.User{FullName: "B", Email: "dup@example.com", HashedPassword: "h"})
	assert.ErrorIs(t, err, repositories.ErrUserAlreadyExists)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCompanyRepository(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewCompanyRepository()

	all, err := repo.FindAll(db)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	company := &models.Company{Name: "Acme", Industry: "IT", Location: "Pune"}
	require.NoError(t, repo.Create(db, company))

	exists, err := repo.ExistsByName(db, "Acme")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByID(db, company.ID+1)
	require.NoError(t, err)
	assert.False(t, exists)

	err = repo.Create(db, &models.Company{Name: "Acme", Industry: "X", Location: "Y"})
	assert.ErrorIs(t, err, repositories.ErrCompanyAlreadyExists)

	_, err = repo.FindByID(db, 42)
	assert.ErrorIs(t, err, repositories.ErrCompanyNotFound)
}

func TestDriveRepository_ForeignKeyEnforced(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewDriveRepository()

	err := repo.Create(db, &models.Drive{CompanyID: 77, Role: "Ghost"})
	assert.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Drive{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDriveRepository_FindByCompany(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewDriveRepository()
	a := helpers.CreateCompany(t, db, "A")
	b := helpers.CreateCompany(t, db, "B")
	helpers.CreateDrive(t, db, a.ID, "Intern")
	helpers.CreateDrive(t, db, a.ID, "Analyst")

	drives, err := repo.FindByCompany(db, a.ID)
	require.NoError(t, err)
	assert.Len(t, drives, 2)

	drives, err = repo.FindByCompany(db, b.ID)
	require.NoError(t, err)
	assert.NotNil(t, drives)
	assert.Empty(t, drives)
}

func TestApplicationRepository_DetailsJoin(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewApplicationRepository()
	company := helpers.CreateCompany(t, db, "TechCorp")
	drive := helpers.CreateDrive(t, db, company.ID, "Software Intern")
	user := helpers.CreateUser(t, db, "s@example.com")

	application := &models.Application{UserID: user.ID, DriveID: drive.ID}
	require.NoError(t, repo.Create(db, application))
	assert.Equal(t, models.ApplicationStatusPending, application.Status)
	assert.False(t, application.AppliedDate.IsZero())

	details, err := repo.FindDetailsByUser(db, user.ID)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "Software Intern", details[0].Role)
	assert.Equal(t, "TechCorp", details[0].CompanyName)
	assert.Equal(t, 6.5, details[0].PackageLPA)
	assert.Equal(t, models.ApplicationStatusPending, details[0].Status)

	// повторная заявка не запрещена
	require.NoError(t, repo.Create(db, &models.Application{UserID: user.ID, DriveID: drive.ID}))
	count, err := repo.CountByUserAndDrive(db, user.ID, drive.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	byDrive, err := repo.FindByDrive(db, drive.ID)
	require.NoError(t, err)
	assert.Len(t, byDrive, 2)
}
