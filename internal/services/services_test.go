package services_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"placement_backend/internal/auth"
	"placement_backend/internal/models"
	"placement_backend/internal/preferences"
	"placement_backend/internal/repositories"
	"placement_backend/internal/services"
	"placement_backend/internal/services/dto"
	"placement_backend/pkg/apperrors"
	"placement_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService() services.AuthService {
	return services.NewAuthService(repositories.NewUserRepository(), auth.NewTokenManager("test-secret", time.Hour))
}

func registerRequest(email string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		FullName:    "Priya Sharma",
		Email:       email,
		Password:    "correct-horse",
		AccountType: models.AccountTypeStudent,
	}
}

func TestAuthService_RegisterStoresHashOnly(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newAuthService()

	user, err := svc.Register(db, registerRequest("priya@example.com"))
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, models.AccountTypeStudent, user.AccountType)

	stored, err := svc.FindUserByEmail(db, "priya@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "correct-horse", stored.HashedPassword)
	assert.True(t, svc.VerifyCredentials("correct-horse", stored.HashedPassword))
	assert.False(t, svc.VerifyCredentials("wrong", stored.HashedPassword))
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newAuthService()

	_, err := svc.Register(db, registerRequest("dup@example.com"))
	require.NoError(t, err)

	_, err = svc.Register(db, registerRequest("dup@example.com"))
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAuthService_ConcurrentRegistrationSingleWinner(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newAuthService()

	const attempts = 5
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Register(db, registerRequest("race@example.com"))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	}
	assert.Equal(t, 1, succeeded)
}

func TestAuthService_FindUserByEmailMissing(t *testing.T) {
	db := helpers.NewTestDB(t)

	user, err := newAuthService().FindUserByEmail(db, "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestAuthService_Login(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newAuthService()

	registered, err := svc.Register(db, registerRequest("login@example.com"))
	require.NoError(t, err)

	resp, err := svc.Login(db, &dto.LoginRequest{Email: "login@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, resp.UserID)
	assert.Equal(t, "Login successful", resp.Message)
	assert.NotEmpty(t, resp.Token)

	_, err = svc.Login(db, &dto.LoginRequest{Email: "login@example.com", Password: "nope"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(db, &dto.LoginRequest{Email: "ghost@example.com", Password: "correct-horse"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_LoginInactiveUser(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newAuthService()

	user, err := svc.Register(db, registerRequest("inactive@example.com"))
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).Update("is_active", false).Error)

	_, err = svc.Login(db, &dto.LoginRequest{Email: "inactive@example.com", Password: "correct-horse"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestCompanyService(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := services.NewCompanyService(repositories.NewCompanyRepository())

	created, err := svc.CreateCompany(db, &dto.CreateCompanyRequest{Name: "Infosys", Industry: "IT", Location: "Bengaluru"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = svc.CreateCompany(db, &dto.CreateCompanyRequest{Name: "Infosys", Industry: "IT", Location: "Mysuru"})
	assert.ErrorIs(t, err, apperrors.ErrCompanyAlreadyExists)

	got, err := svc.GetCompany(db, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bengaluru", got.Location)

	_, err = svc.GetCompany(db, created.ID+100)
	assert.ErrorIs(t, err, apperrors.ErrCompanyNotFound)

	all, err := svc.ListCompanies(db)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func newDriveService() services.DriveService {
	return services.NewDriveService(repositories.NewDriveRepository(), repositories.NewCompanyRepository())
}

func TestDriveService_CreateRequiresCompany(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newDriveService()

	_, err := svc.CreateDrive(db, &dto.CreateDriveRequest{
		CompanyID: 999, Role: "Analyst", PackageLPA: 4, Deadline: dto.Date(time.Now()),
	})
	assert.ErrorIs(t, err, apperrors.ErrCompanyNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Drive{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDriveService_CreateAndList(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newDriveService()
	company := helpers.CreateCompany(t, db, "TechCorp Solutions")

	deadline := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	drive, err := svc.CreateDrive(db, &dto.CreateDriveRequest{
		CompanyID: company.ID, Role: "Software Intern", PackageLPA: 6.5, Deadline: dto.Date(deadline),
	})
	require.NoError(t, err)
	assert.NotZero(t, drive.ID)
	assert.Equal(t, company.ID, drive.CompanyID)
	assert.Equal(t, 6.5, drive.PackageLPA)
	assert.True(t, deadline.Equal(drive.Deadline))

	drives, err := svc.ListDrivesByCompany(db, company.ID)
	require.NoError(t, err)
	require.Len(t, drives, 1)
	assert.Equal(t, drive.ID, drives[0].ID)
}

func TestDriveService_ListEmpty(t *testing.T) {
	db := helpers.NewTestDB(t)

	drives, err := newDriveService().ListDrivesByCompany(db, 12345)
	require.NoError(t, err)
	assert.NotNil(t, drives)
	assert.Empty(t, drives)
}

func newApplicationService() services.ApplicationService {
	return services.NewApplicationService(
		repositories.NewApplicationRepository(),
		repositories.NewUserRepository(),
		repositories.NewDriveRepository(),
	)
}

func TestApplicationService_Create(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newApplicationService()
	company := helpers.CreateCompany(t, db, "TechCorp")
	drive := helpers.CreateDrive(t, db, company.ID, "Software Intern")
	user := helpers.CreateUser(t, db, "applicant@example.com")

	app, err := svc.CreateApplication(db, &dto.CreateApplicationRequest{UserID: user.ID, DriveID: drive.ID})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPending, app.Status)
	assert.WithinDuration(t, time.Now().UTC(), app.AppliedDate, time.Minute)

	// дубликаты допускаются
	_, err = svc.CreateApplication(db, &dto.CreateApplicationRequest{UserID: user.ID, DriveID: drive.ID})
	require.NoError(t, err)

	byDrive, err := svc.ListApplicationsByDrive(db, drive.ID)
	require.NoError(t, err)
	assert.Len(t, byDrive, 2)

	byUser, err := svc.ListApplicationsByUser(db, user.ID)
	require.NoError(t, err)
	require.Len(t, byUser, 2)
	assert.Equal(t, "TechCorp", byUser[0].CompanyName)
}

func TestApplicationService_MissingReferences(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newApplicationService()
	company := helpers.CreateCompany(t, db, "TechCorp")
	drive := helpers.CreateDrive(t, db, company.ID, "Software Intern")
	user := helpers.CreateUser(t, db, "applicant@example.com")

	_, err := svc.CreateApplication(db, &dto.CreateApplicationRequest{UserID: user.ID + 50, DriveID: drive.ID})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	_, err = svc.CreateApplication(db, &dto.CreateApplicationRequest{UserID: user.ID, DriveID: drive.ID + 50})
	assert.ErrorIs(t, err, apperrors.ErrDriveNotFound)
}

type recordingStore struct {
	saved []preferences.Preference
}

func (s *recordingStore) Save(_ context.Context, pref preferences.Preference) error {
	s.saved = append(s.saved, pref)
	return nil
}

func (s *recordingStore) Close(context.Context) error { return nil }

func TestRecommendationService_Canned(t *testing.T) {
	svc := services.NewRecommendationService(preferences.NewSimulatedStore())

	first := svc.GetRecommendations(1)
	second := svc.GetRecommendations(2)

	require.Len(t, first.Recommendations, 2)
	assert.Equal(t, "Simulated Data Analyst", first.Recommendations[0].Role)
	assert.Equal(t, 0.85, first.Recommendations[0].MatchScore)
	assert.Equal(t, "Simulated Software Engineer", first.Recommendations[1].Role)
	assert.Equal(t, 0.79, first.Recommendations[1].MatchScore)
	assert.Equal(t, first.Recommendations, second.Recommendations)
	assert.Equal(t, uint(2), second.UserID)
}

func TestRecommendationService_UpdatePreferences(t *testing.T) {
	store := &recordingStore{}
	svc := services.NewRecommendationService(store)

	ack, err := svc.UpdatePreferences(context.Background(), 5, &dto.UpdatePreferenceRequest{UserID: 5})
	require.NoError(t, err)
	assert.Equal(t, "light", ack.Data.Theme)
	assert.Equal(t, uint(5), ack.Data.UserID)
	assert.Contains(t, ack.Message, "preferences updated")
	require.Len(t, store.saved, 1)
	assert.Equal(t, "light", store.saved[0].Theme)

	_, err = svc.UpdatePreferences(context.Background(), 5, &dto.UpdatePreferenceRequest{UserID: 6, Theme: "dark"})
	assert.ErrorIs(t, err, apperrors.ErrUserIDMismatch)
	assert.Len(t, store.saved, 1)
}

// failWrites заставляет каждую вставку в этой БД завершаться ошибкой
func failWrites(t *testing.T, db *gorm.DB) {
	t.Helper()
	err := db.Callback().Create().After("gorm:create").Register("test:fail_writes", func(tx *gorm.DB) {
		_ = tx.AddError(errors.New("disk full"))
	})
	require.NoError(t, err)
}

func requireDatabaseError(t *testing.T, err error) {
	t.Helper()
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeDatabaseError, appErr.Code)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode)
}

func TestAuthService_RegisterPersistenceFailureRollsBack(t *testing.T) {
	db := helpers.NewTestDB(t)
	failWrites(t, db)

	_, err := newAuthService().Register(db, registerRequest("broken@example.com"))
	requireDatabaseError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDriveService_CreatePersistenceFailureRollsBack(t *testing.T) {
	db := helpers.NewTestDB(t)
	company := helpers.CreateCompany(t, db, "TechCorp")
	failWrites(t, db)

	_, err := newDriveService().CreateDrive(db, &dto.CreateDriveRequest{
		CompanyID: company.ID, Role: "Software Intern", PackageLPA: 6.5, Deadline: dto.Date(time.Now()),
	})
	requireDatabaseError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Drive{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAuthService_RegisterPasswordOverBcryptLimit(t *testing.T) {
	db := helpers.NewTestDB(t)
	req := registerRequest("long@example.com")
	req.Password = strings.Repeat("é", 40)

	_, err := newAuthService().Register(db, req)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}
