package services

import (
	"errors"

	"placement_backend/internal/auth"
	"placement_backend/internal/logger"
	"placement_backend/internal/models"
	"placement_backend/internal/repositories"
	"placement_backend/internal/services/dto"
	"placement_backend/pkg/apperrors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	FindUserByEmail(db *gorm.DB, email string) (*models.User, error)
	VerifyCredentials(plainPassword, hashedPassword string) bool
	GetCurrentUser(db *gorm.DB, userID uint) (*dto.UserResponse, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenManager
}

func NewAuthService(userRepo repositories.UserRepository, tokens *auth.TokenManager) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// FindUserByEmail - точный поиск по email.
// Нет пользователя - (nil, nil); ошибка означает только сбой хранилища.
func (s *AuthServiceImpl) FindUserByEmail(db *gorm.DB, email string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(db, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthServiceImpl) VerifyCredentials(plainPassword, hashedPassword string) bool {
	return auth.CheckPasswordHash(plainPassword, hashedPassword)
}

// Register - регистрация нового пользователя
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	ctx := ctxOf(db)

	// Предварительная проверка; окончательно дубликат отсекает уникальный индекс
	existing, err := s.FindUserByEmail(db, req.Email)
	if err != nil {
		return nil, persistenceFailure(db, "Failed to check email before registration", err, "email", req.Email)
	}
	if existing != nil {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, apperrors.ValidationError(map[string]string{"password": "Must be at most 72 bytes long"})
		}
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		FullName:       req.FullName,
		Email:          req.Email,
		HashedPassword: hashedPassword,
		AccountType:    req.AccountType,
		IsActive:       true,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return s.userRepo.Create(tx, user)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			logger.CtxWarn(ctx, "Concurrent registration rejected by unique index", "email", req.Email)
			return nil, apperrors.ErrEmailAlreadyExists.WithError(err)
		}
		return nil, persistenceFailure(db, "Database error during user creation", err, "email", req.Email)
	}

	logger.CtxInfo(ctx, "User registered", "user_id", user.ID, "account_type", user.AccountType)
	return dto.NewUserResponse(user), nil
}

// Login - аутентификация пользователя.
// Неизвестный email и неверный пароль дают одну и ту же ошибку.
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.FindUserByEmail(db, req.Email)
	if err != nil {
		return nil, persistenceFailure(db, "Failed to load user for login", err)
	}
	if user == nil || !s.VerifyCredentials(req.Password, user.HashedPassword) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, user.AccountType)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Message:     "Login successful",
		UserID:      user.ID,
		AccountType: user.AccountType,
		Token:       token,
	}, nil
}

func (s *AuthServiceImpl) GetCurrentUser(db *gorm.DB, userID uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	return dto.NewUserResponse(user), nil
}
