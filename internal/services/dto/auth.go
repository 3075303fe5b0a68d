package dto

import (
	"placement_backend/internal/models"
)

// RegisterRequest - запрос регистрации
type RegisterRequest struct {
	FullName    string             `json:"full_name" validate:"required,max=255"`
	Email       string             `json:"email" validate:"required,email,max=255"`
	Password    string             `json:"password" validate:"required,max-bytes=72"`
	AccountType models.AccountType `json:"account_type" validate:"required,is-account-type"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse - ответ на успешный вход
type LoginResponse struct {
	Message     string             `json:"message"`
	UserID      uint               `json:"user_id"`
	AccountType models.AccountType `json:"account_type"`
	Token       string             `json:"token"`
}

// UserResponse - пользователь без хеша пароля
type UserResponse struct {
	ID          uint               `json:"id"`
	FullName    string             `json:"full_name"`
	Email       string             `json:"email"`
	AccountType models.AccountType `json:"account_type"`
}

func NewUserResponse(u *models.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		AccountType: u.AccountType,
	}
}
