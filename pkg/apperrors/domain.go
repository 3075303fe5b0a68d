package apperrors

import (
	"net/http"
)

/*
Предопределенные ошибки домена.
Не мутируйте их напрямую: используйте WithDetails/WithError, они возвращают копию.
*/

// --- Users & Auth ---

// ErrEmailAlreadyExists - email уже зарегистрирован.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"user",
	"Email already registered",
	http.StatusConflict, // 409
)

// ErrInvalidCredentials - неверный email или пароль.
// Один и тот же ответ для обоих случаев, чтобы нельзя было перебирать email.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized, // 401
)

// ErrInvalidToken - токен не прошел проверку.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized, // 401
)

var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

// ErrUserIDMismatch - user_id в пути и в теле запроса не совпадают.
var ErrUserIDMismatch = New(
	CodeValidationFailed,
	"preferences",
	"User ID mismatch in path and body",
	http.StatusBadRequest, // 400
)

// --- Companies & Drives ---

var ErrCompanyAlreadyExists = New(
	CodeAlreadyExists,
	"company",
	"Company with this name already exists",
	http.StatusConflict,
)

var ErrCompanyNotFound = New(
	CodeNotFound,
	"company",
	"Company ID not found",
	http.StatusNotFound,
)

var ErrDriveNotFound = New(
	CodeNotFound,
	"drive",
	"Drive ID not found",
	http.StatusNotFound,
)
