package services

import (
	"context"

	"placement_backend/internal/logger"
	"placement_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// ctxOf возвращает контекст запроса, привязанный к сессии через db.WithContext
func ctxOf(db *gorm.DB) context.Context {
	if db.Statement != nil && db.Statement.Context != nil {
		return db.Statement.Context
	}
	return context.Background()
}

// persistenceFailure логирует сбой записи (транзакция уже откатана) и оборачивает его в 500
func persistenceFailure(db *gorm.DB, msg string, err error, args ...any) error {
	logger.CtxWithError(ctxOf(db), msg, err, args...)
	return apperrors.DatabaseError(err)
}
