package handlers

import (
	"net/http"

	"placement_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	*BaseHandler
}

func NewHealthHandler(base *BaseHandler) *HealthHandler {
	return &HealthHandler{BaseHandler: base}
}

// Health проверяет доступность БД
// @Summary Проверка доступности БД
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	sqlDB, err := h.GetDB(c).DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		h.HandleServiceError(c, apperrors.DatabaseError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
