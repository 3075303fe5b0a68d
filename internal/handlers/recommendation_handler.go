package handlers

import (
	"net/http"

	"placement_backend/internal/services"
	"placement_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct {
	*BaseHandler
	recommendationService services.RecommendationService
}

func NewRecommendationHandler(base *BaseHandler, recommendationService services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		BaseHandler:           base,
		recommendationService: recommendationService,
	}
}

func (h *RecommendationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/recommendations/:user_id", h.GetRecommendations)
	rg.PUT("/users/:user_id/preferences", h.UpdatePreferences)
}

// GetRecommendations godoc
// @Summary Рекомендации (заглушка)
// @Tags recommendations
// @Produce json
// @Param user_id path int true "ID пользователя"
// @Success 200 {object} dto.RecommendationsResponse
// @Router /api/v1/recommendations/{user_id} [get]
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	userID, ok := h.ParseParamUint(c, "user_id")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.recommendationService.GetRecommendations(userID))
}

// UpdatePreferences godoc
// @Summary Обновить настройки пользователя
// @Tags recommendations
// @Accept json
// @Produce json
// @Param user_id path int true "ID пользователя"
// @Param request body dto.UpdatePreferenceRequest true "Настройки"
// @Success 200 {object} dto.PreferenceAck
// @Failure 400 {object} apperrors.ErrorResponse "ID в пути и теле не совпадают"
// @Router /api/v1/users/{user_id}/preferences [put]
func (h *RecommendationHandler) UpdatePreferences(c *gin.Context) {
	userID, ok := h.ParseParamUint(c, "user_id")
	if !ok {
		return
	}

	var req dto.UpdatePreferenceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	ack, err := h.recommendationService.UpdatePreferences(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ack)
}
