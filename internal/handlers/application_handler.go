package handlers

import (
	"net/http"

	"placement_backend/internal/services"
	"placement_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	applications := rg.Group("/applications")
	{
		applications.POST("", h.CreateApplication)
		applications.GET("/user/:user_id", h.ListByUser)
		applications.GET("/drive/:drive_id", h.ListByDrive)
	}
}

// CreateApplication godoc
// @Summary Подать заявку на набор
// @Tags applications
// @Accept json
// @Produce json
// @Param request body dto.CreateApplicationRequest true "Заявка"
// @Success 201 {object} dto.ApplicationResponse
// @Failure 404 {object} apperrors.ErrorResponse "Пользователь или набор не найден"
// @Router /api/v1/applications [post]
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var req dto.CreateApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	application, err := h.applicationService.CreateApplication(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

// ListByUser godoc
// @Summary Заявки пользователя с данными набора и компании
// @Tags applications
// @Produce json
// @Param user_id path int true "ID пользователя"
// @Success 200 {array} models.ApplicationDetail
// @Router /api/v1/applications/user/{user_id} [get]
func (h *ApplicationHandler) ListByUser(c *gin.Context) {
	userID, ok := h.ParseParamUint(c, "user_id")
	if !ok {
		return
	}

	details, err := h.applicationService.ListApplicationsByUser(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

// ListByDrive godoc
// @Summary Заявки на набор
// @Tags applications
// @Produce json
// @Param drive_id path int true "ID набора"
// @Success 200 {array} dto.ApplicationResponse
// @Router /api/v1/applications/drive/{drive_id} [get]
func (h *ApplicationHandler) ListByDrive(c *gin.Context) {
	driveID, ok := h.ParseParamUint(c, "drive_id")
	if !ok {
		return
	}

	applications, err := h.applicationService.ListApplicationsByDrive(h.GetDB(c), driveID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}
