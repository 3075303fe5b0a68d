package handlers

import (
	"net/http"

	"placement_backend/internal/services"
	"placement_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type DriveHandler struct {
	*BaseHandler
	driveService services.DriveService
}

func NewDriveHandler(base *BaseHandler, driveService services.DriveService) *DriveHandler {
	return &DriveHandler{
		BaseHandler:  base,
		driveService: driveService,
	}
}

func (h *DriveHandler) RegisterRoutes(rg *gin.RouterGroup) {
	drives := rg.Group("/drives")
	{
		drives.POST("", h.CreateDrive)
		drives.GET("/:company_id", h.ListDrives)
	}
}

// CreateDrive godoc
// @Summary Создать набор (drive)
// @Description Компания проверяется явно до вставки
// @Tags drives
// @Accept json
// @Produce json
// @Param request body dto.CreateDriveRequest true "Набор"
// @Success 201 {object} dto.DriveResponse
// @Failure 404 {object} apperrors.ErrorResponse "Компания не найдена"
// @Router /api/v1/drives [post]
func (h *DriveHandler) CreateDrive(c *gin.Context) {
	var req dto.CreateDriveRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	drive, err := h.driveService.CreateDrive(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, drive)
}

// ListDrives godoc
// @Summary Наборы компании
// @Tags drives
// @Produce json
// @Param company_id path int true "ID компании"
// @Success 200 {array} dto.DriveResponse
// @Failure 400 {object} apperrors.ErrorResponse "Некорректный ID"
// @Router /api/v1/drives/{company_id} [get]
func (h *DriveHandler) ListDrives(c *gin.Context) {
	companyID, ok := h.ParseParamUint(c, "company_id")
	if !ok {
		return
	}

	drives, err := h.driveService.ListDrivesByCompany(h.GetDB(c), companyID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, drives)
}
