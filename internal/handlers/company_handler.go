package handlers

import (
	"net/http"

	"placement_backend/internal/services"
	"placement_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	*BaseHandler
	companyService services.CompanyService
}

func NewCompanyHandler(base *BaseHandler, companyService services.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		BaseHandler:    base,
		companyService: companyService,
	}
}

func (h *CompanyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	companies := rg.Group("/companies")
	{
		companies.POST("", h.CreateCompany)
		companies.GET("", h.ListCompanies)
		companies.GET("/:company_id", h.GetCompany)
	}
}

// CreateCompany godoc
// @Summary Создать компанию
// @Tags companies
// @Accept json
// @Produce json
// @Param request body dto.CreateCompanyRequest true "Компания"
// @Success 201 {object} dto.CompanyResponse
// @Failure 409 {object} apperrors.ErrorResponse "Компания уже существует"
// @Router /api/v1/companies [post]
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	company, err := h.companyService.CreateCompany(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, company)
}

func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	companies, err := h.companyService.ListCompanies(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, companies)
}

// GetCompany godoc
// @Summary Компания по ID
// @Tags companies
// @Produce json
// @Param company_id path int true "ID компании"
// @Success 200 {object} dto.CompanyResponse
// @Failure 404 {object} apperrors.ErrorResponse "Компания не найдена"
// @Router /api/v1/companies/{company_id} [get]
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	companyID, ok := h.ParseParamUint(c, "company_id")
	if !ok {
		return
	}

	company, err := h.companyService.GetCompany(h.GetDB(c), companyID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}
