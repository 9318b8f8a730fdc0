package handlers

import (
	"net/http"

	"autoshop_backend/internal/services"
	"autoshop_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

const sortByPrice = "price"

type ServiceHandler struct {
	*BaseHandler
	serviceService services.ServiceService
}

func NewServiceHandler(base *BaseHandler, serviceService services.ServiceService) *ServiceHandler {
	return &ServiceHandler{
		BaseHandler:    base,
		serviceService: serviceService,
	}
}

func (h *ServiceHandler) RegisterRoutes(r *gin.RouterGroup) {
	catalog := r.Group("/services")
	{
		catalog.GET("", h.ListServices)
		catalog.GET("/price-range", h.GetServicesByPriceRange)
		catalog.GET("/stats/total-revenue", h.GetTotalRevenue)
		catalog.GET("/stats/average-price", h.GetAveragePrice)
		catalog.GET("/:id", h.GetService)
		catalog.POST("", h.CreateService)
		catalog.PUT("/:id", h.UpdateService)
		catalog.DELETE("/:id", h.DeleteService)
	}
}

// ListServices godoc
// @Summary Активные услуги
// @Description По умолчанию сортировка по имени, sortBy=price - по цене
// @Tags services
// @Produce json
// @Param sortBy query string false "name или price"
// @Success 200 {array} dto.ServiceResponse
// @Router /api/services [get]
func (h *ServiceHandler) ListServices(c *gin.Context) {
	var query dto.ServiceListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	db := h.GetDB(c)
	var (
		list []*dto.ServiceResponse
		err  error
	)
	if query.SortBy == sortByPrice {
		list, err = h.serviceService.ListActiveSortedByPrice(db)
	} else {
		list, err = h.serviceService.ListActive(db)
	}
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetService godoc
// @Summary Услуга по ID
// @Tags services
// @Produce json
// @Param id path int true "ID услуги"
// @Success 200 {object} dto.ServiceResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/services/{id} [get]
func (h *ServiceHandler) GetService(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	service, err := h.serviceService.GetByID(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}

// GetServicesByPriceRange godoc
// @Summary Услуги в ценовом диапазоне
// @Description Границы включительно, результат по возрастанию цены
// @Tags services
// @Produce json
// @Param min query number true "Минимальная цена"
// @Param max query number true "Максимальная цена"
// @Success 200 {array} dto.ServiceResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /api/services/price-range [get]
func (h *ServiceHandler) GetServicesByPriceRange(c *gin.Context) {
	var query dto.PriceRangeQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	list, err := h.serviceService.FindByPriceRange(h.GetDB(c), *query.Min, *query.Max)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetTotalRevenue godoc
// @Summary Сумма цен активных услуг
// @Tags services
// @Produce json
// @Success 200 {number} number
// @Router /api/services/stats/total-revenue [get]
func (h *ServiceHandler) GetTotalRevenue(c *gin.Context) {
	total, err := h.serviceService.CalculateTotalRevenue(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, total.InexactFloat64())
}

// GetAveragePrice godoc
// @Summary Средняя цена активных услуг
// @Tags services
// @Produce json
// @Success 200 {number} number
// @Router /api/services/stats/average-price [get]
func (h *ServiceHandler) GetAveragePrice(c *gin.Context) {
	average, err := h.serviceService.CalculateAveragePrice(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, average.InexactFloat64())
}

// CreateService godoc
// @Summary Создать услугу
// @Tags services
// @Accept json
// @Produce json
// @Param service body dto.ServiceRequest true "Данные услуги"
// @Success 201 {object} dto.ServiceResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse "Имя уже занято"
// @Router /api/services [post]
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var req dto.ServiceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	service, err := h.serviceService.Create(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, service)
}

// UpdateService godoc
// @Summary Обновить услугу
// @Tags services
// @Accept json
// @Produce json
// @Param id path int true "ID услуги"
// @Param service body dto.ServiceRequest true "Данные услуги"
// @Success 200 {object} dto.ServiceResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /api/services/{id} [put]
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	var req dto.ServiceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	service, err := h.serviceService.Update(h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}

// DeleteService godoc
// @Summary Деактивировать услугу
// @Tags services
// @Param id path int true "ID услуги"
// @Success 204
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/services/{id} [delete]
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	if err := h.serviceService.Delete(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
