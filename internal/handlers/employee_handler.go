package handlers

import (
	"net/http"

	"autoshop_backend/internal/services"
	"autoshop_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	*BaseHandler
	employeeService services.EmployeeService
}

func NewEmployeeHandler(base *BaseHandler, employeeService services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		BaseHandler:     base,
		employeeService: employeeService,
	}
}

func (h *EmployeeHandler) RegisterRoutes(r *gin.RouterGroup) {
	employees := r.Group("/employees")
	{
		employees.GET("", h.ListEmployees)
		employees.GET("/:id", h.GetEmployee)
		employees.POST("", h.CreateEmployee)
		employees.PUT("/:id", h.UpdateEmployee)
		employees.DELETE("/:id", h.DeleteEmployee)
	}
}

// ListEmployees godoc
// @Summary Активные сотрудники
// @Description Возвращает активных сотрудников, отсортированных по имени
// @Tags employees
// @Produce json
// @Success 200 {array} dto.EmployeeResponse
// @Router /api/employees [get]
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	employees, err := h.employeeService.ListActive(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

// GetEmployee godoc
// @Summary Сотрудник по ID
// @Tags employees
// @Produce json
// @Param id path int true "ID сотрудника"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/employees/{id} [get]
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	employee, err := h.employeeService.GetByID(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

// CreateEmployee godoc
// @Summary Создать сотрудника
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body dto.EmployeeRequest true "Данные сотрудника"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse "Email уже используется"
// @Router /api/employees [post]
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req dto.EmployeeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	employee, err := h.employeeService.Create(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, employee)
}

// UpdateEmployee godoc
// @Summary Обновить сотрудника
// @Tags employees
// @Accept json
// @Produce json
// @Param id path int true "ID сотрудника"
// @Param employee body dto.EmployeeRequest true "Данные сотрудника"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /api/employees/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	var req dto.EmployeeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	employee, err := h.employeeService.Update(h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

// DeleteEmployee godoc
// @Summary Деактивировать сотрудника
// @Description Мягкое удаление: сотрудник пропадает из списка, запись остается
// @Tags employees
// @Param id path int true "ID сотрудника"
// @Success 204
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	if err := h.employeeService.Delete(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
