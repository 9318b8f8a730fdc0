package handlers

import (
	"net/http"

	"autoshop_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status   string `json:"status" example:"UP"`
	Database string `json:"database" example:"UP"`
}

type HealthHandler struct {
	*BaseHandler
}

func NewHealthHandler(base *BaseHandler) *HealthHandler {
	return &HealthHandler{BaseHandler: base}
}

func (h *HealthHandler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/health", h.Health)
}

// Health godoc
// @Summary Проверка состояния
// @Description Пингует базу данных
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()

	sqlDB, err := h.GetDB(c).DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		logger.CtxWithError(ctx, "Health check failed", err)
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "DOWN", Database: "DOWN"})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{Status: "UP", Database: "UP"})
}
