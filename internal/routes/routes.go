package routes

import (
	"autoshop_backend/internal/handlers"
	"autoshop_backend/internal/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes регистрирует все HTTP маршруты.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api")
	{
		appHandlers.EmployeeHandler.RegisterRoutes(api)
		appHandlers.ServiceHandler.RegisterRoutes(api)
		appHandlers.ContactHandler.RegisterRoutes(api)
	}

	appHandlers.HealthHandler.RegisterRoutes(ginRouter)

	ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	logger.Debug("Routes registered", "count", len(ginRouter.Routes()))
}
