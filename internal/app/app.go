package app

import (
	"fmt"
	"time"

	"autoshop_backend/database"
	"autoshop_backend/internal/config"
	"autoshop_backend/internal/handlers"
	"autoshop_backend/internal/logger"
	"autoshop_backend/internal/middleware"
	"autoshop_backend/internal/repositories"
	"autoshop_backend/internal/routes"
	"autoshop_backend/internal/services"
	"autoshop_backend/internal/validator"
	"autoshop_backend/pkg/apperrors"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	if err := config.LoadConfig(); err != nil {
		// логгер еще не настроен
		logger.Init("")
		logger.Fatal("Failed to load config", "error", err)
	}
	cfg := config.GetConfig()
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Open(cfg.Database.Driver, cfg.Database.DSN, cfg.Server.Env)
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	serviceContainer := NewServiceContainer()

	// Данные должны быть на месте до того, как сервер начнет принимать запросы
	if err := Bootstrap(gormDB, cfg, serviceContainer); err != nil {
		logger.Fatal("Failed to bootstrap data", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB, serviceContainer)

	address := cfg.Address()
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает gin.Engine со всеми middleware и маршрутами.
// Вынесен отдельно, чтобы тесты могли поднимать роутер на своей базе.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB, serviceContainer *services.ServiceContainer) *gin.Engine {
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

// NewServiceContainer собирает репозитории и сервисы
func NewServiceContainer() *services.ServiceContainer {
	employeeRepo := repositories.NewEmployeeRepository()
	serviceRepo := repositories.NewServiceRepository()
	contactRepo := repositories.NewContactMessageRepository()
	userRepo := repositories.NewUserRepository()

	return &services.ServiceContainer{
		EmployeeService: services.NewEmployeeService(employeeRepo),
		ServiceService:  services.NewServiceService(serviceRepo),
		ContactService:  services.NewContactService(contactRepo),
		UserService:     services.NewUserService(userRepo),
		SeedService:     services.NewSeedService(employeeRepo, serviceRepo),
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		EmployeeHandler: handlers.NewEmployeeHandler(baseHandler, services.EmployeeService),
		ServiceHandler:  handlers.NewServiceHandler(baseHandler, services.ServiceService),
		ContactHandler:  handlers.NewContactHandler(baseHandler, services.ContactService),
		HealthHandler:   handlers.NewHealthHandler(baseHandler),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.CustomRecovery(apperrors.RecoveryHandler))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(cors.New(corsConfig(cfg)))
	router.Use(middleware.DBMiddleware(db))
	router.NoRoute(apperrors.NoRouteHandler)
	return router
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}

	origins := cfg.CORS.AllowedOrigins
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
	}
	return corsCfg
}
