package app

import (
	"fmt"
	"log/slog"

	"autoshop_backend/internal/config"
	"autoshop_backend/internal/logger"
	"autoshop_backend/internal/models"
	"autoshop_backend/internal/services"
	"autoshop_backend/internal/services/dto"
	"autoshop_backend/internal/validator"

	"gorm.io/gorm"
)

// Bootstrap выполняется один раз при старте: демо-данные и первый администратор.
func Bootstrap(db *gorm.DB, cfg *config.Config, container *services.ServiceContainer) error {
	log := logger.With("component", "bootstrap")

	if cfg.Seed.InitializeOnStartup {
		if _, err := container.SeedService.SeedSampleData(db); err != nil {
			return err
		}
	} else {
		log.Info("Data initialization disabled")
	}

	return seedFirstAdmin(log, db, cfg, container.UserService)
}

func seedFirstAdmin(log *slog.Logger, db *gorm.DB, cfg *config.Config, userService services.UserService) error {
	username := cfg.FirstAdmin.Username
	password := cfg.FirstAdmin.Password

	if username == "" || password == "" {
		log.Warn("FIRST_ADMIN_USERNAME or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	req := &dto.AdminUserRequest{
		Username: username,
		Password: password,
		Role:     string(models.RoleAdmin),
	}
	if err := validator.New().Validate(req); err != nil {
		return fmt.Errorf("invalid first admin configuration: %w", err)
	}

	created, err := userService.EnsureFirstAdmin(db, req)
	if err != nil {
		return err
	}
	if created {
		log.Info("Successfully created first admin user", "username", username)
	}
	return nil
}
