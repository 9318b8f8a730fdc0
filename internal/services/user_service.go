package services

import (
	"errors"
	"fmt"

	"autoshop_backend/internal/auth"
	"autoshop_backend/internal/logger"
	"autoshop_backend/internal/models"
	"autoshop_backend/internal/repositories"
	"autoshop_backend/internal/services/dto"

	"gorm.io/gorm"
)

// UserService - заготовка под учетные записи. Входа в систему пока нет,
// умеет только завести первого администратора.
type UserService interface {
	EnsureFirstAdmin(db *gorm.DB, req *dto.AdminUserRequest) (bool, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
	}
}

// EnsureFirstAdmin создает пользователя, если такого username еще нет.
// Возвращает true, если пользователь был создан.
func (s *UserServiceImpl) EnsureFirstAdmin(db *gorm.DB, req *dto.AdminUserRequest) (bool, error) {
	created := false
	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := s.userRepo.FindByUsername(tx, req.Username)
		if err == nil {
			logger.Info("Admin user already exists. Skipping creation.", "username", req.Username)
			return nil
		}
		if !errors.Is(err, repositories.ErrUserNotFound) {
			return fmt.Errorf("failed to check for admin user: %w", err)
		}

		logger.Warn("No admin user found with specified username. Creating first admin...", "username", req.Username)

		hashedPassword, err := auth.HashPassword(req.Password)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		user := &models.User{
			Username:     req.Username,
			PasswordHash: hashedPassword,
			Role:         models.Role(req.Role),
		}
		if err := s.userRepo.Create(tx, user); err != nil {
			return fmt.Errorf("failed to create admin user in database: %w", err)
		}
		created = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}
