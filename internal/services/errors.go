package services

import (
	"errors"

	"autoshop_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// storeError переводит ошибку записи в AppError: нарушение уникального индекса
// становится конфликтом (гонка двух create мимо проверки в сервисе), остальное -
// ошибкой хранилища.
func storeError(err error, domain, conflictMessage string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.Conflict(domain, conflictMessage).WithError(err)
	}
	return apperrors.DatabaseError(err)
}

// lookupError переводит ошибку поиска по id: notFound -> 404, остальное -> 500
func lookupError(err, notFound error, resource string, id uint) error {
	if errors.Is(err, notFound) {
		return apperrors.NotFound(resource, id)
	}
	return apperrors.DatabaseError(err)
}
