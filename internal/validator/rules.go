package validator

import (
	"log"
	"strings"

	"autoshop_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует кастомные функции валидации.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Без правила приложение запускаться не должно
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'not-blank': строка не пустая и не состоит из одних пробелов
	mustRegister("not-blank", validateNotBlank)

	// 'is-user-role': ADMIN или USER
	mustRegister("is-user-role", validateUserRole)
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустое значение проверяет 'required'
	}
	return models.Role(value).IsValid()
}
