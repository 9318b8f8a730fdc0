package apperrors

import (
	"fmt"
	"net/http"
)

// GenericInternalMessage is the only text an unclassified failure shows to clients.
const GenericInternalMessage = "An unexpected error occurred. Please contact support."

// NotFound - сущность с данным id отсутствует (404)
func NotFound(resource string, id uint) *AppError {
	return New(CodeNotFound, resource, fmt.Sprintf("%s with id %d not found", resource, id), http.StatusNotFound)
}

// NotFoundMessage - 404 с произвольным текстом
func NotFoundMessage(domain, message string) *AppError {
	return New(CodeNotFound, domain, message, http.StatusNotFound)
}

// Conflict - нарушение бизнес-правила, например дубликат email (409)
func Conflict(domain, message string) *AppError {
	return New(CodeConflict, domain, message, http.StatusConflict)
}

// ManualValidation - семантическая проверка, выполненная в сервисе (400)
func ManualValidation(domain, message string) *AppError {
	return New(CodeValidationFailed, domain, message, http.StatusBadRequest)
}

// FieldValidation - декларативная проверка полей DTO. message уже содержит
// все нарушенные поля в виде "field: message, field: message".
func FieldValidation(message string, details interface{}) *AppError {
	return New(CodeValidationFailed, "validation", message, http.StatusBadRequest).WithDetails(details)
}
