package apperrors

// ErrorCode - тип для кодов ошибок
type ErrorCode string

const (
	// Системные и неизвестные ошибки
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"

	// Ошибки бизнес-логики
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeConflict         ErrorCode = "CONFLICT"
)

// Label returns the "error" field of the response envelope for the code.
func (c ErrorCode) Label() string {
	switch c {
	case CodeNotFound:
		return "Not Found"
	case CodeValidationFailed:
		return "Validation Error"
	case CodeConflict:
		return "Business Logic Error"
	default:
		return "Internal Server Error"
	}
}
