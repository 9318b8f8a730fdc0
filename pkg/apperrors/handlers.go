package apperrors

import (
	"net/http"
	"time"

	"autoshop_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// TimestampLayout is ISO-8601 local date-time without zone offset.
const TimestampLayout = "2006-01-02T15:04:05"

// ErrorResponse - стандартный ответ об ошибке
type ErrorResponse struct {
	Timestamp string `json:"timestamp" example:"2025-12-06T23:30:15"`
	Status    int    `json:"status" example:"404"`
	Error     string `json:"error" example:"Not Found"`
	Message   string `json:"message" example:"Employee with id 7 not found"`
	Path      string `json:"path" example:"/api/employees/7"`
}

// NewErrorResponse собирает конверт ошибки для AppError
func NewErrorResponse(appErr *AppError, path string) ErrorResponse {
	return ErrorResponse{
		Timestamp: time.Now().Format(TimestampLayout),
		Status:    appErr.HTTPCode,
		Error:     appErr.Code.Label(),
		Message:   appErr.Message,
		Path:      path,
	}
}

// AsAppError - пытается преобразовать error в *AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HandleError - единая точка формирования JSON-ответа об ошибке.
// Неклассифицированные ошибки логируются полностью, а клиент получает
// только общее сообщение.
func HandleError(c *gin.Context, err error) {
	ctx := c.Request.Context()
	path := c.Request.URL.Path

	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= http.StatusInternalServerError {
		logger.CtxError(ctx, "Unexpected error occurred", "error", err.Error(), "path", path)
		appErr = &AppError{
			Code:     appErr.Code,
			Domain:   appErr.Domain,
			Message:  GenericInternalMessage,
			HTTPCode: appErr.HTTPCode,
		}
	} else {
		logger.CtxWarn(ctx, appErr.Code.Label(), "message", appErr.Message, "path", path)
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, NewErrorResponse(appErr, path))
}

// NoRouteHandler отвечает 404-конвертом на неизвестные маршруты
func NoRouteHandler(c *gin.Context) {
	HandleError(c, NotFoundMessage("route", "No handler found for "+c.Request.Method+" "+c.Request.URL.Path))
}

// RecoveryHandler превращает панику в 500-конверт (для gin.CustomRecovery)
func RecoveryHandler(c *gin.Context, recovered any) {
	logger.CtxError(c.Request.Context(), "Recovered from panic", "panic", recovered, "path", c.Request.URL.Path)
	c.AbortWithStatusJSON(http.StatusInternalServerError, NewErrorResponse(InternalError(nil), c.Request.URL.Path))
}
