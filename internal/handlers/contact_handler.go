package handlers

import (
	"net/http"

	"autoshop_backend/internal/logger"
	"autoshop_backend/internal/services"
	"autoshop_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// contactReceivedMessage показывается посетителю сайта после отправки формы
const contactReceivedMessage = "Din besked er blevet sendt. Vi kontakter dig snart."

type ContactHandler struct {
	*BaseHandler
	contactService services.ContactService
}

func NewContactHandler(base *BaseHandler, contactService services.ContactService) *ContactHandler {
	return &ContactHandler{
		BaseHandler:    base,
		contactService: contactService,
	}
}

func (h *ContactHandler) RegisterRoutes(r *gin.RouterGroup) {
	contact := r.Group("/contact")
	{
		contact.POST("", h.SubmitContactForm)
		contact.GET("/messages", h.ListMessages)
		contact.GET("/messages/unread", h.ListUnreadMessages)
		contact.PATCH("/messages/:id/read", h.MarkAsRead)
		contact.DELETE("/messages/:id", h.DeleteMessage)
	}
}

// SubmitContactForm godoc
// @Summary Отправить сообщение с формы обратной связи
// @Tags contact
// @Accept json
// @Produce json
// @Param message body dto.ContactMessageRequest true "Сообщение"
// @Success 201 {object} dto.ContactSubmitResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /api/contact [post]
func (h *ContactHandler) SubmitContactForm(c *gin.Context) {
	logger.CtxInfo(c.Request.Context(), "Contact form submitted", "client_ip", c.ClientIP())

	var req dto.ContactMessageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	saved, err := h.contactService.Save(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ContactSubmitResponse{
		Success: true,
		Message: contactReceivedMessage,
		ID:      saved.ID,
	})
}

// ListMessages godoc
// @Summary Все сообщения, новые первыми
// @Tags contact
// @Produce json
// @Success 200 {array} dto.ContactMessageResponse
// @Router /api/contact/messages [get]
func (h *ContactHandler) ListMessages(c *gin.Context) {
	messages, err := h.contactService.ListAll(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// ListUnreadMessages godoc
// @Summary Непрочитанные сообщения, новые первыми
// @Tags contact
// @Produce json
// @Success 200 {array} dto.ContactMessageResponse
// @Router /api/contact/messages/unread [get]
func (h *ContactHandler) ListUnreadMessages(c *gin.Context) {
	messages, err := h.contactService.ListUnread(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// MarkAsRead godoc
// @Summary Отметить сообщение прочитанным
// @Tags contact
// @Param id path int true "ID сообщения"
// @Success 204
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/contact/messages/{id}/read [patch]
func (h *ContactHandler) MarkAsRead(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	if err := h.contactService.MarkAsRead(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteMessage godoc
// @Summary Удалить сообщение
// @Tags contact
// @Param id path int true "ID сообщения"
// @Success 204
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/contact/messages/{id} [delete]
func (h *ContactHandler) DeleteMessage(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	if err := h.contactService.Delete(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
