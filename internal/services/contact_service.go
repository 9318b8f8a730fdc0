package services

import (
	"time"

	"autoshop_backend/internal/logger"
	"autoshop_backend/internal/models"
	"autoshop_backend/internal/repositories"
	"autoshop_backend/internal/services/dto"
	"autoshop_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const contactMessageResource = "Contact message"

type ContactService interface {
	Save(db *gorm.DB, req *dto.ContactMessageRequest) (*dto.ContactMessageResponse, error)
	ListAll(db *gorm.DB) ([]*dto.ContactMessageResponse, error)
	ListUnread(db *gorm.DB) ([]*dto.ContactMessageResponse, error)
	MarkAsRead(db *gorm.DB, id uint) error
	Delete(db *gorm.DB, id uint) error
}

type ContactServiceImpl struct {
	messageRepo repositories.ContactMessageRepository
}

func NewContactService(messageRepo repositories.ContactMessageRepository) ContactService {
	return &ContactServiceImpl{
		messageRepo: messageRepo,
	}
}

// Save сохраняет сообщение с формы. Флаг прочтения и время создания
// выставляет сервер, что бы ни прислал клиент.
func (s *ContactServiceImpl) Save(db *gorm.DB, req *dto.ContactMessageRequest) (*dto.ContactMessageResponse, error) {
	logger.CtxInfo(db.Statement.Context, "Saving contact message", "email", req.Email)

	message := &models.ContactMessage{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		Read:      false,
		CreatedAt: time.Now(),
	}
	if err := s.messageRepo.Create(db, message); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return toContactMessageResponse(message), nil
}

func (s *ContactServiceImpl) ListAll(db *gorm.DB) ([]*dto.ContactMessageResponse, error) {
	logger.CtxInfo(db.Statement.Context, "Fetching all contact messages")

	messages, err := s.messageRepo.FindAllNewestFirst(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return toContactMessageResponses(messages), nil
}

func (s *ContactServiceImpl) ListUnread(db *gorm.DB) ([]*dto.ContactMessageResponse, error) {
	logger.CtxInfo(db.Statement.Context, "Fetching unread contact messages")

	messages, err := s.messageRepo.FindUnreadNewestFirst(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return toContactMessageResponses(messages), nil
}

// MarkAsRead идемпотентен: повторная отметка ничего не меняет
func (s *ContactServiceImpl) MarkAsRead(db *gorm.DB, id uint) error {
	logger.CtxInfo(db.Statement.Context, "Marking contact message as read", "message_id", id)

	return db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.messageRepo.FindByID(tx, id); err != nil {
			return lookupError(err, repositories.ErrContactMessageNotFound, contactMessageResource, id)
		}
		if err := s.messageRepo.MarkAsRead(tx, id); err != nil {
			return apperrors.DatabaseError(err)
		}
		return nil
	})
}

// Delete - физическое удаление
func (s *ContactServiceImpl) Delete(db *gorm.DB, id uint) error {
	logger.CtxInfo(db.Statement.Context, "Deleting contact message", "message_id", id)

	if err := s.messageRepo.Delete(db, id); err != nil {
		return lookupError(err, repositories.ErrContactMessageNotFound, contactMessageResource, id)
	}
	return nil
}

// ---------------- Mapping ----------------

func toContactMessageResponse(message *models.ContactMessage) *dto.ContactMessageResponse {
	return &dto.ContactMessageResponse{
		ID:        message.ID,
		Name:      message.Name,
		Email:     message.Email,
		Phone:     message.Phone,
		Message:   message.Message,
		Read:      message.Read,
		CreatedAt: message.CreatedAt,
	}
}

func toContactMessageResponses(messages []models.ContactMessage) []*dto.ContactMessageResponse {
	responses := make([]*dto.ContactMessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, toContactMessageResponse(&messages[i]))
	}
	return responses
}
