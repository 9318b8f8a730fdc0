package repositories

import (
	"errors"

	"autoshop_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrContactMessageNotFound = errors.New("contact message not found")
)

// newestFirst: сообщения без даты создания уходят в конец
const newestFirst = "created_at IS NULL, created_at DESC, id DESC"

type ContactMessageRepository interface {
	Create(db *gorm.DB, message *models.ContactMessage) error
	FindByID(db *gorm.DB, id uint) (*models.ContactMessage, error)
	FindAllNewestFirst(db *gorm.DB) ([]models.ContactMessage, error)
	FindUnreadNewestFirst(db *gorm.DB) ([]models.ContactMessage, error)
	MarkAsRead(db *gorm.DB, id uint) error
	Delete(db *gorm.DB, id uint) error
}

type ContactMessageRepositoryImpl struct{}

func NewContactMessageRepository() ContactMessageRepository {
	return &ContactMessageRepositoryImpl{}
}

func (r *ContactMessageRepositoryImpl) Create(db *gorm.DB, message *models.ContactMessage) error {
	return db.Create(message).Error
}

func (r *ContactMessageRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.ContactMessage, error) {
	var message models.ContactMessage
	if err := db.First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactMessageNotFound
		}
		return nil, err
	}
	return &message, nil
}

func (r *ContactMessageRepositoryImpl) FindAllNewestFirst(db *gorm.DB) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	err := db.Order(newestFirst).Find(&messages).Error
	return messages, err
}

func (r *ContactMessageRepositoryImpl) FindUnreadNewestFirst(db *gorm.DB) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	err := db.Where("is_read = ?", false).Order(newestFirst).Find(&messages).Error
	return messages, err
}

func (r *ContactMessageRepositoryImpl) MarkAsRead(db *gorm.DB, id uint) error {
	return db.Model(&models.ContactMessage{}).Where("id = ?", id).Update("is_read", true).Error
}

// Delete удаляет строку физически
func (r *ContactMessageRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	result := db.Delete(&models.ContactMessage{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContactMessageNotFound
	}
	return nil
}
