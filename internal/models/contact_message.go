package models

import "time"

// ContactMessage неизменяемо после создания, кроме флага прочтения,
// поэтому UpdatedAt нет. Единственная сущность с настоящим удалением.
type ContactMessage struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:100;not null"`
	Email     string    `gorm:"size:255;not null"`
	Phone     string    `gorm:"size:20"`
	Message   string    `gorm:"size:1000;not null"`
	Read      bool      `gorm:"column:is_read;not null;default:false;index"`
	CreatedAt time.Time `gorm:"not null;index"`
}
