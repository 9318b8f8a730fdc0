package dto

import "time"

// ======================
// Request DTOs
// ======================

// ContactMessageRequest - флаг прочтения и дату создания клиент не задает
type ContactMessageRequest struct {
	Name    string `json:"name" validate:"required,not-blank,max=100"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
	Message string `json:"message" validate:"required,not-blank,min=10,max=1000"`
}

// ======================
// Response DTOs
// ======================

type ContactMessageResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

type ContactSubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      uint   `json:"id"`
}
