package dto

import "time"

// ======================
// Request DTOs
// ======================

type EmployeeRequest struct {
	Name     string `json:"name" validate:"required,not-blank,max=100"`
	Position string `json:"position" validate:"required,not-blank,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
	ImageURL string `json:"imageUrl" validate:"omitempty,max=500"`
}

// ======================
// Response DTOs
// ======================

type EmployeeResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
