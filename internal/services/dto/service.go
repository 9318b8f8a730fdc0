package dto

import "time"

// ======================
// Request DTOs
// ======================

// ServiceRequest - Price указателем, чтобы отличать "не передано" от нуля
type ServiceRequest struct {
	Name        string   `json:"name" validate:"required,not-blank,max=100"`
	Description string   `json:"description" validate:"omitempty,max=500"`
	Price       *float64 `json:"price" validate:"required,gt=0"`
	ImageURL    string   `json:"imageUrl" validate:"omitempty,max=500"`
}

// ======================
// Query DTOs
// ======================

// ServiceListQuery - sortBy=price сортирует по цене, любое другое значение по имени
type ServiceListQuery struct {
	SortBy string `form:"sortBy"`
}

type PriceRangeQuery struct {
	Min *float64 `form:"min" validate:"required"`
	Max *float64 `form:"max" validate:"required"`
}

// ======================
// Response DTOs
// ======================

type ServiceResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
