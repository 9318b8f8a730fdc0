package models

// Service - услуга автосервиса. Удаляется мягко, как Employee.
type Service struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:100;not null;uniqueIndex"`
	Description string  `gorm:"size:500"`
	Price       float64 `gorm:"not null"`
	ImageURL    string  `gorm:"size:500"`
	Active      bool    `gorm:"not null;default:true;index"`
	AuditFields
}
