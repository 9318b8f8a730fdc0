package models

import "time"

// AuditFields встраивается во все сущности. GORM сам выставляет
// CreatedAt при вставке и UpdatedAt при каждом изменении.
type AuditFields struct {
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time
}
