package models

// Employee удаляется только мягко: Active=false, строка остается.
type Employee struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"size:100;not null;index"`
	Position string `gorm:"size:100;not null"`
	Email    string `gorm:"size:255;not null;uniqueIndex"`
	Phone    string `gorm:"size:20"`
	ImageURL string `gorm:"size:500"`
	Active   bool   `gorm:"not null;default:true;index"`
	AuditFields
}
