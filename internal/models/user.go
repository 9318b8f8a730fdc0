package models

// User - учетная запись администратора. Аутентификация к ней пока не подключена.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:50;uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password;size:60;not null" json:"-"`
	Role         Role   `gorm:"type:varchar(20);not null;default:'ADMIN'"`
	AuditFields
}
