package dto

// AdminUserRequest - данные для первичного администратора из конфигурации
type AdminUserRequest struct {
	Username string `json:"username" validate:"required,not-blank,max=50"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,is-user-role"`
}
