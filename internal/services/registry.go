package services

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	EmployeeService EmployeeService
	ServiceService  ServiceService
	ContactService  ContactService
	UserService     UserService
	SeedService     SeedService
}
