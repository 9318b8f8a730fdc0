package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	EmployeeHandler *EmployeeHandler
	ServiceHandler  *ServiceHandler
	ContactHandler  *ContactHandler
	HealthHandler   *HealthHandler
}
