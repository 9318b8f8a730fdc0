package services

import (
	"fmt"

	"autoshop_backend/internal/logger"
	"autoshop_backend/internal/models"
	"autoshop_backend/internal/repositories"

	"gorm.io/gorm"
)

// SeedService заполняет пустую базу демонстрационными данными.
type SeedService interface {
	SeedSampleData(db *gorm.DB) (bool, error)
}

type SeedServiceImpl struct {
	employeeRepo repositories.EmployeeRepository
	serviceRepo  repositories.ServiceRepository
}

func NewSeedService(employeeRepo repositories.EmployeeRepository, serviceRepo repositories.ServiceRepository) SeedService {
	return &SeedServiceImpl{
		employeeRepo: employeeRepo,
		serviceRepo:  serviceRepo,
	}
}

// SeedSampleData вставляет сотрудников и услуги одной транзакцией, только если
// обе таблицы пусты. Возвращает true, если данные были вставлены.
func (s *SeedServiceImpl) SeedSampleData(db *gorm.DB) (bool, error) {
	seeded := false
	err := db.Transaction(func(tx *gorm.DB) error {
		employeeCount, err := s.employeeRepo.Count(tx)
		if err != nil {
			return fmt.Errorf("failed to count employees: %w", err)
		}
		serviceCount, err := s.serviceRepo.Count(tx)
		if err != nil {
			return fmt.Errorf("failed to count services: %w", err)
		}
		if employeeCount != 0 || serviceCount != 0 {
			logger.Info("Database already contains data. Skipping initialization.",
				"employees", employeeCount, "services", serviceCount)
			return nil
		}

		logger.Info("Initializing sample data...")

		employees := sampleEmployees()
		if err := s.employeeRepo.CreateBatch(tx, employees); err != nil {
			return fmt.Errorf("failed to seed employees: %w", err)
		}
		catalog := sampleServices()
		if err := s.serviceRepo.CreateBatch(tx, catalog); err != nil {
			return fmt.Errorf("failed to seed services: %w", err)
		}

		logger.Info("Sample data initialized", "employees", len(employees), "services", len(catalog))
		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return seeded, nil
}

func sampleEmployees() []models.Employee {
	return []models.Employee{
		{Name: "Michael Hansen", Position: "Ejer & Hovedmekaniker", Email: "michael@bilensven.dk", Phone: "+45 66 12 32 64", Active: true},
		{Name: "Lars Nielsen", Position: "Mekaniker", Email: "lars@bilensven.dk", Phone: "+45 54 12 63 11", Active: true},
		{Name: "Peter Jensen", Position: "Lærling", Email: "peter@bilensven.dk", Phone: "+45 54 23 12 56", Active: true},
	}
}

func sampleServices() []models.Service {
	const img = "https://images.unsplash.com/photo-%s?w=400"
	return []models.Service{
		{Name: "Olieskift", Description: "Komplet olieskift inkl. oliefilter og ny motorolie", Price: 499, ImageURL: fmt.Sprintf(img, "1486262715619-67b85e0b08d3"), Active: true},
		{Name: "Bremseservice", Description: "Kontrol og udskiftning af bremseklodser, inkl. arbejdsløn", Price: 1299, ImageURL: fmt.Sprintf(img, "1625047509168-a7026f36de04"), Active: true},
		{Name: "Dækskift", Description: "Sæsonmæssigt dækskift inkl. afbalancering", Price: 299, ImageURL: fmt.Sprintf(img, "1619642751034-765dfdf7c58e"), Active: true},
		{Name: "Aircondition service", Description: "Kontrol, rensning og genopfyldning af aircondition anlæg", Price: 799, ImageURL: fmt.Sprintf(img, "1621905251918-48416bd8575a"), Active: true},
		{Name: "Fejlfinding", Description: "Computerdiagnostik og fejlfinding pr. time", Price: 650, ImageURL: fmt.Sprintf(img, "1613214149929-b3a2e9b66a2e"), Active: true},
		{Name: "Kobling udskiftning", Description: "Udskiftning af kobling inkl. arbejdsløn", Price: 4500, ImageURL: fmt.Sprintf(img, "1492144534655-ae79c964c9d7"), Active: true},
		{Name: "Periodisk syn", Description: "Forberedelse og gennemførelse af periodisk syn", Price: 899, ImageURL: fmt.Sprintf(img, "1449965408869-eaa3f722e40d"), Active: true},
		{Name: "Motorservice", Description: "Stor motorservice med udskiftning af alle væsker og filtre", Price: 1999, ImageURL: fmt.Sprintf(img, "1487754180451-c456f719a1fc"), Active: true},
		{Name: "Rustbehandling", Description: "Professionel rustbehandling og undersvognsbehandling", Price: 2499, ImageURL: fmt.Sprintf(img, "1616422285623-13ff0162193c"), Active: true},
		{Name: "Støddæmpere", Description: "Udskiftning af støddæmpere for og bag, inkl. arbejdsløn", Price: 3200, ImageURL: fmt.Sprintf(img, "1552519507-da3b142c6e3d"), Active: true},
	}
}
