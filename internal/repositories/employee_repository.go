package repositories

import (
	"errors"

	"autoshop_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
)

type EmployeeRepository interface {
	Create(db *gorm.DB, employee *models.Employee) error
	CreateBatch(db *gorm.DB, employees []models.Employee) error
	FindByID(db *gorm.DB, id uint) (*models.Employee, error)
	FindByEmail(db *gorm.DB, email string) (*models.Employee, error)
	FindActive(db *gorm.DB) ([]models.Employee, error)
	Update(db *gorm.DB, employee *models.Employee) error
	SetActive(db *gorm.DB, id uint, active bool) error
	Count(db *gorm.DB) (int64, error)
}

type EmployeeRepositoryImpl struct{}

func NewEmployeeRepository() EmployeeRepository {
	return &EmployeeRepositoryImpl{}
}

func (r *EmployeeRepositoryImpl) Create(db *gorm.DB, employee *models.Employee) error {
	return db.Create(employee).Error
}

func (r *EmployeeRepositoryImpl) CreateBatch(db *gorm.DB, employees []models.Employee) error {
	if len(employees) == 0 {
		return nil
	}
	return db.Create(&employees).Error
}

func (r *EmployeeRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Employee, error) {
	var employee models.Employee
	if err := db.First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return &employee, nil
}

// FindByEmail ищет среди всех сотрудников, включая неактивных
func (r *EmployeeRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.Employee, error) {
	var employee models.Employee
	if err := db.Where("email = ?", email).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return &employee, nil
}

func (r *EmployeeRepositoryImpl) FindActive(db *gorm.DB) ([]models.Employee, error) {
	var employees []models.Employee
	err := db.Where("active = ?", true).Order("name ASC").Order("id ASC").Find(&employees).Error
	return employees, err
}

func (r *EmployeeRepositoryImpl) Update(db *gorm.DB, employee *models.Employee) error {
	return db.Save(employee).Error
}

// SetActive не проверяет RowsAffected: MySQL не считает строку, если значение не изменилось
func (r *EmployeeRepositoryImpl) SetActive(db *gorm.DB, id uint, active bool) error {
	return db.Model(&models.Employee{}).Where("id = ?", id).Update("active", active).Error
}

func (r *EmployeeRepositoryImpl) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Employee{}).Count(&count).Error
	return count, err
}
