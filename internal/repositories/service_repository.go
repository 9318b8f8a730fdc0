package repositories

import (
	"errors"

	"autoshop_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrServiceNotFound = errors.New("service not found")
)

type ServiceRepository interface {
	Create(db *gorm.DB, service *models.Service) error
	CreateBatch(db *gorm.DB, services []models.Service) error
	FindByID(db *gorm.DB, id uint) (*models.Service, error)
	FindByName(db *gorm.DB, name string) (*models.Service, error)
	FindActive(db *gorm.DB) ([]models.Service, error)
	FindActiveOrderByPrice(db *gorm.DB) ([]models.Service, error)
	FindActiveByPriceRange(db *gorm.DB, min, max float64) ([]models.Service, error)
	Update(db *gorm.DB, service *models.Service) error
	SetActive(db *gorm.DB, id uint, active bool) error
	Count(db *gorm.DB) (int64, error)
}

type ServiceRepositoryImpl struct{}

func NewServiceRepository() ServiceRepository {
	return &ServiceRepositoryImpl{}
}

func (r *ServiceRepositoryImpl) Create(db *gorm.DB, service *models.Service) error {
	return db.Create(service).Error
}

func (r *ServiceRepositoryImpl) CreateBatch(db *gorm.DB, services []models.Service) error {
	if len(services) == 0 {
		return nil
	}
	return db.Create(&services).Error
}

func (r *ServiceRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Service, error) {
	var service models.Service
	if err := db.First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &service, nil
}

// FindByName ищет среди всех услуг, включая неактивные
func (r *ServiceRepositoryImpl) FindByName(db *gorm.DB, name string) (*models.Service, error) {
	var service models.Service
	if err := db.Where("name = ?", name).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &service, nil
}

func (r *ServiceRepositoryImpl) FindActive(db *gorm.DB) ([]models.Service, error) {
	var services []models.Service
	err := db.Where("active = ?", true).Order("name ASC").Order("id ASC").Find(&services).Error
	return services, err
}

// FindActiveOrderByPrice - при равной цене порядок по id (порядок вставки)
func (r *ServiceRepositoryImpl) FindActiveOrderByPrice(db *gorm.DB) ([]models.Service, error) {
	var services []models.Service
	err := db.Where("active = ?", true).Order("price ASC").Order("id ASC").Find(&services).Error
	return services, err
}

// FindActiveByPriceRange - границы включительно
func (r *ServiceRepositoryImpl) FindActiveByPriceRange(db *gorm.DB, min, max float64) ([]models.Service, error) {
	var services []models.Service
	err := db.Where("active = ? AND price >= ? AND price <= ?", true, min, max).
		Order("price ASC").Order("id ASC").
		Find(&services).Error
	return services, err
}

func (r *ServiceRepositoryImpl) Update(db *gorm.DB, service *models.Service) error {
	return db.Save(service).Error
}

func (r *ServiceRepositoryImpl) SetActive(db *gorm.DB, id uint, active bool) error {
	return db.Model(&models.Service{}).Where("id = ?", id).Update("active", active).Error
}

func (r *ServiceRepositoryImpl) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Service{}).Count(&count).Error
	return count, err
}
