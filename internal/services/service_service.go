package services

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"autoshop_backend/internal/logger"
	"autoshop_backend/internal/models"
	"autoshop_backend/internal/repositories"
	"autoshop_backend/internal/services/dto"
	"autoshop_backend/pkg/apperrors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	serviceResource    = "Service"
	maxPriceFractional = 2
)

type ServiceService interface {
	ListActive(db *gorm.DB) ([]*dto.ServiceResponse, error)
	ListActiveSortedByPrice(db *gorm.DB) ([]*dto.ServiceResponse, error)
	GetByID(db *gorm.DB, id uint) (*dto.ServiceResponse, error)
	FindByPriceRange(db *gorm.DB, min, max float64) ([]*dto.ServiceResponse, error)
	Create(db *gorm.DB, req *dto.ServiceRequest) (*dto.ServiceResponse, error)
	Update(db *gorm.DB, id uint, req *dto.ServiceRequest) (*dto.ServiceResponse, error)
	Delete(db *gorm.DB, id uint) error
	CalculateTotalRevenue(db *gorm.DB) (decimal.Decimal, error)
	CalculateAveragePrice(db *gorm.DB) (decimal.Decimal, error)
}

type ServiceServiceImpl struct {
	serviceRepo repositories.ServiceRepository
}

func NewServiceService(serviceRepo repositories.ServiceRepository) ServiceService {
	return &ServiceServiceImpl{
		serviceRepo: serviceRepo,
	}
}

func (s *ServiceServiceImpl) ListActive(db *gorm.DB) ([]*dto.ServiceResponse, error) {
	logger.CtxInfo(db.Statement.Context, "Fetching all active services")

	services, err := s.serviceRepo.FindActive(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return toServiceResponses(services), nil
}

func (s *ServiceServiceImpl) ListActiveSortedByPrice(db *gorm.DB) ([]*dto.ServiceResponse, error) {
	logger.CtxInfo(db.Statement.Context, "Fetching active services sorted by price")

	services, err := s.serviceRepo.FindActiveOrderByPrice(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return toServiceResponses(services), nil
}

func (s *ServiceServiceImpl) GetByID(db *gorm.DB, id uint) (*dto.ServiceResponse, error) {
	logger.CtxInfo(db.Statement.Context, "Fetching service", "service_id", id)

	service, err := s.serviceRepo.FindByID(db, id)
	if err != nil {
		return nil, lookupError(err, repositories.ErrServiceNotFound, serviceResource, id)
	}
	return toServiceResponse(service), nil
}

// FindByPriceRange - активные услуги с ценой в [min, max]
func (s *ServiceServiceImpl) FindByPriceRange(db *gorm.DB, min, max float64) ([]*dto.ServiceResponse, error) {
	logger.CtxInfo(db.Statement.Context, "Fetching services by price range", "min", min, "max", max)

	if math.IsNaN(min) || math.IsNaN(max) {
		return nil, apperrors.ManualValidation(serviceResource, "Price range bounds must be numbers")
	}
	if min < 0 || max < 0 {
		return nil, apperrors.ManualValidation(serviceResource, "Price range bounds must not be negative")
	}
	if min > max {
		return nil, apperrors.ManualValidation(serviceResource,
			fmt.Sprintf("Minimum price %s must not exceed maximum price %s", formatPrice(min), formatPrice(max)))
	}

	services, err := s.serviceRepo.FindActiveByPriceRange(db, min, max)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return toServiceResponses(services), nil
}

// Create - имя уникально среди всех услуг, в том числе неактивных
func (s *ServiceServiceImpl) Create(db *gorm.DB, req *dto.ServiceRequest) (*dto.ServiceResponse, error) {
	logger.CtxInfo(db.Statement.Context, "Creating new service", "name", req.Name)

	if err := validatePrice(*req.Price); err != nil {
		return nil, err
	}

	service := toServiceModel(req)
	service.Active = true

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := s.ensureNameAvailable(tx, service.Name); err != nil {
			return err
		}
		return storeError(s.serviceRepo.Create(tx, service), serviceResource, nameTakenMessage(service.Name))
	})
	if err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

func (s *ServiceServiceImpl) Update(db *gorm.DB, id uint, req *dto.ServiceRequest) (*dto.ServiceResponse, error) {
	logger.CtxInfo(db.Statement.Context, "Updating service", "service_id", id)

	var updated *models.Service
	err := db.Transaction(func(tx *gorm.DB) error {
		service, err := s.serviceRepo.FindByID(tx, id)
		if err != nil {
			return lookupError(err, repositories.ErrServiceNotFound, serviceResource, id)
		}

		if service.Name != req.Name {
			if err := s.ensureNameAvailable(tx, req.Name); err != nil {
				return err
			}
		}
		if err := validatePrice(*req.Price); err != nil {
			return err
		}

		applyServiceRequest(service, req)
		if err := s.serviceRepo.Update(tx, service); err != nil {
			return storeError(err, serviceResource, nameTakenMessage(req.Name))
		}
		updated = service
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toServiceResponse(updated), nil
}

// Delete - мягкое удаление
func (s *ServiceServiceImpl) Delete(db *gorm.DB, id uint) error {
	logger.CtxInfo(db.Statement.Context, "Deleting (soft) service", "service_id", id)

	return db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.serviceRepo.FindByID(tx, id); err != nil {
			return lookupError(err, repositories.ErrServiceNotFound, serviceResource, id)
		}
		if err := s.serviceRepo.SetActive(tx, id, false); err != nil {
			return apperrors.DatabaseError(err)
		}
		return nil
	})
}

// CalculateTotalRevenue - сумма цен активных услуг, 0 если их нет
func (s *ServiceServiceImpl) CalculateTotalRevenue(db *gorm.DB) (decimal.Decimal, error) {
	services, err := s.serviceRepo.FindActive(db)
	if err != nil {
		return decimal.Zero, apperrors.DatabaseError(err)
	}
	return sumPrices(services), nil
}

// CalculateAveragePrice - среднее арифметическое без округления, 0 если услуг нет
func (s *ServiceServiceImpl) CalculateAveragePrice(db *gorm.DB) (decimal.Decimal, error) {
	services, err := s.serviceRepo.FindActive(db)
	if err != nil {
		return decimal.Zero, apperrors.DatabaseError(err)
	}
	if len(services) == 0 {
		return decimal.Zero, nil
	}
	return sumPrices(services).Div(decimal.NewFromInt(int64(len(services)))), nil
}

func (s *ServiceServiceImpl) ensureNameAvailable(tx *gorm.DB, name string) error {
	_, err := s.serviceRepo.FindByName(tx, name)
	switch {
	case err == nil:
		return apperrors.Conflict(serviceResource, nameTakenMessage(name))
	case errors.Is(err, repositories.ErrServiceNotFound):
		return nil
	default:
		return apperrors.DatabaseError(err)
	}
}

func nameTakenMessage(name string) string {
	return fmt.Sprintf("Service with name %s already exists", name)
}

// validatePrice: цена положительна и не больше двух знаков после точки
func validatePrice(price float64) error {
	if price <= 0 {
		return apperrors.ManualValidation(serviceResource, "Price must be positive")
	}
	if !hasValidPricePrecision(price) {
		return apperrors.ManualValidation(serviceResource, "Price can have at most 2 decimal places")
	}
	return nil
}

// hasValidPricePrecision смотрит на кратчайшую десятичную запись числа,
// так 10.1 остается "10.1", а не 10.0999...
func hasValidPricePrecision(price float64) bool {
	formatted := formatPrice(price)
	dot := strings.IndexByte(formatted, '.')
	if dot < 0 {
		return true
	}
	return len(formatted)-dot-1 <= maxPriceFractional
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}

func sumPrices(services []models.Service) decimal.Decimal {
	total := decimal.Zero
	for _, service := range services {
		total = total.Add(decimal.NewFromFloat(service.Price))
	}
	return total
}

// ---------------- Mapping ----------------

func toServiceModel(req *dto.ServiceRequest) *models.Service {
	service := &models.Service{}
	applyServiceRequest(service, req)
	return service
}

func applyServiceRequest(service *models.Service, req *dto.ServiceRequest) {
	service.Name = req.Name
	service.Description = req.Description
	if req.Price != nil {
		service.Price = *req.Price
	}
	service.ImageURL = req.ImageURL
}

func toServiceResponse(service *models.Service) *dto.ServiceResponse {
	return &dto.ServiceResponse{
		ID:          service.ID,
		Name:        service.Name,
		Description: service.Description,
		Price:       service.Price,
		ImageURL:    service.ImageURL,
		Active:      service.Active,
		CreatedAt:   service.CreatedAt,
		UpdatedAt:   service.UpdatedAt,
	}
}

func toServiceResponses(services []models.Service) []*dto.ServiceResponse {
	responses := make([]*dto.ServiceResponse, 0, len(services))
	for i := range services {
		responses = append(responses, toServiceResponse(&services[i]))
	}
	return responses
}
