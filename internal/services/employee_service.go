package services

import (
	"errors"
	"fmt"

	"autoshop_backend/internal/logger"
	"autoshop_backend/internal/models"
	"autoshop_backend/internal/repositories"
	"autoshop_backend/internal/services/dto"
	"autoshop_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const employeeResource = "Employee"

type EmployeeService interface {
	ListActive(db *gorm.DB) ([]*dto.EmployeeResponse, error)
	GetByID(db *gorm.DB, id uint) (*dto.EmployeeResponse, error)
	Create(db *gorm.DB, req *dto.EmployeeRequest) (*dto.EmployeeResponse, error)
	Update(db *gorm.DB, id uint, req *dto.EmployeeRequest) (*dto.EmployeeResponse, error)
	Delete(db *gorm.DB, id uint) error
}

type EmployeeServiceImpl struct {
	employeeRepo repositories.EmployeeRepository
}

func NewEmployeeService(employeeRepo repositories.EmployeeRepository) EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
	}
}

// ListActive - активные сотрудники по имени
func (s *EmployeeServiceImpl) ListActive(db *gorm.DB) ([]*dto.EmployeeResponse, error) {
	logger.CtxInfo(db.Statement.Context, "Fetching all active employees")

	employees, err := s.employeeRepo.FindActive(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	responses := make([]*dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		responses = append(responses, toEmployeeResponse(&employees[i]))
	}
	return responses, nil
}

func (s *EmployeeServiceImpl) GetByID(db *gorm.DB, id uint) (*dto.EmployeeResponse, error) {
	logger.CtxInfo(db.Statement.Context, "Fetching employee", "employee_id", id)

	employee, err := s.employeeRepo.FindByID(db, id)
	if err != nil {
		return nil, lookupError(err, repositories.ErrEmployeeNotFound, employeeResource, id)
	}
	return toEmployeeResponse(employee), nil
}

// Create - email уникален среди всех сотрудников, в том числе неактивных
func (s *EmployeeServiceImpl) Create(db *gorm.DB, req *dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	logger.CtxInfo(db.Statement.Context, "Creating new employee", "name", req.Name)

	employee := toEmployeeModel(req)
	employee.Active = true

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := s.ensureEmailAvailable(tx, employee.Email); err != nil {
			return err
		}
		return storeError(s.employeeRepo.Create(tx, employee), employeeResource, emailTakenMessage(employee.Email))
	})
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

func (s *EmployeeServiceImpl) Update(db *gorm.DB, id uint, req *dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	logger.CtxInfo(db.Statement.Context, "Updating employee", "employee_id", id)

	var updated *models.Employee
	err := db.Transaction(func(tx *gorm.DB) error {
		employee, err := s.employeeRepo.FindByID(tx, id)
		if err != nil {
			return lookupError(err, repositories.ErrEmployeeNotFound, employeeResource, id)
		}

		if employee.Email != req.Email {
			if err := s.ensureEmailAvailable(tx, req.Email); err != nil {
				return err
			}
		}

		applyEmployeeRequest(employee, req)
		if err := s.employeeRepo.Update(tx, employee); err != nil {
			return storeError(err, employeeResource, emailTakenMessage(req.Email))
		}
		updated = employee
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(updated), nil
}

// Delete - мягкое удаление: active=false, строка остается для истории
func (s *EmployeeServiceImpl) Delete(db *gorm.DB, id uint) error {
	logger.CtxInfo(db.Statement.Context, "Deleting (soft) employee", "employee_id", id)

	return db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.employeeRepo.FindByID(tx, id); err != nil {
			return lookupError(err, repositories.ErrEmployeeNotFound, employeeResource, id)
		}
		if err := s.employeeRepo.SetActive(tx, id, false); err != nil {
			return apperrors.DatabaseError(err)
		}
		return nil
	})
}

func (s *EmployeeServiceImpl) ensureEmailAvailable(tx *gorm.DB, email string) error {
	_, err := s.employeeRepo.FindByEmail(tx, email)
	switch {
	case err == nil:
		return apperrors.Conflict(employeeResource, emailTakenMessage(email))
	case errors.Is(err, repositories.ErrEmployeeNotFound):
		return nil
	default:
		return apperrors.DatabaseError(err)
	}
}

func emailTakenMessage(email string) string {
	return fmt.Sprintf("Email %s is already in use", email)
}

// ---------------- Mapping ----------------

func toEmployeeModel(req *dto.EmployeeRequest) *models.Employee {
	employee := &models.Employee{}
	applyEmployeeRequest(employee, req)
	return employee
}

func applyEmployeeRequest(employee *models.Employee, req *dto.EmployeeRequest) {
	employee.Name = req.Name
	employee.Position = req.Position
	employee.Email = req.Email
	employee.Phone = req.Phone
	employee.ImageURL = req.ImageURL
}

func toEmployeeResponse(employee *models.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:        employee.ID,
		Name:      employee.Name,
		Position:  employee.Position,
		Email:     employee.Email,
		Phone:     employee.Phone,
		ImageURL:  employee.ImageURL,
		Active:    employee.Active,
		CreatedAt: employee.CreatedAt,
		UpdatedAt: employee.UpdatedAt,
	}
}
