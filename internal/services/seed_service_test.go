package services_test

import (
	"testing"

	"autoshop_backend/internal/models"
	"autoshop_backend/internal/repositories"
	"autoshop_backend/internal/services"
	"autoshop_backend/internal/services/dto"
	"autoshop_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedService_SeedSampleData(t *testing.T) {
	db := testutil.NewTestDB(t)
	employeeRepo := repositories.NewEmployeeRepository()
	serviceRepo := repositories.NewServiceRepository()
	svc := services.NewSeedService(employeeRepo, serviceRepo)

	seeded, err := svc.SeedSampleData(db)
	require.NoError(t, err)
	assert.True(t, seeded)

	employees, err := employeeRepo.Count(db)
	require.NoError(t, err)
	catalog, err := serviceRepo.Count(db)
	require.NoError(t, err)
	assert.Equal(t, int64(3), employees)
	assert.Equal(t, int64(10), catalog)

	// второй запуск ничего не добавляет
	seeded, err = svc.SeedSampleData(db)
	require.NoError(t, err)
	assert.False(t, seeded)

	employeesAfter, err := employeeRepo.Count(db)
	require.NoError(t, err)
	catalogAfter, err := serviceRepo.Count(db)
	require.NoError(t, err)
	assert.Equal(t, employees, employeesAfter)
	assert.Equal(t, catalog, catalogAfter)
}

func TestSeedService_SkipsWhenAnyTableHasRows(t *testing.T) {
	db := testutil.NewTestDB(t)
	employeeRepo := repositories.NewEmployeeRepository()
	serviceRepo := repositories.NewServiceRepository()

	price := 100.0
	_, err := services.NewServiceService(serviceRepo).Create(db, &dto.ServiceRequest{Name: "Egen", Price: &price})
	require.NoError(t, err)

	seeded, err := services.NewSeedService(employeeRepo, serviceRepo).SeedSampleData(db)
	require.NoError(t, err)
	assert.False(t, seeded)

	var count int64
	require.NoError(t, db.Model(&models.Employee{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUserService_EnsureFirstAdmin(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := services.NewUserService(repositories.NewUserRepository())

	req := &dto.AdminUserRequest{Username: "admin", Password: "supersecret", Role: string(models.RoleAdmin)}

	created, err := svc.EnsureFirstAdmin(db, req)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.EnsureFirstAdmin(db, req)
	require.NoError(t, err)
	assert.False(t, created)

	var users []models.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 1)
	assert.Equal(t, models.RoleAdmin, users[0].Role)
	assert.NotEqual(t, "supersecret", users[0].PasswordHash)
}
