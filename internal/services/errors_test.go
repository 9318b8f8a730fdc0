package services

import (
	"errors"
	"net/http"
	"testing"

	"autoshop_backend/internal/models"
	"autoshop_backend/internal/repositories"
	"autoshop_backend/internal/testutil"
	"autoshop_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Вставка в обход проверки сервиса: конфликт ловит уникальный индекс
func TestStoreError_DuplicateKeyIsConflict(t *testing.T) {
	db := testutil.NewTestDB(t)

	t.Run("Employee email", func(t *testing.T) {
		repo := repositories.NewEmployeeRepository()
		require.NoError(t, repo.Create(db, &models.Employee{Name: "Lars", Position: "Mekaniker", Email: "lars@example.dk", Active: true}))

		err := repo.Create(db, &models.Employee{Name: "Lars II", Position: "Lærling", Email: "lars@example.dk", Active: true})
		require.ErrorIs(t, err, gorm.ErrDuplicatedKey)

		mapped := storeError(err, employeeResource, emailTakenMessage("lars@example.dk"))
		appErr, ok := apperrors.AsAppError(mapped)
		require.True(t, ok)
		assert.Equal(t, http.StatusConflict, appErr.HTTPCode)
		assert.Equal(t, apperrors.CodeConflict, appErr.Code)
		assert.Equal(t, emailTakenMessage("lars@example.dk"), appErr.Message)
		assert.ErrorIs(t, mapped, gorm.ErrDuplicatedKey)
	})

	t.Run("Service name", func(t *testing.T) {
		repo := repositories.NewServiceRepository()
		require.NoError(t, repo.Create(db, &models.Service{Name: "Syn", Price: 100, Active: true}))

		err := repo.Create(db, &models.Service{Name: "Syn", Price: 200, Active: false})
		require.ErrorIs(t, err, gorm.ErrDuplicatedKey)

		appErr, ok := apperrors.AsAppError(storeError(err, serviceResource, nameTakenMessage("Syn")))
		require.True(t, ok)
		assert.Equal(t, http.StatusConflict, appErr.HTTPCode)
	})
}

func TestStoreError_OtherFailuresAreInternal(t *testing.T) {
	assert.NoError(t, storeError(nil, employeeResource, "unused"))

	appErr, ok := apperrors.AsAppError(storeError(errors.New("disk I/O error"), employeeResource, "unused"))
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode)
	assert.Equal(t, apperrors.GenericInternalMessage, appErr.Message)
}
