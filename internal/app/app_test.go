package app_test

import (
	"fmt"
	"net/http"
	"testing"

	"autoshop_backend/internal/app"
	"autoshop_backend/internal/config"
	"autoshop_backend/internal/models"
	"autoshop_backend/internal/services/dto"
	"autoshop_backend/internal/testutil"
	"autoshop_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *testutil.TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewTestDB(t)
	cfg := config.Default()
	cfg.Server.Env = "test"

	router := app.SetupRouter(cfg, db, app.NewServiceContainer())
	return testutil.NewTestServer(t, db, router)
}

func employeeBody(name, email string) map[string]interface{} {
	return map[string]interface{}{
		"name":     name,
		"position": "Mekaniker",
		"email":    email,
		"phone":    "+45 54 12 63 11",
	}
}

func TestEmployees_CRUD(t *testing.T) {
	ts := newTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/employees", employeeBody("Lars Nielsen", "lars@bilensven.dk"))
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created dto.EmployeeResponse
	testutil.DecodeJSON(t, body, &created)
	assert.True(t, created.Active)
	assert.NotEmpty(t, res.Header.Get("X-Request-ID"))

	path := fmt.Sprintf("/api/employees/%d", created.ID)

	res, body = ts.SendRequest(t, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"email":"lars@bilensven.dk"`)

	update := employeeBody("Lars Nielsen", "lars@bilensven.dk")
	update["position"] = "Hovedmekaniker"
	res, body = ts.SendRequest(t, http.MethodPut, path, update)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"position":"Hovedmekaniker"`)

	res, _ = ts.SendRequest(t, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/employees", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `[]`, body)

	// строка осталась
	var stored models.Employee
	require.NoError(t, ts.DB.First(&stored, created.ID).Error)
	assert.False(t, stored.Active)
}

func TestEmployees_Errors(t *testing.T) {
	ts := newTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/employees", employeeBody("Lars", "lars@bilensven.dk"))
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	t.Run("duplicate email", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/employees", employeeBody("Lars II", "lars@bilensven.dk"))
		assert.Equal(t, http.StatusConflict, res.StatusCode)

		var envelope apperrors.ErrorResponse
		testutil.DecodeJSON(t, body, &envelope)
		assert.Equal(t, http.StatusConflict, envelope.Status)
		assert.Equal(t, "Business Logic Error", envelope.Error)
		assert.Equal(t, "/api/employees", envelope.Path)
	})

	t.Run("validation errors are aggregated", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/employees", map[string]interface{}{
			"name":     "",
			"position": "Mekaniker",
			"email":    "not-an-email",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)

		var envelope apperrors.ErrorResponse
		testutil.DecodeJSON(t, body, &envelope)
		assert.Equal(t, "Validation Error", envelope.Error)
		assert.Equal(t, "name: is required, email: must be a valid email address", envelope.Message)
	})

	t.Run("malformed body", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/employees", `{"name": `)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)

		var envelope apperrors.ErrorResponse
		testutil.DecodeJSON(t, body, &envelope)
		assert.Equal(t, "Malformed JSON request body", envelope.Message)
	})

	t.Run("wrong field type", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/employees", `{"name": 42}`)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)

		var envelope apperrors.ErrorResponse
		testutil.DecodeJSON(t, body, &envelope)
		assert.Equal(t, "name: must be a string", envelope.Message)
	})

	t.Run("missing employee", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/employees/999", nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)

		var envelope apperrors.ErrorResponse
		testutil.DecodeJSON(t, body, &envelope)
		assert.Equal(t, "Employee with id 999 not found", envelope.Message)
		assert.Equal(t, "Not Found", envelope.Error)
	})

	t.Run("non numeric id", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodGet, "/api/employees/abc", nil)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("delete missing employee", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodDelete, "/api/employees/999", nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})
}

func TestServices_Endpoints(t *testing.T) {
	ts := newTestServer(t)

	for name, price := range map[string]float64{"Billig": 50, "Mellem": 150, "Dyr": 500} {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/services", map[string]interface{}{
			"name":  name,
			"price": price,
		})
		require.Equal(t, http.StatusCreated, res.StatusCode, body)
	}

	t.Run("sorted by price", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/services?sortBy=price", nil)
		require.Equal(t, http.StatusOK, res.StatusCode)

		var list []dto.ServiceResponse
		testutil.DecodeJSON(t, body, &list)
		require.Len(t, list, 3)
		assert.Equal(t, "Billig", list[0].Name)
		assert.Equal(t, "Dyr", list[2].Name)
	})

	t.Run("sorted by name by default", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/services", nil)
		require.Equal(t, http.StatusOK, res.StatusCode)

		var list []dto.ServiceResponse
		testutil.DecodeJSON(t, body, &list)
		require.Len(t, list, 3)
		assert.Equal(t, "Billig", list[0].Name)
		assert.Equal(t, "Mellem", list[2].Name)
	})

	t.Run("price range", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/services/price-range?min=100&max=200", nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		var list []dto.ServiceResponse
		testutil.DecodeJSON(t, body, &list)
		require.Len(t, list, 1)
		assert.Equal(t, 150.0, list[0].Price)
	})

	t.Run("price range without bounds", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodGet, "/api/services/price-range?min=100", nil)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("price range with non numeric bound", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/services/price-range?min=abc&max=200", nil)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)

		var envelope apperrors.ErrorResponse
		testutil.DecodeJSON(t, body, &envelope)
		assert.Equal(t, "min: must be a number", envelope.Message)
		assert.NotContains(t, envelope.Message, "strconv")
	})

	t.Run("price range with NaN bound", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/services/price-range?min=NaN&max=200", nil)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)

		var envelope apperrors.ErrorResponse
		testutil.DecodeJSON(t, body, &envelope)
		assert.Equal(t, "Validation Error", envelope.Error)
	})

	t.Run("price range inverted", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodGet, "/api/services/price-range?min=300&max=100", nil)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("stats", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/services/stats/total-revenue", nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		assert.JSONEq(t, `700`, body)

		res, body = ts.SendRequest(t, http.MethodGet, "/api/services/stats/average-price", nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		var average float64
		testutil.DecodeJSON(t, body, &average)
		assert.InDelta(t, 233.3333, average, 0.001)
	})

	t.Run("price with three decimals", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/services", map[string]interface{}{
			"name":  "Præcis",
			"price": 10.999,
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, body, "decimal places")
	})

	t.Run("missing price", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/services", map[string]interface{}{"name": "Gratis"})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, body, "price: is required")
	})
}

func TestContact_Flow(t *testing.T) {
	ts := newTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/contact", map[string]interface{}{
		"name":    "Kunde",
		"email":   "kunde@example.dk",
		"message": "Hej, kan I skifte olie på tirsdag?",
		"read":    true,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var submitted dto.ContactSubmitResponse
	testutil.DecodeJSON(t, body, &submitted)
	assert.True(t, submitted.Success)
	assert.NotZero(t, submitted.ID)
	assert.NotEmpty(t, submitted.Message)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/contact/messages/unread", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var unread []dto.ContactMessageResponse
	testutil.DecodeJSON(t, body, &unread)
	require.Len(t, unread, 1)
	assert.False(t, unread[0].Read)

	readPath := fmt.Sprintf("/api/contact/messages/%d/read", submitted.ID)
	res, _ = ts.SendRequest(t, http.MethodPatch, readPath, nil)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/contact/messages/unread", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `[]`, body)

	res, _ = ts.SendRequest(t, http.MethodPatch, "/api/contact/messages/999/read", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodDelete, fmt.Sprintf("/api/contact/messages/%d", submitted.ID), nil)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/contact/messages", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `[]`, body)
}

func TestContact_ShortMessage(t *testing.T) {
	ts := newTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/contact", map[string]interface{}{
		"name":    "Kunde",
		"email":   "kunde@example.dk",
		"message": "Hej",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "message: must be at least 10 characters long")
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/nothing-here", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	var envelope apperrors.ErrorResponse
	testutil.DecodeJSON(t, body, &envelope)
	assert.Equal(t, http.StatusNotFound, envelope.Status)
	assert.Equal(t, "/api/nothing-here", envelope.Path)
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"status":"UP","database":"UP"}`, body)
}

func TestBootstrap_Idempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	cfg := config.Default()
	cfg.FirstAdmin.Username = "admin"
	cfg.FirstAdmin.Password = "supersecret"
	container := app.NewServiceContainer()

	require.NoError(t, app.Bootstrap(db, cfg, container))
	require.NoError(t, app.Bootstrap(db, cfg, container))

	var employees, catalog, users int64
	require.NoError(t, db.Model(&models.Employee{}).Count(&employees).Error)
	require.NoError(t, db.Model(&models.Service{}).Count(&catalog).Error)
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.Equal(t, int64(3), employees)
	assert.Equal(t, int64(10), catalog)
	assert.Equal(t, int64(1), users)
}

func TestBootstrap_Disabled(t *testing.T) {
	db := testutil.NewTestDB(t)
	cfg := config.Default()
	cfg.Seed.InitializeOnStartup = false

	require.NoError(t, app.Bootstrap(db, cfg, app.NewServiceContainer()))

	var employees int64
	require.NoError(t, db.Model(&models.Employee{}).Count(&employees).Error)
	assert.Zero(t, employees)
}

func TestBootstrap_InvalidAdmin(t *testing.T) {
	db := testutil.NewTestDB(t)
	cfg := config.Default()
	cfg.Seed.InitializeOnStartup = false
	cfg.FirstAdmin.Username = "admin"
	cfg.FirstAdmin.Password = "short"

	assert.Error(t, app.Bootstrap(db, cfg, app.NewServiceContainer()))
}
