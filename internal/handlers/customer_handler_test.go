package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/heizlog/heizlog/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newCustomerApp mounts the customer routes behind a stub auth middleware
// that injects the given user's claims the way the JWT middleware would.
func newCustomerApp(t *testing.T, userID uuid.UUID) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	handler := NewCustomerHandler(services.NewCustomerService(db))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if userID != uuid.Nil {
			c.Locals("user", &jwt.Token{Claims: jwt.MapClaims{"sub": userID.String()}})
		}
		return c.Next()
	})
	app.Get("/api/customers/:id", handler.Get)
	app.Post("/api/customers", handler.Create)

	return app, mock
}

func decodeBody(t *testing.T, r io.Reader) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(r).Decode(&body))
	return body
}

func TestCustomerGetUnauthenticated(t *testing.T) {
	app, _ := newCustomerApp(t, uuid.Nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/customers/"+uuid.New().String(), nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	body := decodeBody(t, resp.Body)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Unauthorized", body["error"])
}

func TestCustomerGetNotFound(t *testing.T) {
	userID := uuid.New()
	app, mock := newCustomerApp(t, userID)

	mock.ExpectQuery(`SELECT \* FROM "customers" WHERE customers\.user_id = \$1 AND customers\.id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/customers/"+uuid.New().String(), nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	body := decodeBody(t, resp.Body)
	assert.Equal(t, "Customer not found", body["error"])
}

func TestCustomerGetInvalidID(t *testing.T) {
	app, _ := newCustomerApp(t, uuid.New())

	resp, err := app.Test(httptest.NewRequest("GET", "/api/customers/not-a-uuid", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCustomerCreateValidationDetails(t *testing.T) {
	app, _ := newCustomerApp(t, uuid.New())

	req := httptest.NewRequest("POST", "/api/customers",
		strings.NewReader(`{"name":"Schmidt","street":"Hauptstraße 1","zipCode":"80331","city":"München","phone":"089 1","heatingType":"COAL"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp.Body)
	assert.Equal(t, "Validation error", body["error"])

	details, ok := body["details"].([]interface{})
	require.True(t, ok)
	require.Len(t, details, 1)
	detail := details[0].(map[string]interface{})
	assert.Equal(t, "heatingType", detail["path"])
}

func TestCustomerCreateSuccessEnvelope(t *testing.T) {
	app, mock := newCustomerApp(t, uuid.New())

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "customers"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	req := httptest.NewRequest("POST", "/api/customers",
		strings.NewReader(`{"name":"Schmidt","street":"Hauptstraße 1","zipCode":"80331","city":"München","phone":"089 1","heatingType":"GAS"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp.Body)
	assert.Equal(t, true, body["success"])

	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Schmidt", data["name"])
	assert.NotEmpty(t, data["id"])
}
