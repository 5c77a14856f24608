package dto_test

import (
	"errors"
	"testing"

	"github.com/heizlog/heizlog/internal/dto"
	"github.com/heizlog/heizlog/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var vErr *validation.Error
	require.True(t, errors.As(err, &vErr), "expected *validation.Error, got %v", err)
	paths := make(map[string]string, len(vErr.Fields))
	for _, f := range vErr.Fields {
		paths[f.Path] = f.Message
	}
	return paths
}

func validCustomer() dto.CreateCustomerRequest {
	return dto.CreateCustomerRequest{
		Name:        "Familie Schmidt",
		Street:      "Hauptstraße 12",
		ZipCode:     "80331",
		City:        "München",
		Phone:       "+49 89 1234567",
		HeatingType: "GAS",
	}
}

func TestCreateCustomerValidation(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := validCustomer()
		assert.NoError(t, validation.Struct(&req))
	})

	t.Run("valid with optional fields", func(t *testing.T) {
		req := validCustomer()
		req.Email = "schmidt@example.com"
		req.AdditionalEnergySources = []string{"PHOTOVOLTAIC", "SOLAR_THERMAL"}
		req.EnergyStorageSystems = []string{"BATTERY_STORAGE"}
		req.Notes = "Zugang über Hinterhof"
		assert.NoError(t, validation.Struct(&req))
	})

	t.Run("missing name", func(t *testing.T) {
		req := validCustomer()
		req.Name = ""
		errs := fieldErrors(t, validation.Struct(&req))
		assert.Equal(t, "is required", errs["name"])
	})

	t.Run("zip code too short", func(t *testing.T) {
		req := validCustomer()
		req.ZipCode = "123"
		errs := fieldErrors(t, validation.Struct(&req))
		assert.Equal(t, "must be at least 4 characters", errs["zipCode"])
	})

	t.Run("invalid email", func(t *testing.T) {
		req := validCustomer()
		req.Email = "not-an-email"
		errs := fieldErrors(t, validation.Struct(&req))
		assert.Equal(t, "must be a valid email address", errs["email"])
	})

	t.Run("empty email is allowed", func(t *testing.T) {
		req := validCustomer()
		req.Email = ""
		assert.NoError(t, validation.Struct(&req))
	})

	t.Run("unknown heating type", func(t *testing.T) {
		req := validCustomer()
		req.HeatingType = "COAL"
		errs := fieldErrors(t, validation.Struct(&req))
		assert.Contains(t, errs["heatingType"], "must be one of")
	})

	t.Run("unknown energy source member", func(t *testing.T) {
		req := validCustomer()
		req.AdditionalEnergySources = []string{"PHOTOVOLTAIC", "GEOTHERMAL"}
		err := validation.Struct(&req)
		require.Error(t, err)
		var vErr *validation.Error
		require.True(t, errors.As(err, &vErr))
		require.Len(t, vErr.Fields, 1)
		assert.Contains(t, vErr.Fields[0].Message, "must be one of")
	})

	t.Run("multiple violations reported together", func(t *testing.T) {
		req := dto.CreateCustomerRequest{HeatingType: "GAS"}
		errs := fieldErrors(t, validation.Struct(&req))
		assert.Len(t, errs, 5)
		for _, path := range []string{"name", "street", "zipCode", "city", "phone"} {
			assert.Equal(t, "is required", errs[path])
		}
	})
}

func TestCreateHeaterValidation(t *testing.T) {
	valid := func() dto.CreateHeaterRequest {
		return dto.CreateHeaterRequest{
			CustomerID:          "0a3efa57-8a5f-4f2c-a1dc-5e9a45a1d111",
			Model:               "Vaillant ecoTEC plus",
			MaintenanceInterval: 12,
		}
	}

	t.Run("valid", func(t *testing.T) {
		req := valid()
		assert.NoError(t, validation.Struct(&req))
	})

	t.Run("customer id not a uuid", func(t *testing.T) {
		req := valid()
		req.CustomerID = "42"
		errs := fieldErrors(t, validation.Struct(&req))
		assert.Equal(t, "must be a valid UUID", errs["customerId"])
	})

	t.Run("interval outside the allowed set", func(t *testing.T) {
		req := valid()
		req.MaintenanceInterval = 5
		errs := fieldErrors(t, validation.Struct(&req))
		assert.Equal(t, "must be one of: 1, 3, 6, 12, 24", errs["maintenanceInterval"])
	})

	t.Run("malformed last maintenance date", func(t *testing.T) {
		req := valid()
		bad := "2025-13-01"
		req.LastMaintenance = &bad
		errs := fieldErrors(t, validation.Struct(&req))
		assert.Equal(t, "must be an RFC 3339 datetime", errs["lastMaintenance"])
	})

	t.Run("rfc3339 dates accepted", func(t *testing.T) {
		req := valid()
		installed := "2020-06-01T00:00:00Z"
		last := "2025-01-15T09:30:00+01:00"
		req.InstallationDate = &installed
		req.LastMaintenance = &last
		assert.NoError(t, validation.Struct(&req))
	})
}

func TestCreateMaintenanceValidation(t *testing.T) {
	valid := func() dto.CreateMaintenanceRequest {
		return dto.CreateMaintenanceRequest{
			HeaterID: "0a3efa57-8a5f-4f2c-a1dc-5e9a45a1d111",
			Date:     "2025-08-20T14:00:00Z",
		}
	}

	t.Run("valid", func(t *testing.T) {
		req := valid()
		assert.NoError(t, validation.Struct(&req))
	})

	t.Run("missing date", func(t *testing.T) {
		req := valid()
		req.Date = ""
		errs := fieldErrors(t, validation.Struct(&req))
		assert.Equal(t, "is required", errs["date"])
	})

	t.Run("photo entries must be urls", func(t *testing.T) {
		req := valid()
		req.Photos = []string{"http://storage.local/bucket/a.jpg", "not a url"}
		err := validation.Struct(&req)
		require.Error(t, err)
		var vErr *validation.Error
		require.True(t, errors.As(err, &vErr))
		require.Len(t, vErr.Fields, 1)
		assert.Equal(t, "must be a valid URL", vErr.Fields[0].Message)
	})
}

func TestRegisterValidation(t *testing.T) {
	t.Run("password too short", func(t *testing.T) {
		req := dto.RegisterRequest{Email: "tech@example.com", Password: "short", Name: "Max"}
		errs := fieldErrors(t, validation.Struct(&req))
		assert.Equal(t, "must be at least 8 characters", errs["password"])
	})

	t.Run("valid", func(t *testing.T) {
		req := dto.RegisterRequest{Email: "tech@example.com", Password: "correct horse", Name: "Max"}
		assert.NoError(t, validation.Struct(&req))
	})
}

func TestUpdateRequestsSkipAbsentFields(t *testing.T) {
	assert.NoError(t, validation.Struct(&dto.UpdateCustomerRequest{}))
	assert.NoError(t, validation.Struct(&dto.UpdateHeaterRequest{}))

	badZip := "12"
	errs := fieldErrors(t, validation.Struct(&dto.UpdateCustomerRequest{ZipCode: &badZip}))
	assert.Equal(t, "must be at least 4 characters", errs["zipCode"])
}

// An explicit empty string on a nullable field means "clear it" and must pass
// validation; the services normalize it to NULL.
func TestUpdateRequestsAcceptEmptyStringAsClear(t *testing.T) {
	empty := ""

	assert.NoError(t, validation.Struct(&dto.UpdateCustomerRequest{Email: &empty}))
	assert.NoError(t, validation.Struct(&dto.UpdateHeaterRequest{
		InstallationDate: &empty,
		LastMaintenance:  &empty,
	}))

	// Non-empty values still have to be well-formed.
	badEmail := "not-an-email"
	errs := fieldErrors(t, validation.Struct(&dto.UpdateCustomerRequest{Email: &badEmail}))
	assert.Equal(t, "must be a valid email address or empty", errs["email"])

	badDate := "2025-13-01"
	errs = fieldErrors(t, validation.Struct(&dto.UpdateHeaterRequest{LastMaintenance: &badDate}))
	assert.Equal(t, "must be an RFC 3339 datetime or empty", errs["lastMaintenance"])
}
