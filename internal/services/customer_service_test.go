package services

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/heizlog/heizlog/internal/dto"
	"github.com/heizlog/heizlog/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerCreate(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCustomerService(db)
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "customers"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	customer, err := svc.Create(userID, &dto.CreateCustomerRequest{
		Name:        "Familie Schmidt",
		Street:      "Hauptstraße 12",
		ZipCode:     "80331",
		City:        "München",
		Phone:       "+49 89 1234567",
		HeatingType: "GAS",
	})
	require.NoError(t, err)

	assert.Equal(t, userID, customer.UserID)
	assert.NotEqual(t, uuid.Nil, customer.ID)
	assert.Equal(t, "Familie Schmidt", customer.Name)
	// Empty optional strings are stored as NULL, not "".
	assert.Nil(t, customer.Email)
	assert.Nil(t, customer.Notes)
	// Enum sets default to empty arrays so they serialize as [].
	assert.NotNil(t, customer.AdditionalEnergySources)
	assert.Len(t, customer.AdditionalEnergySources, 0)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerCreateValidationFails(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCustomerService(db)

	_, err := svc.Create(uuid.New(), &dto.CreateCustomerRequest{
		Name:        "Familie Schmidt",
		HeatingType: "GAS",
	})

	var vErr *validation.Error
	require.True(t, errors.As(err, &vErr))
	// No SQL may run for an invalid request.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerListSorted(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCustomerService(db)
	userID := uuid.New()
	firstID, secondID := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "customers" WHERE customers\.user_id = \$1 ORDER BY zip_code DESC`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "zip_code"}).
			AddRow(firstID, userID, "Weber", "90402").
			AddRow(secondID, userID, "Schmidt", "80331"))
	mock.ExpectQuery(`SELECT \* FROM "heaters" WHERE "heaters"\."customer_id" IN \(\$1,\$2\) ORDER BY next_maintenance ASC`).
		WithArgs(firstID, secondID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id"}))

	customers, err := svc.List(userID, "", "zipCode", "desc")
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "Weber", customers[0].Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerListUnknownSortFallsBackToName(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCustomerService(db)
	userID := uuid.New()

	// An unwhitelisted sort column must never reach the SQL.
	mock.ExpectQuery(`SELECT \* FROM "customers" WHERE customers\.user_id = \$1 ORDER BY name ASC`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}))

	_, err := svc.List(userID, "", "created_at; DROP TABLE customers", "asc")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerGetNotOwned(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCustomerService(db)

	// A customer owned by another user scans to zero rows.
	mock.ExpectQuery(`SELECT \* FROM "customers" WHERE customers\.user_id = \$1 AND customers\.id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.Get(uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrCustomerNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerDeleteCascades(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCustomerService(db)
	userID, customerID := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "customers" WHERE customers\.user_id = \$1 AND customers\.id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(customerID, userID))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "maintenances" WHERE heater_id IN \(SELECT .* FROM "heaters" WHERE customer_id = \$1\)`).
		WithArgs(customerID).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM "heaters" WHERE customer_id = \$1`).
		WithArgs(customerID).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "customers" WHERE "customers"\."id" = \$1`).
		WithArgs(customerID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, svc.Delete(userID, customerID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerUpdateClearsEmailWithEmptyString(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCustomerService(db)
	userID, customerID := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "customers" WHERE customers\.user_id = \$1 AND customers\.id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "email"}).
			AddRow(customerID, userID, "old@example.com"))

	// An empty string in the patch stores NULL.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "customers" SET "email"=\$1,"updated_at"=\$2 WHERE "id" = \$3`).
		WithArgs(nil, sqlmock.AnyArg(), customerID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery(`SELECT \* FROM "customers" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "email"}).
			AddRow(customerID, userID, nil))

	empty := ""
	customer, err := svc.Update(userID, customerID, &dto.UpdateCustomerRequest{Email: &empty})
	require.NoError(t, err)
	assert.Nil(t, customer.Email)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerDeleteNotOwned(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCustomerService(db)

	mock.ExpectQuery(`SELECT \* FROM "customers" WHERE customers\.user_id = \$1 AND customers\.id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := svc.Delete(uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrCustomerNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
