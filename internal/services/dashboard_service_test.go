package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewDashboardService(db)
	userID := uuid.New()

	// The four counts run concurrently, so arrival order is unspecified.
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "customers" WHERE customers\.user_id = \$1`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "heaters" JOIN customers ON customers\.id = heaters\.customer_id WHERE customers\.user_id = \$1$`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(8))
	mock.ExpectQuery(`heaters\.next_maintenance < \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`heaters\.next_maintenance >= \$2 AND heaters\.next_maintenance <= \$3`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	stats, err := svc.Stats(userID)
	require.NoError(t, err)

	assert.EqualValues(t, 5, stats.TotalCustomers)
	assert.EqualValues(t, 8, stats.TotalHeaters)
	assert.EqualValues(t, 2, stats.OverdueMaintenances)
	assert.EqualValues(t, 3, stats.UpcomingMaintenances)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardStatsPropagatesQueryError(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewDashboardService(db)

	mock.MatchExpectationsInOrder(false)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "customers"`).
		WillReturnError(assert.AnError)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "heaters" JOIN customers ON customers\.id = heaters\.customer_id WHERE customers\.user_id = \$1$`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`heaters\.next_maintenance < \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`heaters\.next_maintenance >= \$2 AND heaters\.next_maintenance <= \$3`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	_, err := svc.Stats(uuid.New())
	assert.Error(t, err)
}
