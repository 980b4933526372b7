package counter_test

import (
	"context"
	"testing"

	"go-waterbook/internal/shared/counter"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGormMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	assert.NoError(t, err)
	return gdb, mock
}

func TestCounterRepo_GetNextValue(t *testing.T) {
	gdb, mock := newGormMock(t)
	repo := counter.NewRepository(gdb)

	mock.ExpectQuery("INSERT INTO counters").
		WithArgs("salary_payment").
		WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(int64(7)))

	v, err := repo.GetNextValue(context.Background(), "salary_payment")
	assert.NoError(t, err)
	assert.EqualValues(t, 7, v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCounterRepo_WithTx_RunsOnGivenHandle(t *testing.T) {
	gdb, mock := newGormMock(t)
	txDB, txMock := newGormMock(t)

	repo := counter.NewRepository(gdb)

	// Hanya handle yang dioper ke WithTx yang boleh kena query
	txMock.ExpectQuery("INSERT INTO counters").
		WithArgs("salary_payment").
		WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(int64(1)))

	v, err := repo.WithTx(txDB).GetNextValue(context.Background(), "salary_payment")
	assert.NoError(t, err)
	assert.EqualValues(t, 1, v)
	assert.NoError(t, txMock.ExpectationsWereMet())
	assert.NoError(t, mock.ExpectationsWereMet())
}
