package counter

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestRepository_GetNextValue(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	assert.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO sequence_counters")).
		WithArgs(TypeStaffID).
		WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(int64(7)))

	got, err := NewRepository(db).GetNextValue(context.Background(), TypeStaffID)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
