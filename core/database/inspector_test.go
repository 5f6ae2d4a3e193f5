package database

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestTableColumns_SQLite(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	require.NoError(t, db.Exec("CREATE TABLE runs (id TEXT PRIMARY KEY, Found INTEGER, started_at DATETIME)").Error)

	cols, err := TableColumns(db, "runs")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"id":         "text",
		"found":      "integer",
		"started_at": "datetime",
	}, cols)

	cols, err = TableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestTableColumns_MySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectQuery("SELECT column_name AS name, column_type AS type FROM information_schema.columns").
		WithArgs("runs").
		WillReturnRows(sqlmock.NewRows([]string{"name", "type"}).
			AddRow("ID", "VARCHAR(36)").
			AddRow("found", "bigint"))

	cols, err := TableColumns(db, "runs")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"id": "varchar(36)", "found": "bigint"}, cols)

	mock.ExpectQuery("information_schema").WillReturnError(errors.New("access denied"))
	_, err = TableColumns(db, "runs")
	assert.ErrorContains(t, err, "access denied")
	assert.NoError(t, mock.ExpectationsWereMet())
}
