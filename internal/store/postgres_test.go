package store

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	sqlxdb := sqlx.NewDb(db, "sqlmock")
	return sqlxdb, mock, func() {
		db.Close()
	}
}

func TestPostgresKVGetItem(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	kv := NewPostgresKV(db)

	rows := sqlmock.NewRows([]string{"item_value"}).AddRow(`[{"id":"1"}]`)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT item_value FROM kv_entries WHERE item_key = $1")).
		WithArgs("users").
		WillReturnRows(rows)

	value, found, err := kv.GetItem(context.Background(), "users")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"1"}]`, value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresKVGetItemMissing(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	kv := NewPostgresKV(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT item_value FROM kv_entries WHERE item_key = $1")).
		WithArgs("grades").
		WillReturnRows(sqlmock.NewRows([]string{"item_value"}))

	_, found, err := kv.GetItem(context.Background(), "grades")
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresKVSetItem(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	kv := NewPostgresKV(db)

	mock.ExpectExec("INSERT INTO kv_entries").
		WithArgs("users", "[]").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, kv.SetItem(context.Background(), "users", "[]"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresKVRemoveItem(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	kv := NewPostgresKV(db)

	mock.ExpectExec("DELETE FROM kv_entries").
		WithArgs("currentUser").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, kv.RemoveItem(context.Background(), "currentUser"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
