package metadata

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "meta.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key        TEXT PRIMARY KEY,
  value      TEXT NOT NULL,
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`)
	require.NoError(t, err)
	return db
}

func TestSetAndGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "token", "abc"))

	v, ok, err := r.Get(ctx, "token")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "abc", v)
}

func TestGet_Absent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, ok, err := r.Get(context.Background(), "token")
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, v)
}

func TestSet_Upserts(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "token", "old"))
	require.NoError(t, r.Set(ctx, "token", "new"))

	v, _, err := r.Get(ctx, "token")
	require.NoError(t, err)
	require.Equal(t, "new", v)

	all, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestDeleteListClear(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "token", "t"))
	require.NoError(t, r.Set(ctx, "email", "jake@jake.jake"))

	require.NoError(t, r.Delete(ctx, "token"))
	all, err := r.List(ctx)
	require.NoError(t, err)
	require.Equal(t, map[string]string{"email": "jake@jake.jake"}, all)

	require.NoError(t, r.Delete(ctx, "missing"))

	require.NoError(t, r.Clear(ctx))
	all, err = r.List(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestErrorsAreWrapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	boom := errors.New("disk I/O error")
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT value FROM metadata`).WithArgs("token").WillReturnError(boom)
	_, _, err = r.Get(ctx, "token")
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "metadata[token]")

	mock.ExpectExec(`INSERT INTO metadata`).WithArgs("token", "v").WillReturnError(boom)
	require.ErrorIs(t, r.Set(ctx, "token", "v"), boom)

	mock.ExpectExec(`DELETE FROM metadata WHERE key`).WithArgs("token").WillReturnError(boom)
	require.ErrorIs(t, r.Delete(ctx, "token"), boom)

	mock.ExpectExec(`DELETE FROM metadata`).WillReturnError(boom)
	require.ErrorIs(t, r.Clear(ctx), boom)

	mock.ExpectQuery(`SELECT key, value FROM metadata`).WillReturnError(boom)
	_, err = r.List(ctx)
	require.ErrorIs(t, err, boom)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_ScanError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rows := sqlmock.NewRows([]string{"key"}).AddRow("token")
	mock.ExpectQuery(`SELECT key, value FROM metadata`).WillReturnRows(rows)

	_, err = NewSQLiteRepository(db).List(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "scan")
}
