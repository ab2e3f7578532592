package dbx

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:dbx_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS kv (k TEXT PRIMARY KEY, v TEXT);`)
	require.NoError(t, err)
	return db
}

// put and get are written against DBTX, the way repositories are.
func put(ctx context.Context, db DBTX, k, v string) error {
	_, err := db.ExecContext(ctx, `INSERT INTO kv(k, v) VALUES (?, ?) ON CONFLICT(k) DO UPDATE SET v = excluded.v`, k, v)
	return err
}

func get(ctx context.Context, db DBTX, k string) (string, error) {
	var v string
	err := db.QueryRowContext(ctx, `SELECT v FROM kv WHERE k = ?`, k).Scan(&v)
	return v, err
}

func TestDBTX_SatisfiedByDB(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	require.NoError(t, put(ctx, db, "a", "1"))
	v, err := get(ctx, db, "a")
	require.NoError(t, err)
	require.Equal(t, "1", v)
}

func TestDBTX_SatisfiedByTx(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	require.NoError(t, put(ctx, tx, "b", "2"))
	v, err := get(ctx, tx, "b")
	require.NoError(t, err)
	require.Equal(t, "2", v)

	require.NoError(t, tx.Rollback())

	_, err = get(ctx, db, "b")
	require.ErrorIs(t, err, sql.ErrNoRows)
}
