package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"grocer/pkg/domain"
	"grocer/pkg/storage"
	"grocer/pkg/storage/postgres"
	"grocer/pkg/units"

	"github.com/stretchr/testify/require"
)

func countMaterials(t *testing.T, db *sql.DB, name string) int {
	t.Helper()
	row := db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM materials WHERE name = $1`, name)
	var c int
	require.NoError(t, row.Scan(&c))

	return c
}

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// Success: begin from *sql.DB
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	// Should be a *postgres.PgSQL with underlying *sql.Tx
	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	// Error: begin when already in tx
	_, err = inner.Begin(ctx)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	// Cleanup the opened transaction
	require.NoError(t, inner.Rollback())
}

func TestPgSQL_Commit_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)
	ctx := context.Background()

	// Error path: calling Commit on non-tx
	err := pg.Commit()
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotInTx)

	// Success path: commit upserts
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = txStorage.UpsertMaterials(ctx, domain.Material{Name: "Salt", Unit: units.MustParse("g")})
	require.NoError(t, err)

	require.NoError(t, txStorage.Commit())

	// Verify persistence outside tx
	require.Equal(t, 1, countMaterials(t, db, "Salt"))
}

func TestPgSQL_Rollback_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)
	ctx := context.Background()

	// Error path: calling Rollback on non-tx
	err := pg.Rollback()
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotInTx)

	// Success path: rollback should discard upserts
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = txStorage.UpsertMaterials(ctx, domain.Material{Name: "Pepper", Unit: units.MustParse("g")})
	require.NoError(t, err)

	require.NoError(t, txStorage.Rollback())

	// Verify no persistence outside tx
	require.Equal(t, 0, countMaterials(t, db, "Pepper"))
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)
	ctx := context.Background()

	// Success callback: should commit
	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, e := s.UpsertMaterials(ctx, domain.Material{Name: "Sugar", Unit: units.MustParse("g")})

		return e //nolint: wrapcheck
	})
	require.NoError(t, err)
	require.Equal(t, 1, countMaterials(t, db, "Sugar"))

	// Error in callback: should rollback
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, _ = s.UpsertMaterials(ctx, domain.Material{Name: "Cinnamon", Unit: units.MustParse("g")})

		return errors.New("boom")
	})
	require.Error(t, err)
	require.Equal(t, 0, countMaterials(t, db, "Cinnamon"))
}
