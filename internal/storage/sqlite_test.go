package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kubyshka/internal/common"
	"kubyshka/internal/model"
)

func createTestSQLiteKV(t *testing.T) *SQLiteKV {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	kv, err := NewSQLiteKV(dbPath)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, kv.Migrate(ctx))

	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func TestSQLiteKV_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := createTestSQLiteKV(t)

	_, err := kv.Get(ctx, KeyExpenses)
	assert.ErrorIs(t, err, common.ErrNotFound)

	require.NoError(t, kv.Set(ctx, KeyExpenses, []byte(`[{"id":"1"}]`)))
	got, err := kv.Get(ctx, KeyExpenses)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"1"}]`), got)

	require.NoError(t, kv.Set(ctx, KeyExpenses, []byte(`[]`)))
	got, err = kv.Get(ctx, KeyExpenses)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)
}

func TestSQLiteKV_MigrateIsIdempotent(t *testing.T) {
	kv := createTestSQLiteKV(t)
	require.NoError(t, kv.Migrate(context.Background()))
}

func TestSQLiteKV_BacksTheStore(t *testing.T) {
	ctx := context.Background()
	kv := createTestSQLiteKV(t)
	store := NewStore(kv)

	day := time.Date(2024, 9, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, store.Add(ctx, model.Expense{
		ID: "1", Amount: 10, Category: "Продукты", Date: day, CreatedAt: day,
	}))

	expenses := store.List(ctx)
	require.Len(t, expenses, 1)
	assert.Equal(t, "Продукты", expenses[0].Category)
	assert.True(t, expenses[0].Date.Equal(day))
}
