package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kubyshka/internal/common"
)

func TestFileKV_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)
	defer func() { _ = kv.Close() }()

	_, err = kv.Get(ctx, KeyExpenses)
	assert.ErrorIs(t, err, common.ErrNotFound)

	require.NoError(t, kv.Set(ctx, KeyExpenses, []byte(`[{"id":"1"}]`)))

	got, err := kv.Get(ctx, KeyExpenses)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"1"}]`), got)

	// Overwrite replaces the whole document.
	require.NoError(t, kv.Set(ctx, KeyExpenses, []byte(`[]`)))
	got, err = kv.Get(ctx, KeyExpenses)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)
}

func TestFileKV_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, kv.Set(ctx, KeyActiveTab, []byte(`"analytics"`)))
	_, err = kv.Get(ctx, KeyListPeriod)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestNewFileKV_EmptyDir(t *testing.T) {
	_, err := NewFileKV("")
	assert.Error(t, err)
}
