package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kubyshka/internal/model"
)

func TestSession_ActiveTab(t *testing.T) {
	ctx := context.Background()
	session := NewSession(NewMemoryKV())

	assert.Equal(t, DefaultTab, session.ActiveTab(ctx))

	require.NoError(t, session.SetActiveTab(ctx, "analytics"))
	assert.Equal(t, "analytics", session.ActiveTab(ctx))
}

func TestSession_PeriodsAreStoredIndependently(t *testing.T) {
	ctx := context.Background()
	session := NewSession(NewMemoryKV())

	_, ok := session.ListPeriod(ctx)
	assert.False(t, ok, "no preference saved yet")

	require.NoError(t, session.SetListPeriod(ctx, model.WeekPeriod()))

	got, ok := session.ListPeriod(ctx)
	require.True(t, ok)
	assert.Equal(t, model.WeekPeriod(), got)

	_, ok = session.AnalyticsPeriod(ctx)
	assert.False(t, ok, "the analytics period has its own key")

	require.NoError(t, session.SetAnalyticsPeriod(ctx, model.MonthPeriod(2024, time.January)))
	gotAnalytics, ok := session.AnalyticsPeriod(ctx)
	require.True(t, ok)
	assert.Equal(t, model.MonthPeriod(2024, time.January), gotAnalytics)

	// The list preference is untouched.
	got, ok = session.ListPeriod(ctx)
	require.True(t, ok)
	assert.Equal(t, model.WeekPeriod(), got)
}

func TestSession_CorruptPreferenceFallsBack(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(ctx, KeyListPeriod, []byte(`{"type":"fortnight"}`)))

	session := NewSession(kv)
	_, ok := session.ListPeriod(ctx)
	assert.False(t, ok)
}
