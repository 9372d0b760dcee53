package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories_FixedCatalog(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 19)
	assert.Equal(t, "Дети", cats[0].Name)
	assert.Equal(t, "Другое", cats[18].Name)

	// The returned slice is a copy; mutating it must not touch the catalog.
	cats[0].Name = "mutated"
	assert.Equal(t, "Дети", Categories()[0].Name)
}

func TestCategoryByName(t *testing.T) {
	cat, ok := CategoryByName("Продукты")
	require.True(t, ok)
	assert.Equal(t, "#FF9800", cat.Color)
	assert.Equal(t, "🛒", cat.Icon)

	orphan, ok := CategoryByName("Несуществующая")
	assert.False(t, ok)
	assert.Equal(t, "Несуществующая", orphan.Name)
	assert.Equal(t, FallbackColor, orphan.Color)
	assert.Equal(t, FallbackIcon, orphan.Icon)
}
