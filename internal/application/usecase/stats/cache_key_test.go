package stats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventory-tracker/backend/internal/domain/entity"
)

func TestCacheKey(t *testing.T) {
	items := []entity.Item{soldItem(1, "10", "20", "2024-05-01T10:00:00Z")}

	first, err := CacheKey("snapshot", items)
	require.NoError(t, err)
	second, err := CacheKey("snapshot", items)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "stats:snapshot:"))
	assert.Len(t, strings.TrimPrefix(first, "stats:snapshot:"), 16)
}

func TestCacheKey_ChangesWithInputs(t *testing.T) {
	items := []entity.Item{soldItem(1, "10", "20", "2024-05-01T10:00:00Z")}
	base, err := CacheKey("period", items, "week")
	require.NoError(t, err)

	changed := []entity.Item{soldItem(1, "10", "21", "2024-05-01T10:00:00Z")}
	priceChanged, err := CacheKey("period", changed, "week")
	require.NoError(t, err)

	otherPeriod, err := CacheKey("period", items, "month")
	require.NoError(t, err)

	otherKind, err := CacheKey("snapshot", items, "week")
	require.NoError(t, err)

	assert.NotEqual(t, base, priceChanged)
	assert.NotEqual(t, base, otherPeriod)
	assert.True(t, strings.HasPrefix(otherKind, "stats:snapshot:"))
}

func TestCacheKey_UnencodablePart(t *testing.T) {
	_, err := CacheKey("snapshot", make(chan int))

	assert.Error(t, err)
}
