package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thelineup/draft-engine/internal/models"
)

const testSeason = "2024-25"

func cachePool(size int) []models.Player {
	pool := make([]models.Player, size)
	for i := range pool {
		pool[i] = models.Player{
			ID:        fmt.Sprintf("p%02d", i),
			Positions: []models.Position{models.PositionPG},
			Seasons: []models.SeasonStats{
				{Season: testSeason, PerGame: map[models.Category]float64{
					models.CategoryPoints: float64(10 + i),
				}},
			},
		}
	}
	return pool
}

func TestPoolCacheKey_OrderInsensitive(t *testing.T) {
	pool := cachePool(5)
	reversed := make([]models.Player, len(pool))
	for i, p := range pool {
		reversed[len(pool)-1-i] = p
	}

	assert.Equal(t, PoolCacheKey(testSeason, pool), PoolCacheKey(testSeason, reversed))
}

func TestPoolCacheKey_DistinguishesSeasonAndPool(t *testing.T) {
	pool := cachePool(5)

	assert.NotEqual(t, PoolCacheKey(testSeason, pool), PoolCacheKey("2023-24", pool))
	assert.NotEqual(t, PoolCacheKey(testSeason, pool), PoolCacheKey(testSeason, cachePool(6)))
}

func TestZScoreCache_ComputeMemoizes(t *testing.T) {
	cache := NewZScoreCache()
	pool := cachePool(4)

	key := PoolCacheKey(testSeason, pool)
	require.False(t, cache.Exists(key))

	first := cache.ComputeZScores(pool, testSeason)
	require.True(t, cache.Exists(key))

	second := cache.ComputeZScores(pool, testSeason)
	assert.Equal(t, first, second)

	// The memoized entry is returned, not a recomputation.
	cached, ok := cache.Get(key)
	require.True(t, ok)
	assert.Equal(t, first, cached)
}

func TestZScoreCache_Delete(t *testing.T) {
	cache := NewZScoreCache()
	pool := cachePool(3)

	key := PoolCacheKey(testSeason, pool)
	cache.ComputeZScores(pool, testSeason)
	require.True(t, cache.Exists(key))

	cache.Delete(key)
	assert.False(t, cache.Exists(key))
}
