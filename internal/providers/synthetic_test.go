package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thelineup/draft-engine/internal/models"
)

func TestSyntheticProvider_Reproducible(t *testing.T) {
	first, err := NewSyntheticProvider(50, 7).PlayerPool("2024-25")
	require.NoError(t, err)
	second, err := NewSyntheticProvider(50, 7).PlayerPool("2024-25")
	require.NoError(t, err)

	assert.Equal(t, first, second, "same size and seed must generate the same pool")
}

func TestSyntheticProvider_PoolShape(t *testing.T) {
	pool, err := NewSyntheticProvider(30, 1).PlayerPool("2024-25")
	require.NoError(t, err)
	require.Len(t, pool, 30)

	for i, p := range pool {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Positions)
		assert.Equal(t, float64(i+1), p.ADP, "ADP follows generation order")

		stats, ok := p.SeasonStats("2024-25")
		require.True(t, ok)
		for _, category := range models.AllCategories() {
			_, present := stats.Value(category)
			assert.True(t, present, "synthetic players carry every category")
		}
	}
}

func TestSyntheticProvider_ADPMatchesPool(t *testing.T) {
	provider := NewSyntheticProvider(20, 3)
	pool, err := provider.PlayerPool("2024-25")
	require.NoError(t, err)

	adp, err := provider.ADP("2024-25")
	require.NoError(t, err)
	require.Len(t, adp, len(pool))
	for _, p := range pool {
		assert.Equal(t, p.ADP, adp[p.ID])
	}
}

func TestSyntheticProvider_RejectsBadSize(t *testing.T) {
	_, err := NewSyntheticProvider(0, 1).PlayerPool("2024-25")
	assert.Error(t, err)
}
