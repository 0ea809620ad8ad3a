package providers

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thelineup/draft-engine/internal/models"
)

func fixturePath() string {
	return filepath.Join("testdata", "pool.json")
}

func TestFixtureProvider_LoadsSeasonPool(t *testing.T) {
	provider := NewFixtureProvider(fixturePath())

	pool, err := provider.PlayerPool("2024-25")
	require.NoError(t, err)
	require.Len(t, pool, 2, "only players with stats for the season load")

	guard := pool[0]
	assert.Equal(t, "nba-1575", guard.ID)
	assert.Equal(t, []models.Position{models.PositionPG, models.PositionSG}, guard.Positions)

	stats, ok := guard.SeasonStats("2024-25")
	require.True(t, ok)
	points, ok := stats.Value(models.CategoryPoints)
	require.True(t, ok)
	assert.InDelta(t, 26.4, points, 1e-9)

	// Multi-season history is preserved in order.
	require.Len(t, guard.Seasons, 2)
	assert.Equal(t, "2023-24", guard.Seasons[0].Season)
}

func TestFixtureProvider_FiltersSeasonsWithoutStats(t *testing.T) {
	provider := NewFixtureProvider(fixturePath())

	pool, err := provider.PlayerPool("2023-24")
	require.NoError(t, err)
	require.Len(t, pool, 2)
	for _, p := range pool {
		assert.NotEqual(t, "nba-2044", p.ID, "no 2023-24 stats for this player")
	}
}

func TestFixtureProvider_ADPOmitsUnranked(t *testing.T) {
	provider := NewFixtureProvider(fixturePath())

	adp, err := provider.ADP("2023-24")
	require.NoError(t, err)

	assert.Equal(t, 4.0, adp["nba-1575"])
	_, ranked := adp["nba-3310"]
	assert.False(t, ranked, "zero ADP means unranked")
}

func TestFixtureProvider_MissingFile(t *testing.T) {
	_, err := NewFixtureProvider(filepath.Join("testdata", "absent.json")).PlayerPool("2024-25")
	assert.Error(t, err)
}

func TestFixtureProvider_NoPlayersForSeason(t *testing.T) {
	_, err := NewFixtureProvider(fixturePath()).PlayerPool("2019-20")
	assert.Error(t, err)
}
