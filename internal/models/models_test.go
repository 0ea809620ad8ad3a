package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogCoversNineCategories(t *testing.T) {
	all := AllCategories()
	require.Len(t, all, 9)

	seen := make(map[Category]bool)
	for _, c := range all {
		assert.True(t, c.IsValid())
		assert.False(t, seen[c], "category %s listed twice", c)
		seen[c] = true
	}
}

func TestCategoryPolarity(t *testing.T) {
	assert.Equal(t, -1.0, CategoryTurnovers.Polarity(), "turnovers are lower-is-better")
	for _, c := range AllCategories() {
		if c == CategoryTurnovers {
			continue
		}
		assert.Equal(t, 1.0, c.Polarity(), "category %s", c)
	}
}

func TestParsePositions(t *testing.T) {
	assert.Equal(t, []Position{PositionPG, PositionSG}, ParsePositions("PG-SG"))
	assert.Equal(t, []Position{PositionC}, ParsePositions("C"))
	assert.Empty(t, ParsePositions(""))
}

func TestPlayerSeasonLookup(t *testing.T) {
	p := Player{
		ID:        "x",
		Positions: ParsePositions("SF-PF"),
		Seasons: []SeasonStats{
			{Season: "2023-24", PerGame: map[Category]float64{CategoryPoints: 18.2}},
			{Season: "2024-25", PerGame: map[Category]float64{CategoryPoints: 21.0}},
		},
	}

	stats, ok := p.SeasonStats("2024-25")
	require.True(t, ok)
	points, ok := stats.Value(CategoryPoints)
	require.True(t, ok)
	assert.InDelta(t, 21.0, points, 1e-9)

	_, ok = p.SeasonStats("2020-21")
	assert.False(t, ok)

	_, ok = stats.Value(CategoryBlocks)
	assert.False(t, ok, "absent stats are missing, not zero")

	assert.True(t, p.HasPosition(PositionPF))
	assert.False(t, p.HasPosition(PositionC))
	assert.Equal(t, PositionSF, p.PrimaryPosition())
}
