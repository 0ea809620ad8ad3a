package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thelineup/draft-engine/internal/models"
)

func TestRoster_SlotAccounting(t *testing.T) {
	pool := []models.Player{
		{ID: "g", Positions: models.ParsePositions("PG")},
		{ID: "c", Positions: models.ParsePositions("C")},
		{ID: "x1", Positions: models.ParsePositions("SG")},
		{ID: "x2", Positions: models.ParsePositions("SF")},
	}
	d, err := NewDraft(Config{
		TeamCount:       2,
		RosterSize:      2,
		StrictPositions: true,
		Positions: map[models.Position]int{
			models.PositionPG: 1,
			models.PositionC:  1,
		},
	}, pool)
	require.NoError(t, err)

	roster := d.Roster(0)
	assert.Equal(t, 2, roster.OpenSlotTotal())
	assert.True(t, roster.NeedsPosition([]models.Position{models.PositionPG}))
	assert.False(t, roster.NeedsPosition([]models.Position{models.PositionSF}))

	require.NoError(t, d.ApplyPick("g"))
	assert.Equal(t, 1, roster.OpenSlotTotal())
	assert.False(t, roster.NeedsPosition([]models.Position{models.PositionPG}))
	assert.True(t, roster.NeedsPosition([]models.Position{models.PositionC}))
	assert.Equal(t, []string{"g"}, roster.PlayerIDs())

	// OpenSlots returns a copy, not the live accounting.
	slots := roster.OpenSlots()
	slots[models.PositionC] = 99
	assert.Equal(t, 1, roster.OpenSlots()[models.PositionC])
}
