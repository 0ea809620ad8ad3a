package engine

import (
	"fmt"
	"strings"

	"github.com/thelineup/draft-engine/internal/draft"
	"github.com/thelineup/draft-engine/internal/models"
)

const testSeason = "2024-25"

// testPlayer builds a one-season player fixture. Categories absent from
// stats are missing, not zero.
func testPlayer(id, positions string, stats map[models.Category]float64) models.Player {
	return models.Player{
		ID:        id,
		Name:      "Player " + id,
		Positions: models.ParsePositions(positions),
		Seasons: []models.SeasonStats{
			{Season: testSeason, GamesPlayed: 70, PerGame: stats},
		},
	}
}

// uniformStats fills every scored category with the same value.
func uniformStats(value float64) map[models.Category]float64 {
	stats := make(map[models.Category]float64, len(models.Categories))
	for _, c := range models.AllCategories() {
		stats[c] = value
	}
	return stats
}

// testRoster builds a roster holding the given players, bypassing draft
// validation so engine tests can shape rosters directly.
func testRoster(players ...models.Player) *draft.Roster {
	pool := make([]models.Player, 0, len(players))
	pool = append(pool, players...)
	// Pad the pool so a 2-team draft of len(players) rounds validates.
	for i := len(players); i < 2*len(players); i++ {
		pool = append(pool, testPlayer(fmt.Sprintf("pad-%d", i), "C", uniformStats(1)))
	}
	rosterSize := len(players)
	if rosterSize == 0 {
		rosterSize = 1
		pool = append(pool, testPlayer("pad-a", "C", uniformStats(1)), testPlayer("pad-b", "C", uniformStats(1)))
	}
	d, err := draft.NewDraft(draft.Config{
		TeamCount:  2,
		RosterSize: rosterSize,
		Season:     testSeason,
	}, pool)
	if err != nil {
		panic(err)
	}
	for _, p := range players {
		// Feed padding players to team 1 until team 0 is on the clock.
		for d.CurrentTeam() != 0 {
			for _, candidate := range d.RemainingPool() {
				if strings.HasPrefix(candidate.ID, "pad") {
					if err := d.ApplyPick(candidate.ID); err != nil {
						panic(err)
					}
					break
				}
			}
		}
		if err := d.ApplyPick(p.ID); err != nil {
			panic(err)
		}
	}
	return d.Roster(0)
}
