package models

import "strings"

// Position represents an on-court position a player is eligible for.
type Position string

const (
	PositionPG Position = "PG"
	PositionSG Position = "SG"
	PositionSF Position = "SF"
	PositionPF Position = "PF"
	PositionC  Position = "C"

	// PositionUtil is a roster slot that accepts any position. It is never
	// carried by a player, only by roster configuration.
	PositionUtil Position = "UTIL"
)

// ParsePositions converts an eligibility string such as "PG-SG" or "C"
// into the position set it encodes.
func ParsePositions(s string) []Position {
	parts := strings.Split(s, "-")
	positions := make([]Position, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		positions = append(positions, Position(p))
	}
	return positions
}

// SeasonStats holds one season of per-game statistics for a player.
// Stats absent from PerGame are treated as missing, not zero.
type SeasonStats struct {
	Season      string               `json:"season"`
	GamesPlayed int                  `json:"games_played"`
	PerGame     map[Category]float64 `json:"per_game"`
}

// Value returns the per-game value for a category and whether it is present.
func (s SeasonStats) Value(c Category) (float64, bool) {
	v, ok := s.PerGame[c]
	return v, ok
}

// Player is an immutable record of one draftable player: identity,
// position eligibility, and per-season per-game statistics ordered oldest
// to newest. ADP is the market average draft position (0 = unranked).
type Player struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Team      string        `json:"team"`
	Positions []Position    `json:"positions"`
	Seasons   []SeasonStats `json:"seasons"`
	ADP       float64       `json:"adp"`
}

// SeasonStats returns the stats for the given season identifier.
func (p Player) SeasonStats(season string) (SeasonStats, bool) {
	for _, s := range p.Seasons {
		if s.Season == season {
			return s, true
		}
	}
	return SeasonStats{}, false
}

// HasPosition reports whether the player is eligible at the position.
func (p Player) HasPosition(pos Position) bool {
	for _, candidate := range p.Positions {
		if candidate == pos {
			return true
		}
	}
	return false
}

// PrimaryPosition returns the first listed position, or UTIL when the
// record carries no eligibility at all.
func (p Player) PrimaryPosition() Position {
	if len(p.Positions) == 0 {
		return PositionUtil
	}
	return p.Positions[0]
}
