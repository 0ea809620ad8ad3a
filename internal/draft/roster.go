package draft

import (
	"github.com/thelineup/draft-engine/internal/models"
)

// Roster tracks the players drafted by one team along with open-slot
// accounting by position. Rosters are mutated only through
// Draft.ApplyPick.
type Roster struct {
	Team    int
	Players []models.Player

	open     map[models.Position]int
	capacity int
	strict   bool
}

func newRoster(team int, cfg Config) *Roster {
	open := make(map[models.Position]int, len(cfg.Positions))
	for pos, count := range cfg.Positions {
		open[pos] = count
	}
	return &Roster{
		Team:     team,
		Players:  make([]models.Player, 0, cfg.RosterSize),
		open:     open,
		capacity: cfg.RosterSize,
		strict:   cfg.StrictPositions,
	}
}

// Size returns the number of drafted players on the roster.
func (r *Roster) Size() int {
	return len(r.Players)
}

// IsFull reports whether the roster has reached capacity.
func (r *Roster) IsFull() bool {
	return len(r.Players) >= r.capacity
}

// OpenSlots returns a copy of the remaining open slot counts by position.
func (r *Roster) OpenSlots() map[models.Position]int {
	out := make(map[models.Position]int, len(r.open))
	for pos, count := range r.open {
		out[pos] = count
	}
	return out
}

// OpenSlotTotal returns the total number of unfilled position slots.
func (r *Roster) OpenSlotTotal() int {
	total := 0
	for _, count := range r.open {
		total += count
	}
	return total
}

// NeedsPosition reports whether the roster still has an open slot the
// given position set could fill, counting the UTIL slot as universal.
func (r *Roster) NeedsPosition(positions []models.Position) bool {
	_, ok := r.eligibleSlot(positions)
	return ok
}

// PlayerIDs returns the drafted player IDs in draft order.
func (r *Roster) PlayerIDs() []string {
	ids := make([]string, len(r.Players))
	for i, p := range r.Players {
		ids[i] = p.ID
	}
	return ids
}

// eligibleSlot finds the slot a player with the given position set would
// fill: the first of the player's positions with an opening, falling back
// to UTIL. Specific slots are preferred so UTIL stays available.
func (r *Roster) eligibleSlot(positions []models.Position) (models.Position, bool) {
	for _, pos := range positions {
		if r.open[pos] > 0 {
			return pos, true
		}
	}
	if r.open[models.PositionUtil] > 0 {
		return models.PositionUtil, true
	}
	return "", false
}

// add appends the player and consumes a slot. Slot accounting is
// best-effort in non-strict mode; under strict enforcement callers must
// have already validated eligibility, so a missing slot is a bug.
func (r *Roster) add(p models.Player) {
	if slot, ok := r.eligibleSlot(p.Positions); ok {
		r.open[slot]--
	} else if r.strict {
		panic("draft: add called without an eligible open slot")
	}
	r.Players = append(r.Players, p)
}
