package draft

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/thelineup/draft-engine/internal/models"
	"github.com/thelineup/draft-engine/pkg/logger"
)

// Status is the lifecycle state of a draft session.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusComplete   Status = "complete"
)

// Config describes one mock draft: league shape, roster construction and
// the season being drafted for.
type Config struct {
	TeamCount  int
	RosterSize int
	Season     string

	// Positions maps roster slots to slot counts. When StrictPositions is
	// set the counts must sum to RosterSize and picks are rejected when
	// the drafted team has no eligible opening for the player.
	Positions       map[models.Position]int
	StrictPositions bool
}

// DefaultPositions returns the standard 13-slot roster layout used when a
// config does not specify its own.
func DefaultPositions() map[models.Position]int {
	return map[models.Position]int{
		models.PositionPG:   2,
		models.PositionSG:   2,
		models.PositionSF:   2,
		models.PositionPF:   2,
		models.PositionC:    2,
		models.PositionUtil: 3,
	}
}

// Draft is the state machine for one mock draft session. Pick order is
// serpentine: ascending team index on even rounds, descending on odd.
// A Draft instance is not safe for concurrent mutation; the host must
// serialize ApplyPick calls per session.
type Draft struct {
	ID     string
	cfg    Config
	status Status

	pickIndex int
	pool      map[string]models.Player
	poolOrder []string
	drafted   map[string]int
	rosters   []*Roster

	log *logrus.Entry
}

// NewDraft validates the configuration, seeds the remaining pool and
// returns a draft in progress at pick index 0.
func NewDraft(cfg Config, pool []models.Player) (*Draft, error) {
	if cfg.TeamCount < 2 {
		return nil, fmt.Errorf("%w: team count must be at least 2, got %d", ErrInvalidConfiguration, cfg.TeamCount)
	}
	if cfg.RosterSize < 1 {
		return nil, fmt.Errorf("%w: roster size must be positive, got %d", ErrInvalidConfiguration, cfg.RosterSize)
	}
	if cfg.Positions == nil {
		if cfg.StrictPositions {
			return nil, fmt.Errorf("%w: strict position enforcement requires a slot layout", ErrInvalidConfiguration)
		}
		cfg.Positions = DefaultPositions()
	}
	if cfg.StrictPositions {
		slots := 0
		for _, count := range cfg.Positions {
			if count < 0 {
				return nil, fmt.Errorf("%w: negative slot count", ErrInvalidConfiguration)
			}
			slots += count
		}
		if slots != cfg.RosterSize {
			return nil, fmt.Errorf("%w: position slots (%d) must sum to roster size (%d)", ErrInvalidConfiguration, slots, cfg.RosterSize)
		}
	}
	totalPicks := cfg.TeamCount * cfg.RosterSize
	if len(pool) < totalPicks {
		return nil, fmt.Errorf("%w: pool of %d players cannot fill %d picks", ErrInvalidConfiguration, len(pool), totalPicks)
	}

	d := &Draft{
		ID:        uuid.New().String(),
		cfg:       cfg,
		status:    StatusInProgress,
		pool:      make(map[string]models.Player, len(pool)),
		poolOrder: make([]string, 0, len(pool)),
		drafted:   make(map[string]int),
		rosters:   make([]*Roster, cfg.TeamCount),
	}
	for _, p := range pool {
		if _, dup := d.pool[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate player id %q in pool", ErrInvalidConfiguration, p.ID)
		}
		d.pool[p.ID] = p
		d.poolOrder = append(d.poolOrder, p.ID)
	}
	for team := 0; team < cfg.TeamCount; team++ {
		d.rosters[team] = newRoster(team, cfg)
	}

	d.log = logger.WithDraftContext(d.ID, cfg.Season)
	d.log.WithFields(logrus.Fields{
		"teams":       cfg.TeamCount,
		"roster_size": cfg.RosterSize,
		"pool_size":   len(pool),
		"strict":      cfg.StrictPositions,
	}).Info("Draft session started")

	return d, nil
}

// Config returns the draft configuration.
func (d *Draft) Config() Config {
	return d.cfg
}

// Status returns the lifecycle state of the draft.
func (d *Draft) Status() Status {
	return d.status
}

// IsComplete reports whether every roster has been filled.
func (d *Draft) IsComplete() bool {
	return d.status == StatusComplete
}

// PickIndex returns the zero-based overall pick about to be made.
func (d *Draft) PickIndex() int {
	return d.pickIndex
}

// Round returns the zero-based round of the current pick.
func (d *Draft) Round() int {
	return d.pickIndex / d.cfg.TeamCount
}

// PickInRound returns the zero-based position of the current pick within
// its round.
func (d *Draft) PickInRound() int {
	return d.pickIndex % d.cfg.TeamCount
}

// CurrentTeam returns the team index on the clock under the serpentine
// rule. The result is undefined once the draft is complete.
func (d *Draft) CurrentTeam() int {
	round := d.Round()
	pos := d.PickInRound()
	if round%2 == 0 {
		return pos
	}
	return d.cfg.TeamCount - 1 - pos
}

// Roster returns the roster for a team index.
func (d *Draft) Roster(team int) *Roster {
	if team < 0 || team >= len(d.rosters) {
		return nil
	}
	return d.rosters[team]
}

// Rosters returns all team rosters indexed by team.
func (d *Draft) Rosters() []*Roster {
	out := make([]*Roster, len(d.rosters))
	copy(out, d.rosters)
	return out
}

// DraftedBy returns the team that drafted the player, or -1.
func (d *Draft) DraftedBy(playerID string) int {
	if team, ok := d.drafted[playerID]; ok {
		return team
	}
	return -1
}

// RemainingPool returns the undrafted players in their original pool
// order. The result never contains a player present on any roster.
func (d *Draft) RemainingPool() []models.Player {
	out := make([]models.Player, 0, len(d.pool))
	for _, id := range d.poolOrder {
		if p, ok := d.pool[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

// ApplyPick drafts the player for the team currently on the clock. A
// rejected pick returns ErrInvalidPick and leaves the draft untouched.
func (d *Draft) ApplyPick(playerID string) error {
	if d.status == StatusComplete {
		return fmt.Errorf("%w: draft is complete", ErrInvalidPick)
	}
	if team, taken := d.drafted[playerID]; taken {
		return fmt.Errorf("%w: player %s already drafted by team %d", ErrInvalidPick, playerID, team)
	}
	player, ok := d.pool[playerID]
	if !ok {
		return fmt.Errorf("%w: player %s is not in the draft pool", ErrInvalidPick, playerID)
	}

	team := d.CurrentTeam()
	roster := d.rosters[team]
	if roster.IsFull() {
		return fmt.Errorf("%w: team %d roster is full", ErrInvalidPick, team)
	}
	if d.cfg.StrictPositions {
		if _, eligible := roster.eligibleSlot(player.Positions); !eligible {
			return fmt.Errorf("%w: team %d has no open slot for %v", ErrInvalidPick, team, player.Positions)
		}
	}

	// All checks passed; mutate.
	delete(d.pool, playerID)
	d.drafted[playerID] = team
	roster.add(player)

	round := d.Round()
	d.pickIndex++
	if d.pickIndex >= d.cfg.TeamCount*d.cfg.RosterSize {
		d.status = StatusComplete
	}

	d.log.WithFields(logrus.Fields{
		"pick":   d.pickIndex,
		"round":  round + 1,
		"team":   team,
		"player": player.Name,
	}).Debug("Pick applied")
	if d.status == StatusComplete {
		d.log.WithField("total_picks", d.pickIndex).Info("Draft complete")
	}

	return nil
}
