package engine

import (
	"fmt"
	"math/rand"

	"github.com/thelineup/draft-engine/internal/draft"
	"github.com/thelineup/draft-engine/internal/models"
)

// Opponent makes automated picks for a non-human team by running the
// suggestion engine with a weight set jittered once at construction.
// Jitter keeps a table of AI teams from converging on identical picks;
// the explicit seed keeps runs reproducible.
type Opponent struct {
	cfg SuggestConfig
	rng *rand.Rand
}

// NewOpponent builds an opponent from a base configuration. Each weight
// is perturbed by a uniform factor within ±jitterFraction. The opponent
// owns its random source; ambient global randomness is never used.
func NewOpponent(base SuggestConfig, jitterFraction float64, seed int64) *Opponent {
	rng := rand.New(rand.NewSource(seed))
	cfg := base
	if jitterFraction > 0 {
		cfg.RawValueWeight = jitter(cfg.RawValueWeight, jitterFraction, rng)
		cfg.ScarcityWeight = jitter(cfg.ScarcityWeight, jitterFraction, rng)
		cfg.NeedWeight = jitter(cfg.NeedWeight, jitterFraction, rng)
		cfg.ADPWeight = jitter(cfg.ADPWeight, jitterFraction, rng)
	}
	cfg.MaxSuggestions = 1
	return &Opponent{cfg: cfg, rng: rng}
}

// Config returns the opponent's jittered weight set.
func (o *Opponent) Config() SuggestConfig {
	return o.cfg
}

// Pick selects the top suggestion for the opponent's roster. The
// tie-break is deterministic (raw value, then pool order). An empty pool
// is an error: there is nothing to pick.
func (o *Opponent) Pick(pool []models.Player, roster *draft.Roster, zscores map[string]ZScoreVector, adp map[string]float64, currentPick int) (models.Player, error) {
	if len(pool) == 0 {
		return models.Player{}, fmt.Errorf("no players remaining to pick")
	}
	cfg := o.cfg
	cfg.CurrentPick = currentPick
	suggestions := Suggest(pool, roster, zscores, adp, cfg)
	return suggestions[0].Player, nil
}

func jitter(weight, fraction float64, rng *rand.Rand) float64 {
	factor := 1 + (rng.Float64()*2-1)*fraction
	return weight * factor
}
