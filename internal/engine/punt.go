package engine

import (
	"fmt"
	"math"

	"github.com/thelineup/draft-engine/internal/draft"
	"github.com/thelineup/draft-engine/internal/models"
)

// PuntConfig tunes punt-strategy detection. The defaults are deliberately
// conservative: a category is flagged only on sustained, roster-wide
// weakness, never from one bad pick.
type PuntConfig struct {
	// ZScoreThreshold is the (negative) roster-average z below which a
	// category becomes a punt candidate.
	ZScoreThreshold float64
	// PlayerThreshold is the per-player z bound used for the consensus
	// check.
	PlayerThreshold float64
	// ConsensusFraction is the share of drafted players that must sit
	// below PlayerThreshold for the weakness to count as intentional.
	ConsensusFraction float64
	// MinRosterSize is the number of picks required before any signal is
	// emitted. Values below 2 are treated as 2.
	MinRosterSize int
}

// DefaultPuntConfig returns the detection thresholds used by the
// suggestion engine.
func DefaultPuntConfig() PuntConfig {
	return PuntConfig{
		ZScoreThreshold:   -0.5,
		PlayerThreshold:   -0.25,
		ConsensusFraction: 0.6,
		MinRosterSize:     3,
	}
}

// PuntSignal reports that a roster appears to be intentionally
// sacrificing a category. Confidence is in (0, 1], scaling with how far
// the roster sits below threshold and with how much evidence the roster
// provides.
type PuntSignal struct {
	Category   models.Category `json:"category"`
	Confidence float64         `json:"confidence"`
	RosterAvg  float64         `json:"roster_avg"`
	BelowCount int             `json:"below_count"`
	Evidence   string          `json:"evidence"`
}

// DetectPunts inspects a roster's aggregate z-scores and returns a signal
// per punted category. Rosters with fewer than MinRosterSize picks yield
// no signals at all: insufficient evidence is the absence of a signal,
// not a low-confidence one.
func DetectPunts(roster *draft.Roster, zscores map[string]ZScoreVector, cfg PuntConfig) map[models.Category]PuntSignal {
	signals := make(map[models.Category]PuntSignal)
	if roster == nil {
		return signals
	}

	minRoster := cfg.MinRosterSize
	if minRoster < 2 {
		minRoster = 2
	}
	size := roster.Size()
	if size < minRoster {
		return signals
	}
	if cfg.ZScoreThreshold >= 0 {
		return signals
	}

	for _, category := range models.AllCategories() {
		sum := 0.0
		below := 0
		scored := 0
		for _, p := range roster.Players {
			vec, ok := zscores[p.ID]
			if !ok {
				continue
			}
			scored++
			z := vec[category]
			sum += z
			if z < cfg.PlayerThreshold {
				below++
			}
		}
		if scored < minRoster {
			continue
		}

		avg := sum / float64(scored)
		if avg >= cfg.ZScoreThreshold {
			continue
		}
		if float64(below) < cfg.ConsensusFraction*float64(scored) {
			continue // one outlier dragging the average down, not a punt
		}

		// Depth below threshold, normalized by the threshold magnitude.
		depth := (cfg.ZScoreThreshold - avg) / math.Abs(cfg.ZScoreThreshold)
		sizeFactor := float64(scored) / float64(scored+2)
		confidence := (1 - math.Exp(-depth)) * sizeFactor
		if confidence > 1 {
			confidence = 1
		}

		signals[category] = PuntSignal{
			Category:   category,
			Confidence: confidence,
			RosterAvg:  avg,
			BelowCount: below,
			Evidence: fmt.Sprintf("roster avg %.2f below %.2f with %d of %d players under %.2f",
				avg, cfg.ZScoreThreshold, below, scored, cfg.PlayerThreshold),
		}
	}

	return signals
}
