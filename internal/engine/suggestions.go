package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/thelineup/draft-engine/internal/draft"
	"github.com/thelineup/draft-engine/internal/models"
	"github.com/thelineup/draft-engine/pkg/logger"
)

// Factor names carried on suggestion reasons.
const (
	FactorRawValue = "raw_value"
	FactorScarcity = "scarcity"
	FactorNeed     = "need"
	FactorADPValue = "adp_value"
)

// SuggestConfig holds the weights of the composite pick score. Every
// field is explicit so a typo cannot silently disable a factor.
type SuggestConfig struct {
	RawValueWeight float64
	ScarcityWeight float64
	NeedWeight     float64
	ADPWeight      float64

	// PuntThreshold is the punt-signal confidence above which a category
	// is excluded from the raw-value and need terms.
	PuntThreshold float64
	// Punt tunes the punt detection feeding that exclusion.
	Punt PuntConfig

	// CurrentPick is the one-based overall pick about to be made, used to
	// price value against ADP. Zero neutralizes the ADP factor.
	CurrentPick int
	// ADPClamp caps the pick delta credited by the ADP factor.
	ADPClamp float64

	// MaxSuggestions truncates the returned ranking. Zero means all.
	MaxSuggestions int
}

// DefaultSuggestConfig returns the weight set used by the draft
// assistant.
func DefaultSuggestConfig() SuggestConfig {
	return SuggestConfig{
		RawValueWeight: 1.0,
		ScarcityWeight: 2.0,
		NeedWeight:     1.5,
		ADPWeight:      0.05,
		PuntThreshold:  0.5,
		Punt:           DefaultPuntConfig(),
		ADPClamp:       24,
		MaxSuggestions: 5,
	}
}

// Validate rejects weight sets that cannot produce a meaningful ranking.
func (c SuggestConfig) Validate() error {
	if c.RawValueWeight < 0 || c.ScarcityWeight < 0 || c.NeedWeight < 0 || c.ADPWeight < 0 {
		return fmt.Errorf("suggestion weights must be non-negative")
	}
	if c.RawValueWeight == 0 && c.ScarcityWeight == 0 && c.NeedWeight == 0 && c.ADPWeight == 0 {
		return fmt.Errorf("at least one suggestion weight must be positive")
	}
	if c.PuntThreshold < 0 || c.PuntThreshold > 1 {
		return fmt.Errorf("punt threshold must be within [0, 1], got %v", c.PuntThreshold)
	}
	if c.MaxSuggestions < 0 {
		return fmt.Errorf("max suggestions must be non-negative, got %d", c.MaxSuggestions)
	}
	return nil
}

// Reason is one decomposed factor contribution on a suggestion, so a
// recommendation is explainable rather than a bare score.
type Reason struct {
	Factor string  `json:"factor"`
	Weight float64 `json:"weight"`
	Detail string  `json:"detail"`
}

// Suggestion is a ranked pick recommendation. Suggestions are ephemeral:
// recomputed per request and never part of draft state.
type Suggestion struct {
	Player   models.Player `json:"player"`
	Score    float64       `json:"score"`
	RawValue float64       `json:"raw_value"`
	Reasons  []Reason      `json:"reasons"`
}

// Suggest ranks the remaining pool for the given roster, best pick first.
// The composite score is a weighted sum of raw category value, position
// scarcity, team need and value against ADP, with punted categories
// filtered out of the value and need terms. Ordering is deterministic:
// composite score, then raw value, then stable input order. An empty pool
// returns an empty slice.
func Suggest(pool []models.Player, roster *draft.Roster, zscores map[string]ZScoreVector, adp map[string]float64, cfg SuggestConfig) []Suggestion {
	if len(pool) == 0 {
		return []Suggestion{}
	}

	punted := activePunts(roster, zscores, cfg)
	deficits := categoryDeficits(roster, zscores, punted)
	openSlots, scarcityCounts := positionScarcity(pool, roster)

	suggestions := make([]Suggestion, 0, len(pool))
	for _, player := range pool {
		vec := zscores[player.ID]
		s := Suggestion{
			Player:   player,
			RawValue: vec.Total(),
			Reasons:  make([]Reason, 0, 4),
		}

		// Raw category value, punt-filtered.
		raw := cfg.RawValueWeight * vec.TotalExcluding(punted)
		s.Score += raw
		s.Reasons = append(s.Reasons, Reason{
			Factor: FactorRawValue,
			Weight: raw,
			Detail: rawValueDetail(vec, punted),
		})

		if contribution, detail, ok := scarcityContribution(player, openSlots, scarcityCounts, cfg); ok {
			s.Score += contribution
			s.Reasons = append(s.Reasons, Reason{Factor: FactorScarcity, Weight: contribution, Detail: detail})
		}

		if contribution, detail, ok := needContribution(vec, deficits, cfg); ok {
			s.Score += contribution
			s.Reasons = append(s.Reasons, Reason{Factor: FactorNeed, Weight: contribution, Detail: detail})
		}

		if contribution, detail, ok := adpContribution(player, adp, cfg); ok {
			s.Score += contribution
			s.Reasons = append(s.Reasons, Reason{Factor: FactorADPValue, Weight: contribution, Detail: detail})
		}

		suggestions = append(suggestions, s)
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].Score != suggestions[j].Score {
			return suggestions[i].Score > suggestions[j].Score
		}
		return suggestions[i].RawValue > suggestions[j].RawValue
	})

	if cfg.MaxSuggestions > 0 && len(suggestions) > cfg.MaxSuggestions {
		suggestions = suggestions[:cfg.MaxSuggestions]
	}

	logger.WithComponent("suggestion_engine").WithFields(logrus.Fields{
		"pool_size":   len(pool),
		"punted":      len(punted),
		"suggestions": len(suggestions),
	}).Debug("Suggestions computed")

	return suggestions
}

// activePunts returns categories whose punt-signal confidence meets the
// configured threshold for this roster.
func activePunts(roster *draft.Roster, zscores map[string]ZScoreVector, cfg SuggestConfig) map[models.Category]bool {
	punted := make(map[models.Category]bool)
	for category, signal := range DetectPunts(roster, zscores, cfg.Punt) {
		if signal.Confidence >= cfg.PuntThreshold {
			punted[category] = true
		}
	}
	return punted
}

// categoryDeficits measures how far the roster's average z in each
// non-punted category sits below the replacement baseline (0 by z-score
// construction). An empty roster has no measurable deficits.
func categoryDeficits(roster *draft.Roster, zscores map[string]ZScoreVector, punted map[models.Category]bool) map[models.Category]float64 {
	deficits := make(map[models.Category]float64)
	if roster == nil || roster.Size() == 0 {
		return deficits
	}
	for _, category := range models.AllCategories() {
		if punted[category] {
			continue
		}
		sum := 0.0
		for _, p := range roster.Players {
			sum += zscores[p.ID][category]
		}
		avg := sum / float64(roster.Size())
		if avg < 0 {
			deficits[category] = -avg
		}
	}
	return deficits
}

// positionScarcity counts remaining pool players eligible at each
// position the roster still needs. A full roster (no open slots)
// neutralizes the factor entirely.
func positionScarcity(pool []models.Player, roster *draft.Roster) (map[models.Position]int, map[models.Position]int) {
	if roster == nil || roster.OpenSlotTotal() == 0 {
		return nil, nil
	}
	open := roster.OpenSlots()
	counts := make(map[models.Position]int)
	for pos, slots := range open {
		if slots <= 0 || pos == models.PositionUtil {
			continue
		}
		for _, p := range pool {
			if p.HasPosition(pos) {
				counts[pos]++
			}
		}
	}
	return open, counts
}

func scarcityContribution(player models.Player, open map[models.Position]int, counts map[models.Position]int, cfg SuggestConfig) (float64, string, bool) {
	if cfg.ScarcityWeight == 0 || open == nil {
		return 0, "", false
	}
	best := 0
	var bestPos models.Position
	for _, pos := range player.Positions {
		if open[pos] <= 0 {
			continue
		}
		count := counts[pos]
		if count < 1 {
			count = 1
		}
		if best == 0 || count < best {
			best = count
			bestPos = pos
		}
	}
	if best == 0 {
		return 0, "", false
	}
	contribution := cfg.ScarcityWeight / float64(best)
	detail := fmt.Sprintf("%d %s remaining for an open slot", best, bestPos)
	return contribution, detail, true
}

func needContribution(vec ZScoreVector, deficits map[models.Category]float64, cfg SuggestConfig) (float64, string, bool) {
	if cfg.NeedWeight == 0 || len(deficits) == 0 {
		return 0, "", false
	}
	score := 0.0
	var addressed []string
	for _, category := range models.AllCategories() {
		deficit, ok := deficits[category]
		if !ok {
			continue
		}
		z := vec[category]
		if z <= 0 {
			continue
		}
		score += deficit * z
		addressed = append(addressed, category.Short())
	}
	if score == 0 {
		return 0, "", false
	}
	contribution := cfg.NeedWeight * score
	detail := "addresses team weakness: " + strings.Join(addressed, ", ")
	return contribution, detail, true
}

func adpContribution(player models.Player, adp map[string]float64, cfg SuggestConfig) (float64, string, bool) {
	if cfg.ADPWeight == 0 || cfg.CurrentPick <= 0 {
		return 0, "", false
	}
	rank, ok := adp[player.ID]
	if !ok || rank <= 0 {
		return 0, "", false
	}
	delta := rank - float64(cfg.CurrentPick)
	if cfg.ADPClamp > 0 {
		if delta > cfg.ADPClamp {
			delta = cfg.ADPClamp
		} else if delta < -cfg.ADPClamp {
			delta = -cfg.ADPClamp
		}
	}
	contribution := cfg.ADPWeight * delta
	var detail string
	if delta >= 0 {
		detail = fmt.Sprintf("typically drafted %.0f picks later (ADP %.0f)", delta, rank)
	} else {
		detail = fmt.Sprintf("reaching %.0f picks early (ADP %.0f)", -delta, rank)
	}
	return contribution, detail, true
}

func rawValueDetail(vec ZScoreVector, punted map[models.Category]bool) string {
	if len(punted) == 0 {
		return fmt.Sprintf("total z-score %.2f", vec.Total())
	}
	var skipped []string
	for _, category := range models.AllCategories() {
		if punted[category] {
			skipped = append(skipped, category.Short())
		}
	}
	return fmt.Sprintf("z-score %.2f excluding punted %s", vec.TotalExcluding(punted), strings.Join(skipped, ", "))
}
