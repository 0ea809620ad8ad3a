package engine

import (
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/thelineup/draft-engine/internal/models"
	"github.com/thelineup/draft-engine/pkg/logger"
)

// ZScoreVector holds one player's standardized value per scored category,
// computed relative to a specific pool and season. Polarity-inverted
// categories (turnovers) are negated before standardization, so a higher
// z is always better.
type ZScoreVector map[models.Category]float64

// Total returns the sum of z-scores across all categories.
func (z ZScoreVector) Total() float64 {
	total := 0.0
	for _, c := range models.AllCategories() {
		total += z[c]
	}
	return total
}

// TotalExcluding returns the sum of z-scores with the given categories
// left out. Used by the suggestion engine to filter punted categories.
func (z ZScoreVector) TotalExcluding(excluded map[models.Category]bool) float64 {
	total := 0.0
	for _, c := range models.AllCategories() {
		if excluded[c] {
			continue
		}
		total += z[c]
	}
	return total
}

// ComputeZScores standardizes the season's per-game stats across the pool
// and returns a vector per player ID. Population moments are used. A
// zero-variance category resolves to z=0 for every player, and a player
// missing a stat (or the whole season) gets the neutral 0 for it rather
// than being dropped from the pool. The function is pure: identical input
// always yields identical output.
func ComputeZScores(players []models.Player, season string) map[string]ZScoreVector {
	log := logger.WithComponent("category_analyzer")

	vectors := make(map[string]ZScoreVector, len(players))
	for _, p := range players {
		vec := make(ZScoreVector, len(models.Categories))
		for _, c := range models.AllCategories() {
			vec[c] = 0
		}
		vectors[p.ID] = vec
	}

	for _, category := range models.AllCategories() {
		polarity := category.Polarity()

		// Collect polarity-adjusted values from players that carry the stat.
		values := make([]float64, 0, len(players))
		present := make([]bool, len(players))
		adjusted := make([]float64, len(players))
		for i, p := range players {
			seasonStats, ok := p.SeasonStats(season)
			if !ok {
				continue
			}
			raw, ok := seasonStats.Value(category)
			if !ok {
				continue
			}
			present[i] = true
			adjusted[i] = polarity * raw
			values = append(values, adjusted[i])
		}

		if len(values) == 0 {
			continue // every player stays at the neutral 0
		}

		mean := stat.Mean(values, nil)
		std := stat.PopStdDev(values, nil)
		if std == 0 {
			continue // degenerate category, neutral across the pool
		}

		for i, p := range players {
			if present[i] {
				vectors[p.ID][category] = (adjusted[i] - mean) / std
			}
		}
	}

	log.WithFields(logrus.Fields{
		"pool_size": len(players),
		"season":    season,
	}).Debug("Computed category z-scores")

	return vectors
}
