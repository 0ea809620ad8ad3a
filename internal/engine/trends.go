package engine

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/thelineup/draft-engine/internal/models"
)

// TrendLabel classifies a player's multi-season trajectory in a category.
type TrendLabel string

const (
	TrendIncreasing       TrendLabel = "increasing"
	TrendDecreasing       TrendLabel = "decreasing"
	TrendStable           TrendLabel = "stable"
	TrendVolatile         TrendLabel = "volatile"
	TrendInsufficientData TrendLabel = "insufficient_data"
)

// TrendConfig exposes the classification thresholds. They are tunable
// configuration, never hidden constants.
type TrendConfig struct {
	// SlopeTolerance is the fraction of the multi-season mean that the
	// per-season slope must exceed to count as a directional trend.
	SlopeTolerance float64
	// VolatilityThreshold is the coefficient-of-variation bound above
	// which a series is labeled volatile regardless of slope.
	VolatilityThreshold float64
	// MinSeasons is the number of seasons required before classifying.
	// Values below 2 are treated as 2.
	MinSeasons int
}

// DefaultTrendConfig returns the thresholds used by the draft assistant.
func DefaultTrendConfig() TrendConfig {
	return TrendConfig{
		SlopeTolerance:      0.05,
		VolatilityThreshold: 0.30,
		MinSeasons:          2,
	}
}

// ClassifyTrends derives a trend label per category from an ordered
// (oldest first) season history. Seasons missing a stat shorten that
// category's series rather than contributing zeros; a series shorter than
// MinSeasons yields the insufficient-data sentinel, not an error.
func ClassifyTrends(history []models.SeasonStats, cfg TrendConfig) map[models.Category]TrendLabel {
	minSeasons := cfg.MinSeasons
	if minSeasons < 2 {
		minSeasons = 2
	}

	labels := make(map[models.Category]TrendLabel, len(models.Categories))
	for _, category := range models.AllCategories() {
		values := make([]float64, 0, len(history))
		for _, season := range history {
			if v, ok := season.Value(category); ok {
				values = append(values, v)
			}
		}
		labels[category] = classifySeries(values, minSeasons, cfg)
	}
	return labels
}

func classifySeries(values []float64, minSeasons int, cfg TrendConfig) TrendLabel {
	if len(values) < minSeasons {
		return TrendInsufficientData
	}

	xs := make([]float64, len(values))
	for i := range xs {
		xs[i] = float64(i)
	}
	_, slope := stat.LinearRegression(xs, values, nil, false)

	mean := stat.Mean(values, nil)
	std := stat.PopStdDev(values, nil)

	cv := 0.0
	if mean != 0 {
		cv = std / math.Abs(mean)
	}
	if cv > cfg.VolatilityThreshold {
		return TrendVolatile
	}

	tolerance := cfg.SlopeTolerance * math.Abs(mean)
	switch {
	case slope > tolerance:
		return TrendIncreasing
	case slope < -tolerance:
		return TrendDecreasing
	default:
		return TrendStable
	}
}
