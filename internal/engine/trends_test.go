package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thelineup/draft-engine/internal/models"
)

func seasonRecord(season string, points float64) models.SeasonStats {
	return models.SeasonStats{
		Season:  season,
		PerGame: map[models.Category]float64{models.CategoryPoints: points},
	}
}

func TestClassifyTrends_InsufficientHistory(t *testing.T) {
	history := []models.SeasonStats{seasonRecord("2024-25", 20)}

	labels := ClassifyTrends(history, DefaultTrendConfig())

	for _, category := range models.AllCategories() {
		assert.Equal(t, TrendInsufficientData, labels[category])
	}
}

func TestClassifyTrends_EmptyHistory(t *testing.T) {
	labels := ClassifyTrends(nil, DefaultTrendConfig())
	assert.Equal(t, TrendInsufficientData, labels[models.CategoryPoints])
}

func TestClassifyTrends_Increasing(t *testing.T) {
	history := []models.SeasonStats{
		seasonRecord("2022-23", 14),
		seasonRecord("2023-24", 17),
		seasonRecord("2024-25", 20),
	}

	labels := ClassifyTrends(history, DefaultTrendConfig())
	assert.Equal(t, TrendIncreasing, labels[models.CategoryPoints])
}

func TestClassifyTrends_Decreasing(t *testing.T) {
	history := []models.SeasonStats{
		seasonRecord("2022-23", 22),
		seasonRecord("2023-24", 19),
		seasonRecord("2024-25", 16),
	}

	labels := ClassifyTrends(history, DefaultTrendConfig())
	assert.Equal(t, TrendDecreasing, labels[models.CategoryPoints])
}

func TestClassifyTrends_Stable(t *testing.T) {
	history := []models.SeasonStats{
		seasonRecord("2022-23", 20.0),
		seasonRecord("2023-24", 20.3),
		seasonRecord("2024-25", 19.9),
	}

	labels := ClassifyTrends(history, DefaultTrendConfig())
	assert.Equal(t, TrendStable, labels[models.CategoryPoints])
}

func TestClassifyTrends_Volatile(t *testing.T) {
	history := []models.SeasonStats{
		seasonRecord("2021-22", 8),
		seasonRecord("2022-23", 25),
		seasonRecord("2023-24", 9),
		seasonRecord("2024-25", 24),
	}

	labels := ClassifyTrends(history, DefaultTrendConfig())
	assert.Equal(t, TrendVolatile, labels[models.CategoryPoints])
}

func TestClassifyTrends_SeasonGapShortensSeries(t *testing.T) {
	// Points exists in only one season: the assists series still
	// classifies while points falls back to the sentinel.
	history := []models.SeasonStats{
		{Season: "2022-23", PerGame: map[models.Category]float64{
			models.CategoryAssists: 4,
		}},
		{Season: "2023-24", PerGame: map[models.Category]float64{
			models.CategoryAssists: 5,
			models.CategoryPoints:  18,
		}},
		{Season: "2024-25", PerGame: map[models.Category]float64{
			models.CategoryAssists: 6,
		}},
	}

	labels := ClassifyTrends(history, DefaultTrendConfig())
	assert.Equal(t, TrendIncreasing, labels[models.CategoryAssists])
	assert.Equal(t, TrendInsufficientData, labels[models.CategoryPoints])
}

func TestClassifyTrends_TunableThresholds(t *testing.T) {
	history := []models.SeasonStats{
		seasonRecord("2022-23", 20),
		seasonRecord("2023-24", 22),
		seasonRecord("2024-25", 24),
	}

	// Slope of 2 per season on a mean of 22 is a trend with the default
	// 5% tolerance but stable under a 10% band.
	strict := DefaultTrendConfig()
	labels := ClassifyTrends(history, strict)
	assert.Equal(t, TrendIncreasing, labels[models.CategoryPoints])

	loose := DefaultTrendConfig()
	loose.SlopeTolerance = 0.10
	labels = ClassifyTrends(history, loose)
	assert.Equal(t, TrendStable, labels[models.CategoryPoints])
}
