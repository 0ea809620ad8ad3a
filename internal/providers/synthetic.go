package providers

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/thelineup/draft-engine/internal/models"
	"github.com/thelineup/draft-engine/pkg/logger"
)

// statProfile is the league-wide per-game distribution a synthetic stat
// is drawn from.
type statProfile struct {
	mean, std, min float64
}

var statProfiles = map[models.Category]statProfile{
	models.CategoryPoints:    {mean: 13.5, std: 6.0, min: 2},
	models.CategoryRebounds:  {mean: 5.0, std: 2.5, min: 0.5},
	models.CategoryAssists:   {mean: 3.0, std: 2.2, min: 0.2},
	models.CategorySteals:    {mean: 0.9, std: 0.4, min: 0.1},
	models.CategoryBlocks:    {mean: 0.6, std: 0.5, min: 0},
	models.CategoryThreePM:   {mean: 1.5, std: 1.0, min: 0},
	models.CategoryFGPct:     {mean: 0.46, std: 0.05, min: 0.35},
	models.CategoryFTPct:     {mean: 0.77, std: 0.08, min: 0.5},
	models.CategoryTurnovers: {mean: 1.8, std: 0.8, min: 0.3},
}

var syntheticPositions = []string{"PG", "SG", "SF", "PF", "C", "PG-SG", "SG-SF", "SF-PF", "PF-C"}

// SyntheticProvider generates a seeded random player pool. It exists so
// the draft simulator can run without a stats export on hand, and so
// tests can build large reproducible pools.
type SyntheticProvider struct {
	size int
	seed int64
	log  *logrus.Entry
}

func NewSyntheticProvider(size int, seed int64) *SyntheticProvider {
	return &SyntheticProvider{
		size: size,
		seed: seed,
		log:  logger.WithComponent("synthetic_provider"),
	}
}

// PlayerPool generates the pool for a season. The same size, seed and
// season always produce the same pool, ordered best to worst by the
// latent talent factor so ADP ranks line up with expected value.
func (s *SyntheticProvider) PlayerPool(season string) ([]models.Player, error) {
	if s.size < 1 {
		return nil, fmt.Errorf("synthetic pool size must be positive, got %d", s.size)
	}
	rng := rand.New(rand.NewSource(s.seed))

	players := make([]models.Player, s.size)
	for i := range players {
		// Earlier players draw from a higher latent talent band.
		talent := 1.5 * (1 - float64(i)/float64(s.size))
		perGame := make(map[models.Category]float64, len(statProfiles))
		for _, category := range models.AllCategories() {
			profile := statProfiles[category]
			value := profile.mean + profile.std*(0.6*talent+0.8*rng.NormFloat64())
			if category == models.CategoryTurnovers {
				// Heavy-usage players also cough the ball up more.
				value = profile.mean + profile.std*(0.3*talent+0.8*rng.NormFloat64())
			}
			if value < profile.min {
				value = profile.min
			}
			perGame[category] = value
		}

		players[i] = models.Player{
			ID:        fmt.Sprintf("syn-%04d", i+1),
			Name:      fmt.Sprintf("Player %d", i+1),
			Team:      fmt.Sprintf("T%02d", i%30+1),
			Positions: models.ParsePositions(syntheticPositions[i%len(syntheticPositions)]),
			ADP:       float64(i + 1),
			Seasons: []models.SeasonStats{
				{Season: season, GamesPlayed: 60 + rng.Intn(22), PerGame: perGame},
			},
		}
	}

	s.log.WithFields(logrus.Fields{
		"season": season,
		"size":   s.size,
		"seed":   s.seed,
	}).Info("Generated synthetic player pool")

	return players, nil
}

// ADP returns the generated pool's draft-position reference.
func (s *SyntheticProvider) ADP(season string) (map[string]float64, error) {
	players, err := s.PlayerPool(season)
	if err != nil {
		return nil, err
	}
	adp := make(map[string]float64, len(players))
	for _, p := range players {
		adp[p.ID] = p.ADP
	}
	return adp, nil
}
