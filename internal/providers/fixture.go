package providers

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/thelineup/draft-engine/internal/models"
	"github.com/thelineup/draft-engine/pkg/logger"
)

// playerRecord is the on-disk shape of one pool entry. Positions use the
// eligibility string form ("PG-SG") the upstream exports carry.
type playerRecord struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Team      string               `json:"team"`
	Positions string               `json:"positions"`
	ADP       float64              `json:"adp"`
	Seasons   []models.SeasonStats `json:"seasons"`
}

// FixtureProvider loads a player pool from a JSON export. Records are
// filtered to those carrying stats for the requested season.
type FixtureProvider struct {
	path string
	log  *logrus.Entry
}

func NewFixtureProvider(path string) *FixtureProvider {
	return &FixtureProvider{
		path: path,
		log:  logger.WithComponent("fixture_provider"),
	}
}

func (f *FixtureProvider) load() ([]playerRecord, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pool file %s: %w", f.path, err)
	}
	var records []playerRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse pool file %s: %w", f.path, err)
	}
	return records, nil
}

// PlayerPool returns the players that have stats for the season, in file
// order.
func (f *FixtureProvider) PlayerPool(season string) ([]models.Player, error) {
	records, err := f.load()
	if err != nil {
		return nil, err
	}

	players := make([]models.Player, 0, len(records))
	skipped := 0
	for _, rec := range records {
		player := models.Player{
			ID:        rec.ID,
			Name:      rec.Name,
			Team:      rec.Team,
			Positions: models.ParsePositions(rec.Positions),
			Seasons:   rec.Seasons,
			ADP:       rec.ADP,
		}
		if _, ok := player.SeasonStats(season); !ok {
			skipped++
			continue
		}
		players = append(players, player)
	}

	f.log.WithFields(logrus.Fields{
		"path":    f.path,
		"season":  season,
		"players": len(players),
		"skipped": skipped,
	}).Info("Loaded player pool")

	if len(players) == 0 {
		return nil, fmt.Errorf("pool file %s has no players for season %s", f.path, season)
	}
	return players, nil
}

// ADP returns the average-draft-position reference for players that carry
// one.
func (f *FixtureProvider) ADP(season string) (map[string]float64, error) {
	players, err := f.PlayerPool(season)
	if err != nil {
		return nil, err
	}
	adp := make(map[string]float64, len(players))
	for _, p := range players {
		if p.ADP > 0 {
			adp[p.ID] = p.ADP
		}
	}
	return adp, nil
}
