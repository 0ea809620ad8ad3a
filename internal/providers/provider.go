package providers

import "github.com/thelineup/draft-engine/internal/models"

// PoolProvider supplies the player pool and ADP reference the draft
// engine consumes. Implementations own all I/O; the engine itself never
// touches a data source.
type PoolProvider interface {
	PlayerPool(season string) ([]models.Player, error)
	ADP(season string) (map[string]float64, error)
}
