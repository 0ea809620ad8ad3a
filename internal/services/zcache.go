package services

import (
	"fmt"
	"hash/crc32"
	"sort"
	"strings"
	"sync"

	"github.com/thelineup/draft-engine/internal/engine"
	"github.com/thelineup/draft-engine/internal/models"
)

// ZScoreCache memoizes computed z-score tables by (pool, season) key.
// The analyzer itself stays pure; callers that recompute for the same
// pool every pick go through this layer instead. Safe for concurrent use
// across draft sessions.
type ZScoreCache struct {
	mu      sync.RWMutex
	entries map[string]map[string]engine.ZScoreVector
}

func NewZScoreCache() *ZScoreCache {
	return &ZScoreCache{
		entries: make(map[string]map[string]engine.ZScoreVector),
	}
}

func (c *ZScoreCache) Get(key string) (map[string]engine.ZScoreVector, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	vectors, ok := c.entries[key]
	return vectors, ok
}

func (c *ZScoreCache) Set(key string, vectors map[string]engine.ZScoreVector) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = vectors
}

func (c *ZScoreCache) Exists(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[key]
	return ok
}

func (c *ZScoreCache) Delete(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.entries, key)
	}
}

// ComputeZScores returns the memoized table for the pool and season,
// computing and storing it on first use.
func (c *ZScoreCache) ComputeZScores(players []models.Player, season string) map[string]engine.ZScoreVector {
	key := PoolCacheKey(season, players)
	if vectors, ok := c.Get(key); ok {
		return vectors
	}
	vectors := engine.ComputeZScores(players, season)
	c.Set(key, vectors)
	return vectors
}

// PoolCacheKey fingerprints a player pool for a season. The fingerprint
// is order-insensitive so the same pool always maps to the same entry.
func PoolCacheKey(season string, players []models.Player) string {
	ids := make([]string, len(players))
	for i, p := range players {
		ids[i] = p.ID
	}
	sort.Strings(ids)
	sum := crc32.ChecksumIEEE([]byte(strings.Join(ids, ",")))
	return fmt.Sprintf("zscores:%s:%d:%08x", season, len(ids), sum)
}
