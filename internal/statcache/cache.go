// Package statcache persists pitcher season statistics resolved from the
// external stats API. The on-disk artifact is a JSON mapping of player name
// to stat name to value; a null value is an explicit "unknown" marker so
// failed lookups are not re-attempted on every run.
package statcache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/dugoutlabs/pennant/pkg/logger"
)

// Result carries either a resolved stat value or a tagged unknown state.
// Callers are responsible for substituting a default when Known is false.
type Result struct {
	Value float64
	Known bool
}

// Lookup resolves a pitcher's season stat from the external service.
type Lookup interface {
	PitcherStat(ctx context.Context, player, stat, season string) (float64, error)
}

// Cache is a write-through, file-backed stat cache. It is loaded once at
// construction and flushed after every new resolution, so repeated runs over
// the same season get cheaper over time.
type Cache struct {
	path    string
	season  string
	lookup  Lookup
	entries map[string]map[string]*float64
	log     *logrus.Entry

	hits   int
	misses int
}

// New loads the persisted cache at path, creating an empty cache when the
// file does not exist yet. lookup may be nil, in which case every miss
// resolves to unknown.
func New(path, season string, lookup Lookup) (*Cache, error) {
	c := &Cache{
		path:    path,
		season:  season,
		lookup:  lookup,
		entries: make(map[string]map[string]*float64),
		log:     logger.WithComponent("statcache"),
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read stat cache: %w", err)
	}
	if err := json.Unmarshal(data, &c.entries); err != nil {
		return nil, fmt.Errorf("failed to decode stat cache %s: %w", path, err)
	}

	c.log.WithField("players", len(c.entries)).Debug("Loaded stat cache")
	return c, nil
}

// Get returns the cached stat for (player, stat), resolving it externally on
// a miss. Both successful values and failures are stored and flushed, so at
// most one external call is ever made per (player, stat). Lookup failures
// never propagate; they come back as an unknown Result.
func (c *Cache) Get(ctx context.Context, player, stat string) Result {
	if stats, ok := c.entries[player]; ok {
		if v, ok := stats[stat]; ok {
			c.hits++
			if v == nil {
				return Result{}
			}
			return Result{Value: *v, Known: true}
		}
	}
	c.misses++

	var stored *float64
	result := Result{}
	if c.lookup != nil {
		value, err := c.lookup.PitcherStat(ctx, player, stat, c.season)
		if err != nil {
			c.log.WithFields(logrus.Fields{
				"player": player,
				"stat":   stat,
			}).WithError(err).Warn("Stat lookup failed, caching unknown")
		} else {
			stored = &value
			result = Result{Value: value, Known: true}
		}
	}

	if c.entries[player] == nil {
		c.entries[player] = make(map[string]*float64)
	}
	c.entries[player][stat] = stored

	if err := c.flush(); err != nil {
		c.log.WithError(err).Warn("Failed to persist stat cache")
	}

	return result
}

// PitcherStat adapts the cache to the feature engine's StatSource interface.
func (c *Cache) PitcherStat(ctx context.Context, player, stat string) (float64, bool) {
	r := c.Get(ctx, player, stat)
	return r.Value, r.Known
}

// Stats returns hit/miss counters for the current run.
func (c *Cache) Stats() (hits, misses int) {
	return c.hits, c.misses
}

func (c *Cache) flush() error {
	data, err := json.Marshal(c.entries)
	if err != nil {
		return fmt.Errorf("failed to encode stat cache: %w", err)
	}
	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create cache directory: %w", err)
		}
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write stat cache: %w", err)
	}
	return nil
}
