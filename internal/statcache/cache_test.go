package statcache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLookup struct {
	calls  int
	values map[string]float64
	err    error
}

func (f *fakeLookup) PitcherStat(_ context.Context, player, stat, _ string) (float64, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	v, ok := f.values[player+"/"+stat]
	if !ok {
		return 0, errors.New("player not found")
	}
	return v, nil
}

func newTestCache(t *testing.T, lookup Lookup) (*Cache, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cache.json")
	c, err := New(path, "2025", lookup)
	require.NoError(t, err)
	return c, path
}

func TestGet_MissResolvesAndCaches(t *testing.T) {
	lookup := &fakeLookup{values: map[string]float64{"Logan Gilbert/era": 3.21}}
	c, _ := newTestCache(t, lookup)

	r := c.Get(context.Background(), "Logan Gilbert", "era")
	assert.True(t, r.Known)
	assert.Equal(t, 3.21, r.Value)

	// Second call must hit the cache, not the service.
	r = c.Get(context.Background(), "Logan Gilbert", "era")
	assert.True(t, r.Known)
	assert.Equal(t, 1, lookup.calls)
}

func TestGet_FailureCachesUnknownMarker(t *testing.T) {
	lookup := &fakeLookup{err: errors.New("service unavailable")}
	c, _ := newTestCache(t, lookup)

	r := c.Get(context.Background(), "Nobody Special", "whip")
	assert.False(t, r.Known)

	// The failure is negative-cached: no retry on the next call.
	r = c.Get(context.Background(), "Nobody Special", "whip")
	assert.False(t, r.Known)
	assert.Equal(t, 1, lookup.calls)
}

func TestGet_PersistsAcrossInstances(t *testing.T) {
	lookup := &fakeLookup{values: map[string]float64{"Sonny Gray/whip": 1.08}}
	c, path := newTestCache(t, lookup)

	c.Get(context.Background(), "Sonny Gray", "whip")
	c.Get(context.Background(), "Sonny Gray", "era") // fails, cached as unknown

	// A fresh cache over the same file sees both entries without any
	// further external calls.
	reloaded, err := New(path, "2025", lookup)
	require.NoError(t, err)

	r := reloaded.Get(context.Background(), "Sonny Gray", "whip")
	assert.True(t, r.Known)
	assert.Equal(t, 1.08, r.Value)

	r = reloaded.Get(context.Background(), "Sonny Gray", "era")
	assert.False(t, r.Known)

	assert.Equal(t, 2, lookup.calls)
}

func TestNew_MissingFileStartsEmpty(t *testing.T) {
	c, err := New(filepath.Join(t.TempDir(), "missing.json"), "2025", nil)
	require.NoError(t, err)

	r := c.Get(context.Background(), "Anyone", "era")
	assert.False(t, r.Known)
}

func TestNew_CorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := New(path, "2025", nil)
	assert.Error(t, err)
}

func TestPitcherStat_AdaptsResult(t *testing.T) {
	lookup := &fakeLookup{values: map[string]float64{"Logan Gilbert/era": 3.21}}
	c, _ := newTestCache(t, lookup)

	v, ok := c.PitcherStat(context.Background(), "Logan Gilbert", "era")
	assert.True(t, ok)
	assert.Equal(t, 3.21, v)

	_, ok = c.PitcherStat(context.Background(), "Logan Gilbert", "strikeouts")
	assert.False(t, ok)
}
