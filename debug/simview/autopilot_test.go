package main

import (
	"context"
	"strings"
	"testing"

	"superduck/internal/config"
	"superduck/internal/game"
	"superduck/internal/mob"
	"superduck/internal/world"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

func newRound(t *testing.T, layout string) *world.Round {
	t.Helper()
	cfg, err := config.ParseConfig([]byte("world: {tile_width: 32, tile_height: 32}\n"))
	require.NoError(t, err)
	tiles := world.NewTileManager()
	require.NoError(t, tiles.LoadTileConfig("../../assets/tiles.yaml"))
	mobs, err := mob.LoadConfig("../../assets/mobs.yaml")
	require.NoError(t, err)
	data, err := world.NewMapLoader(tiles, mobs).ParseMap(strings.NewReader(layout))
	require.NoError(t, err)
	r, err := world.NewRound(cfg, data, tiles, mobs, fixedRand(0.99), nil)
	require.NoError(t, err)
	return r
}

func TestAutopilotHeadsForNearestMob(t *testing.T) {
	r := newRound(t, "WWWWWWWWWW\nW+......zW\nW.......gW\nWWWWWWWWWW\n")

	in := autopilot(r)
	assert.Greater(t, in.MoveX, 0.9)
	assert.False(t, in.Attack)
}

func TestAutopilotAttacksInRange(t *testing.T) {
	r := newRound(t, "WWWWW\nW+z.W\nWWWWW\n")

	in := autopilot(r)
	assert.True(t, in.Attack)
}

func TestAutopilotIdleWithoutMobs(t *testing.T) {
	r := newRound(t, "WWWW\nW+.W\nWWWW\n")
	assert.Equal(t, world.Input{}, autopilot(r))
}

func TestAutopilotClearsSmallArena(t *testing.T) {
	r := newRound(t, "WWWWWWW\nW+...gW\nWWWWWWW\n")
	for i := 0; i < 60*10 && r.Outcome() == world.Playing; i++ {
		r.Update(1.0/60, autopilot(r))
	}
	assert.Equal(t, world.Won, r.Outcome())
}

func TestRunBatch(t *testing.T) {
	cfg, err := config.ParseConfig([]byte("world: {tile_width: 32, tile_height: 32}\n"))
	require.NoError(t, err)
	tiles := world.NewTileManager()
	require.NoError(t, tiles.LoadTileConfig("../../assets/tiles.yaml"))
	mobs, err := mob.LoadConfig("../../assets/mobs.yaml")
	require.NoError(t, err)
	data, err := world.NewMapLoader(tiles, mobs).ParseMap(strings.NewReader("WWWWWWW\nW+...gW\nWWWWWWW\n"))
	require.NoError(t, err)
	assets := &game.Assets{Tiles: tiles, Mobs: mobs, Map: data}

	results := runBatch(context.Background(), cfg, assets, 6, 1, 10, 3)
	require.Len(t, results, 6)
	for i, res := range results {
		assert.Equal(t, int64(1+i), res.Seed)
		assert.NoError(t, res.Err)
	}

	s := summarize(results)
	assert.Equal(t, 6, s.Rounds)
	assert.Equal(t, 6, s.Won)
	assert.Equal(t, 150.0, s.MeanScore)
	assert.Contains(t, s.String(), "won=6")
}

func TestSummarizeCountsFailures(t *testing.T) {
	s := summarize([]batchResult{
		{Outcome: world.Lost, Score: 100},
		{Outcome: world.Playing, Score: 300},
		{Err: assert.AnError},
	})
	assert.Equal(t, batchSummary{Rounds: 3, Lost: 1, Timeout: 1, Failed: 1, MeanScore: 200}, s)
}
