package game

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"superduck/internal/config"
	"superduck/internal/powerup"
	"superduck/internal/threading/monitoring"
	"superduck/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTiles = `tiles:
  grass: {name: Grass, letter: ".", floor: true, color: [0, 128, 0]}
  wall: {name: Wall, letter: "W", solid: true, color: [90, 90, 90]}
`

const testMobs = `mobs:
  zombie_duck: {name: Zombie Duck, type: melee, letter: "z", ai: pursue_melee, health: 3, speed: 90, score: 100, attack_range: 24}
`

const testMap = "WWWWWWWW\nW+....zW\nWWWWWWWW\n"

func testConfigYAML(dir string, limit int) string {
	return "display: {screen_width: 320, screen_height: 240, tps: 60}\n" +
		"world: {tile_width: 32, tile_height: 32, kill_target: 6}\n" +
		"mob_ai: {iteration_limit: " + strconv.Itoa(limit) + "}\n" +
		"debug: {perf_log: false}\n" +
		"assets:\n" +
		"  tiles: " + filepath.Join(dir, "tiles.yaml") + "\n" +
		"  mobs: " + filepath.Join(dir, "mobs.yaml") + "\n" +
		"  map: " + filepath.Join(dir, "arena.map") + "\n"
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// newTestGame writes a small asset set to a temp dir and starts a game on it.
func newTestGame(t *testing.T) (*Game, string) {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "tiles.yaml"), testTiles)
	writeFile(t, filepath.Join(dir, "mobs.yaml"), testMobs)
	writeFile(t, filepath.Join(dir, "arena.map"), testMap)
	cfgPath := filepath.Join(dir, "config.yaml")
	writeFile(t, cfgPath, testConfigYAML(dir, 30))

	cfg, err := config.LoadConfig(cfgPath)
	require.NoError(t, err)
	assets, err := LoadAssets(cfg)
	require.NoError(t, err)
	g, err := NewGame(cfg, cfgPath, assets, nil)
	require.NoError(t, err)
	return g, dir
}

func TestCameraFlipsY(t *testing.T) {
	c := NewCamera(200, 100, 1000, 1000)
	c.Follow(500, 500)

	x, y := c.WorldToScreen(500, 500)
	assert.Equal(t, float32(100), x)
	assert.Equal(t, float32(50), y)

	_, above := c.WorldToScreen(500, 510)
	assert.Less(t, above, y, "higher world y is higher on screen")
}

func TestCameraClampsToWorld(t *testing.T) {
	c := NewCamera(200, 100, 1000, 1000)

	c.Follow(0, 0)
	assert.Equal(t, 100.0, c.X)
	assert.Equal(t, 50.0, c.Y)

	c.Follow(2000, 2000)
	assert.Equal(t, 900.0, c.X)
	assert.Equal(t, 950.0, c.Y)

	small := NewCamera(200, 100, 64, 64)
	small.Follow(10, 10)
	assert.Equal(t, 32.0, small.X, "maps smaller than the view stay centred")
}

func TestCameraVisible(t *testing.T) {
	c := NewCamera(200, 100, 1000, 1000)
	c.Follow(500, 500)

	assert.True(t, c.Visible(450, 480, 10, 10))
	assert.False(t, c.Visible(100, 100, 10, 10))
	assert.True(t, c.Visible(395, 445, 10, 10), "partly on screen")
}

func TestInputHandler(t *testing.T) {
	down := map[ebiten.Key]bool{}
	ih := newInputHandler(func(k ebiten.Key) bool { return down[k] })

	down[ebiten.KeyD] = true
	down[ebiten.KeySpace] = true
	in, cmds := ih.Read()
	assert.Equal(t, 1.0, in.MoveX)
	assert.Equal(t, 0.0, in.MoveY)
	assert.True(t, in.Attack)
	assert.False(t, cmds.ToggleDebug)

	down[ebiten.KeyArrowUp] = true
	down[ebiten.KeyF3] = true
	in, cmds = ih.Read()
	assert.InDelta(t, 0.7071, in.MoveX, 1e-4)
	assert.InDelta(t, 0.7071, in.MoveY, 1e-4)
	assert.True(t, cmds.ToggleDebug)

	_, cmds = ih.Read()
	assert.False(t, cmds.ToggleDebug, "held F3 toggles once")
}

func TestUpdateTogglesDebugAndRestarts(t *testing.T) {
	g, _ := newTestGame(t)
	down := map[ebiten.Key]bool{}
	g.input = newInputHandler(func(k ebiten.Key) bool { return down[k] })

	down[ebiten.KeyD] = true
	for i := 0; i < 10; i++ {
		require.NoError(t, g.Update())
	}
	moved := g.Round().Player().X
	assert.Greater(t, moved, 38.0)

	down[ebiten.KeyD] = false
	down[ebiten.KeyF3] = true
	require.NoError(t, g.Update())
	assert.True(t, g.showDebug)

	down[ebiten.KeyR] = true
	require.NoError(t, g.Update())
	assert.Equal(t, 38.0, g.Round().Player().X, "restart puts the player back on the start tile")
}

func TestReloadConfigRetunesMobs(t *testing.T) {
	g, dir := newTestGame(t)
	round := g.Round()

	writeFile(t, filepath.Join(dir, "config.yaml"), testConfigYAML(dir, 7))
	abs, err := filepath.Abs(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	g.reload([]string{abs})

	assert.Same(t, round, g.Round(), "config edits keep the round")
	assert.Equal(t, 7, round.Mobs()[0].Controller().Pathfinder().IterationLimit)
}

func TestReloadAssetsRestartsRound(t *testing.T) {
	g, dir := newTestGame(t)
	round := g.Round()

	writeFile(t, filepath.Join(dir, "arena.map"), "WWWWWWWW\nW+..zzzW\nWWWWWWWW\n")
	g.reload([]string{filepath.Join(dir, "arena.map")})

	assert.NotSame(t, round, g.Round())
	assert.Len(t, g.Round().Mobs(), 3)
}

func TestReloadKeepsRoundOnBadAssets(t *testing.T) {
	g, dir := newTestGame(t)
	round := g.Round()

	writeFile(t, filepath.Join(dir, "arena.map"), "WWW\nW.\n")
	g.reload([]string{filepath.Join(dir, "arena.map")})

	assert.Same(t, round, g.Round())
}

func TestReloadKeepsRoundOnMapWithoutMobs(t *testing.T) {
	g, dir := newTestGame(t)
	round := g.Round()

	writeFile(t, filepath.Join(dir, "arena.map"), "WWWWWWWW\nW+.....W\nWWWWWWWW\n")
	g.reload([]string{filepath.Join(dir, "arena.map")})
	assert.Same(t, round, g.Round())

	require.NoError(t, g.restart())
	assert.Len(t, g.Round().Mobs(), 1, "restart uses the last assets that could start a round")
}

func TestHUDLines(t *testing.T) {
	g, _ := newTestGame(t)
	lines := hudLines(g.Round())
	require.Len(t, lines, 2)
	assert.Equal(t, "Score: 0", lines[0])
	assert.Equal(t, "Kill 1 more (0/1)", lines[1])

	p := g.Round().Player()
	g.Round().Powerups().Spawn(p.X, p.Y, powerup.SuperSpeed, 10)
	g.Round().Update(0, world.Input{})

	lines = hudLines(g.Round())
	require.Len(t, lines, 3)
	assert.Equal(t, "SUPER_SPEED 10s", lines[2])
}

func TestDebugLinesSorted(t *testing.T) {
	lines := debugLines(map[string]interface{}{"searches": uint64(3), "avg_frame_time_ms": 1.5})
	assert.Equal(t, []string{"avg_frame_time_ms=1.50", "searches=3"}, lines)
}

func TestPerfFields(t *testing.T) {
	pm := monitoring.NewPerformanceMonitor()
	pm.RecordMobsUpdated(4)
	pm.ObserveSearch(12, false, 0)

	fields := perfFields(pm.GetDetailedStats(), 60, 4)
	assert.Equal(t, uint64(1), fields["searches"])
	assert.Equal(t, uint64(1), fields["search_misses"])
	assert.Equal(t, uint64(12), fields["nodes_expanded"])
	assert.Equal(t, 4, fields["mobs"])
}
