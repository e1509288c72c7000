package game

import (
	"fmt"
	"path/filepath"
	"time"

	"superduck/internal/ai"
	"superduck/internal/config"
	"superduck/internal/graphics"
	"superduck/internal/logger"
	"superduck/internal/mob"
	"superduck/internal/threading/monitoring"
	"superduck/internal/world"
)

// Assets are the loaded data files a round is built from.
type Assets struct {
	Tiles *world.TileManager
	Mobs  *mob.YAMLConfig
	Map   *world.MapData
}

// LoadAssets reads the tile set, mob table and map named in cfg.
func LoadAssets(cfg *config.Config) (*Assets, error) {
	tiles := world.NewTileManager()
	if err := tiles.LoadTileConfig(cfg.GetTilesPath()); err != nil {
		return nil, err
	}
	mobs, err := mob.LoadConfig(cfg.GetMobsPath())
	if err != nil {
		return nil, err
	}
	data, err := world.NewMapLoader(tiles, mobs).LoadMap(cfg.GetMapPath())
	if err != nil {
		return nil, err
	}
	world.GlobalTileManager = tiles
	return &Assets{Tiles: tiles, Mobs: mobs, Map: data}, nil
}

// Game is the ebiten.Game running one round at a time.
type Game struct {
	config     *config.Config
	configPath string
	assets     *Assets
	round      *world.Round
	camera     *Camera
	input      *InputHandler
	monitor    *monitoring.PerformanceMonitor
	rng        ai.Rand
	watcher    *config.Watcher
	sprites    *graphics.SpriteManager

	showDebug   bool
	lastPerfLog time.Time
	delta       float64
}

// NewGame builds a game and starts the first round. watcher may be nil.
func NewGame(cfg *config.Config, configPath string, assets *Assets, watcher *config.Watcher) (*Game, error) {
	g := &Game{
		config:     cfg,
		configPath: configPath,
		assets:     assets,
		input:      NewInputHandler(),
		monitor:    monitoring.NewPerformanceMonitor(),
		rng:        ai.NewRand(0),
		watcher:    watcher,
		sprites:    graphics.NewSpriteManager(cfg.GetSpritesPath()),
		showDebug:  cfg.Debug.ShowPaths,
		delta:      1 / float64(cfg.GetTPS()),
	}
	if err := g.restart(); err != nil {
		return nil, err
	}
	return g, nil
}

// restart throws away the current round and builds a fresh one.
func (g *Game) restart() error {
	round, err := world.NewRound(g.config, g.assets.Map, g.assets.Tiles, g.assets.Mobs, g.rng, g.monitor)
	if err != nil {
		return fmt.Errorf("starting round: %w", err)
	}
	g.round = round
	ww, wh := round.TileMap().PixelSize()
	g.camera = NewCamera(g.config.GetScreenWidth(), g.config.GetScreenHeight(), ww, wh)
	g.camera.Follow(round.Player().Center())
	g.monitor.Reset()
	return nil
}

// Round returns the round in play.
func (g *Game) Round() *world.Round { return g.round }

// watchedFiles lists the files a Watcher should follow for this game.
func (g *Game) watchedFiles() []string {
	return []string{g.configPath, g.config.GetTilesPath(), g.config.GetMobsPath(), g.config.GetMapPath()}
}

// WatchFiles starts an asset watcher for the game's files.
func (g *Game) WatchFiles() error {
	w, err := config.NewWatcher(g.watchedFiles()...)
	if err != nil {
		return err
	}
	g.watcher = w
	return nil
}

// Close stops the asset watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

// reload applies edits to watched files. A config edit retunes the live mobs;
// an edit to the tiles, mobs or map restarts the round with the new data.
func (g *Game) reload(paths []string) {
	configChanged, assetsChanged := false, false
	cfgAbs, _ := filepath.Abs(g.configPath)
	for _, p := range paths {
		if p == cfgAbs {
			configChanged = true
		} else {
			assetsChanged = true
		}
	}

	if configChanged {
		cfg, err := config.LoadConfig(g.configPath)
		if err != nil {
			logger.Log.WithError(err).Warn("config reload failed, keeping previous values")
		} else {
			g.config = cfg
			logger.Init(cfg.Logging.Level, cfg.Logging.Format)
			g.round.ApplyAITuning(cfg)
		}
	}

	if assetsChanged {
		assets, err := LoadAssets(g.config)
		if err != nil {
			logger.Log.WithError(err).Warn("asset reload failed, keeping previous round")
			return
		}
		previous := g.assets
		g.assets = assets
		if err := g.restart(); err != nil {
			g.assets = previous
			logger.Log.WithError(err).Warn("reloaded assets cannot start a round, keeping previous round")
			return
		}
		g.sprites.Forget()
		logger.Log.Info("assets reloaded, round restarted")
	}
}
