package main

import (
	"flag"

	"superduck/internal/config"
	"superduck/internal/game"
	"superduck/internal/logger"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config.yaml")
	mapPath := flag.String("map", "", "map to play instead of the configured one")
	flag.Parse()

	cfg := config.MustLoadConfig(*configPath)
	if *mapPath != "" {
		cfg.Assets.Map = *mapPath
	}
	logger.Init(cfg.Logging.Level, cfg.Logging.Format)

	assets, err := game.LoadAssets(cfg)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to load assets")
	}

	g, err := game.NewGame(cfg, *configPath, assets, nil)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to start game")
	}
	if cfg.Debug.WatchAssets {
		if err := g.WatchFiles(); err != nil {
			logger.Log.WithError(err).Warn("asset watching disabled")
		}
	}
	defer g.Close()

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(cfg.GetTPS())

	if err := ebiten.RunGame(g); err != nil {
		logger.Log.WithError(err).Fatal("game exited with error")
	}
}
