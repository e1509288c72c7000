package game

import (
	"image/color"

	"superduck/internal/logger"
	"superduck/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

var backgroundColor = color.RGBA{18, 22, 30, 255}

// Update advances one tick. Ticks are fixed at the configured TPS, so every
// update uses the same delta.
func (g *Game) Update() error {
	frameTimer := g.monitor.StartFrame()
	defer frameTimer.EndFrame()

	if g.watcher != nil {
		if paths := g.watcher.Drain(); len(paths) > 0 {
			g.reload(paths)
		}
	}

	in, cmds := g.input.Read()
	if cmds.ToggleDebug {
		g.showDebug = !g.showDebug
	}
	if cmds.Restart {
		if err := g.restart(); err != nil {
			return err
		}
		logger.Log.Info("round restarted")
	}

	g.step(in)
	g.maybeLogPerf()
	return nil
}

// step runs the round and moves the camera.
func (g *Game) step(in world.Input) {
	before := g.round.Outcome()
	g.round.Update(g.delta, in)
	if after := g.round.Outcome(); after != before {
		logger.Log.WithField("outcome", after).WithField("score", g.round.Player().Score).Info("round over")
	}
	g.camera.Follow(g.round.Player().Center())
}

// Draw renders the round and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.drawWorld(screen)
	g.drawHUD(screen)
	if g.showDebug {
		g.drawDebug(screen)
	}
}

// Layout returns the screen dimensions
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.config.GetScreenWidth(), g.config.GetScreenHeight()
}
