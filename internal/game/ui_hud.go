package game

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"superduck/internal/powerup"
	"superduck/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var (
	hudBackground = color.RGBA{0, 0, 0, 150}
	hudText       = color.RGBA{240, 240, 240, 255}
	heartFull     = color.RGBA{220, 40, 60, 255}
	heartEmpty    = color.RGBA{70, 30, 30, 255}
	bannerWon     = color.RGBA{90, 220, 120, 255}
	bannerLost    = color.RGBA{230, 70, 70, 255}
)

// hudLines returns the text rows of the HUD.
func hudLines(r *world.Round) []string {
	lines := []string{
		fmt.Sprintf("Score: %d", r.Player().Score),
		r.CurrentObjective().Describe(),
	}
	if active := activePowerups(r.Powerups()); active != "" {
		lines = append(lines, active)
	}
	return lines
}

// activePowerups formats the running effects with their remaining seconds.
func activePowerups(pm *powerup.Manager) string {
	var parts []string
	for _, k := range []powerup.Kind{powerup.ScoreMultiplier, powerup.Invulnerable, powerup.SuperSpeed, powerup.RateOfFire} {
		if pm.Active(k) {
			parts = append(parts, fmt.Sprintf("%s %.0fs", k, pm.Remaining(k)))
		}
	}
	return strings.Join(parts, "  ")
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	face := basicfont.Face7x13
	p := g.round.Player()

	lines := hudLines(g.round)
	vector.DrawFilledRect(screen, 8, 8, 260, float32(28+16*len(lines)), hudBackground, false)

	for i := 0; i < p.MaxHealth; i++ {
		c := heartEmpty
		if i < p.Health() {
			c = heartFull
		}
		vector.DrawFilledRect(screen, float32(16+i*14), 16, 10, 10, c, false)
	}
	for i, line := range lines {
		ebitext.Draw(screen, line, face, 16, 44+i*16, hudText)
	}

	switch g.round.Outcome() {
	case world.Won:
		g.drawBanner(screen, "Round won! Press R to play again", bannerWon)
	case world.Lost:
		g.drawBanner(screen, "The duck is down. Press R to retry", bannerLost)
	}
}

func (g *Game) drawBanner(screen *ebiten.Image, msg string, c color.Color) {
	face := basicfont.Face7x13
	w := font.MeasureString(face, msg).Round()
	x := (g.config.GetScreenWidth() - w) / 2
	y := g.config.GetScreenHeight() / 2
	vector.DrawFilledRect(screen, float32(x-12), float32(y-20), float32(w+24), 32, hudBackground, false)
	ebitext.Draw(screen, msg, face, x, y, c)
}

// debugLines formats the monitor's stats as sorted key=value rows.
func debugLines(stats map[string]interface{}) []string {
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		switch v := stats[k].(type) {
		case float64:
			lines = append(lines, fmt.Sprintf("%s=%.2f", k, v))
		default:
			lines = append(lines, fmt.Sprintf("%s=%v", k, v))
		}
	}
	return lines
}

// drawDebug is the F3 overlay: pathfinding targets and monitor stats.
func (g *Game) drawDebug(screen *ebiten.Image) {
	g.drawPaths(screen)

	lines := append([]string{
		fmt.Sprintf("TPS %.1f  FPS %.1f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		fmt.Sprintf("mobs %d  t=%.1fs", len(g.round.Mobs()), g.round.Elapsed()),
	}, debugLines(g.monitor.GetDetailedStats())...)

	x := g.config.GetScreenWidth() - 240
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x, 8+i*14)
	}
}
