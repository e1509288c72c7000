package game

import (
	"fmt"
	"image/color"

	"superduck/internal/mathutil"
	"superduck/internal/powerup"

	"github.com/hajimehoshi/ebiten/v2"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	playerColor      = color.RGBA{250, 220, 60, 255}
	playerHurtColor  = color.RGBA{255, 255, 255, 255}
	playerBeakColor  = color.RGBA{240, 140, 30, 255}
	invulnerableRing = color.RGBA{140, 200, 255, 200}
	pathColor        = color.RGBA{255, 80, 200, 255}
)

var pickupColors = map[powerup.Kind]color.RGBA{
	powerup.ScoreMultiplier: {255, 215, 0, 255},
	powerup.Invulnerable:    {140, 200, 255, 255},
	powerup.SuperSpeed:      {90, 240, 120, 255},
	powerup.RateOfFire:      {250, 100, 80, 255},
}

// drawWorld draws the tile map, pickups, mobs, the player and floating
// numbers, in that order.
func (g *Game) drawWorld(screen *ebiten.Image) {
	g.drawTiles(screen)
	g.drawPickups(screen)

	tm := g.round.TileMap()
	for _, m := range g.round.Mobs() {
		if !g.camera.Visible(m.X, m.Y, m.Width, m.Height) {
			continue
		}
		g.drawMob(screen, m, tm.IsOnWater(m.X, m.Y, m.Width))
	}

	g.drawPlayer(screen)
	g.drawFloaties(screen)
}

func (g *Game) drawTiles(screen *ebiten.Image) {
	tm := g.round.TileMap()
	tw, th := float64(tm.TileWidth()), float64(tm.TileHeight())
	w, h := tm.GetWorldBounds()

	// Only the tiles under the view.
	left := g.camera.X - float64(g.config.GetScreenWidth())/2
	bottom := g.camera.Y - float64(g.config.GetScreenHeight())/2
	x0 := mathutil.IntMax(0, mathutil.FloorToTile(left, tw))
	y0 := mathutil.IntMax(0, mathutil.FloorToTile(bottom, th))
	x1 := mathutil.IntMin(w-1, mathutil.FloorToTile(left+float64(g.config.GetScreenWidth()), tw))
	y1 := mathutil.IntMin(h-1, mathutil.FloorToTile(bottom+float64(g.config.GetScreenHeight()), th))

	for ty := y0; ty <= y1; ty++ {
		for tx := x0; tx <= x1; tx++ {
			ox, oy := tm.TileOrigin(tx, ty)
			sx, sy := g.camera.WorldToScreen(ox, oy+th)
			c := tm.Color(tx, ty)
			vector.DrawFilledRect(screen, sx, sy, float32(tw), float32(th),
				color.RGBA{uint8(c[0]), uint8(c[1]), uint8(c[2]), 255}, false)
		}
	}
}

func (g *Game) drawPickups(screen *ebiten.Image) {
	pm := g.round.Powerups()
	size := pm.Size()
	for _, p := range pm.Pickups() {
		sx, sy := g.camera.WorldToScreen(p.X, p.Y+size)
		vector.DrawFilledRect(screen, sx, sy, float32(size), float32(size), pickupColors[p.Kind], false)
		vector.StrokeRect(screen, sx, sy, float32(size), float32(size), 1, color.Black, false)
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image) {
	p := g.round.Player()
	body := playerColor
	if p.Hurt() {
		body = playerHurtColor
	}
	sx, sy := g.camera.WorldToScreen(p.X, p.Y+p.Height)
	vector.DrawFilledRect(screen, sx, sy, float32(p.Width), float32(p.Height), body, false)
	vector.DrawFilledRect(screen, sx+float32(p.Width)-4, sy+float32(p.Height)/3, 6, 4, playerBeakColor, false)

	if g.round.Powerups().Active(powerup.Invulnerable) {
		cx, cy := g.camera.WorldToScreen(p.Center())
		vector.StrokeCircle(screen, cx, cy, float32(p.Width), 2, invulnerableRing, false)
	}
}

func (g *Game) drawFloaties(screen *ebiten.Image) {
	face := basicfont.Face7x13
	for _, f := range g.round.Floaties() {
		sx, sy := g.camera.WorldToScreen(f.X, f.Y)
		c := color.RGBA{255, 80, 80, uint8(255 * f.Alpha())}
		ebitext.Draw(screen, fmt.Sprintf("-%d", f.Amount), face, int(sx), int(sy), c)
	}
}

// drawPaths marks each mob's current pathfinding step.
func (g *Game) drawPaths(screen *ebiten.Image) {
	for _, m := range g.round.Mobs() {
		target, ok := m.LastTarget()
		if !ok {
			continue
		}
		mx, my := g.camera.WorldToScreen(m.X, m.Y)
		tx, ty := g.camera.WorldToScreen(float64(target.X), float64(target.Y))
		vector.StrokeLine(screen, mx, my, tx, ty, 1, pathColor, false)
		vector.DrawFilledRect(screen, tx-2, ty-2, 4, 4, pathColor, false)
	}
}
