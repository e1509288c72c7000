package game

import (
	"image/color"
	"math"

	"superduck/internal/mob"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	mobShadowColor = color.RGBA{0, 0, 0, 90}
	meleeColor     = color.RGBA{120, 200, 90, 255}
	rangedColor    = color.RGBA{230, 230, 230, 255}
	bossColor      = color.RGBA{200, 60, 60, 255}
	waterTint      = color.RGBA{60, 110, 200, 160}
	healthBack     = color.RGBA{40, 0, 0, 200}
	healthFront    = color.RGBA{220, 40, 40, 255}
	facingMarkCol  = color.RGBA{20, 20, 20, 255}
)

// mobShadowOffset mirrors the sprite layout per type: bosses cast a large
// offset shadow, swimmers a flatter one.
func mobShadowOffset(m *mob.Mob, swimming bool) (float64, float64) {
	switch m.Type {
	case mob.TypeBoss:
		return -10, -20
	case mob.TypeRanged:
		return 0, 3
	default:
		if swimming {
			return -5, 0
		}
		return -5, -5
	}
}

func mobBodyColor(t mob.Type) color.RGBA {
	switch t {
	case mob.TypeBoss:
		return bossColor
	case mob.TypeRanged:
		return rangedColor
	default:
		return meleeColor
	}
}

// drawMob draws one mob. Mobs without a sprite image are drawn as a
// coloured block with a facing mark.
func (g *Game) drawMob(screen *ebiten.Image, m *mob.Mob, onWater bool) {
	swimming := m.Swimming(onWater)

	sx, sy := mobShadowOffset(m, swimming)
	shX, shY := g.camera.WorldToScreen(m.X+sx, m.Y+sy+m.Height*0.25)
	vector.DrawFilledRect(screen, shX, shY, float32(m.Width)+4, float32(m.Height)*0.25, mobShadowColor, false)

	// Walking bob driven by StateTime; still when idle.
	bob := 0.0
	if m.StateTime > 0 {
		bob = math.Abs(math.Sin(m.StateTime*10)) * 2
	}

	height := m.Height
	if swimming {
		height = m.Height / 2
	}
	x, y := g.camera.WorldToScreen(m.X, m.Y+height+bob)
	if img, ok := g.sprites.GetSprite(m.SpriteName(onWater)); ok {
		drawScaled(screen, img, x, y, m.Width, height)
		g.drawMobHealth(screen, m)
		return
	}
	vector.DrawFilledRect(screen, x, y, float32(m.Width), float32(height), mobBodyColor(m.Type), false)
	if swimming {
		wx, wy := g.camera.WorldToScreen(m.X-2, m.Y+height*0.3)
		vector.DrawFilledRect(screen, wx, wy, float32(m.Width)+4, float32(height)*0.3, waterTint, false)
	}

	drawFacing(screen, m, x, y, float32(height))
	g.drawMobHealth(screen, m)
}

func drawFacing(screen *ebiten.Image, m *mob.Mob, x, y, h float32) {
	w := float32(m.Width)
	var fx, fy float32
	switch m.Facing {
	case mob.FacingLeft:
		fx, fy = x+2, y+h/3
	case mob.FacingRight:
		fx, fy = x+w-6, y+h/3
	case mob.FacingBack:
		return
	default:
		fx, fy = x+w/2-2, y+h/3
	}
	vector.DrawFilledRect(screen, fx, fy, 4, 4, facingMarkCol, false)
}

func (g *Game) drawMobHealth(screen *ebiten.Image, m *mob.Mob) {
	frac, ok := m.HealthFraction()
	if !ok {
		return
	}
	x, y := g.camera.WorldToScreen(m.X, m.Y+m.Height+8)
	w := float32(m.Width)
	vector.DrawFilledRect(screen, x, y, w, 3, healthBack, false)
	vector.DrawFilledRect(screen, x, y, w*float32(frac), 3, healthFront, false)
}

func drawScaled(screen, img *ebiten.Image, x, y float32, w, h float64) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, op)
}
