package keytracker

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestIsKeyJustPressed(t *testing.T) {
	down := map[ebiten.Key]bool{}
	k := NewWithSource(func(key ebiten.Key) bool { return down[key] })

	assert.False(t, k.IsKeyJustPressed(ebiten.KeyF3))

	down[ebiten.KeyF3] = true
	assert.True(t, k.IsKeyJustPressed(ebiten.KeyF3))
	assert.False(t, k.IsKeyJustPressed(ebiten.KeyF3), "held key fires once")

	down[ebiten.KeyR] = true
	assert.True(t, k.IsKeyJustPressed(ebiten.KeyR), "keys are tracked separately")

	down[ebiten.KeyF3] = false
	assert.False(t, k.IsKeyJustPressed(ebiten.KeyF3))
	down[ebiten.KeyF3] = true
	assert.True(t, k.IsKeyJustPressed(ebiten.KeyF3))
}
