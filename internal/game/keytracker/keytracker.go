// Package keytracker turns ebiten's level-triggered key state into edge
// events for toggles like the debug overlay.
package keytracker

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyStateTracker remembers last frame's state for each key it is asked about.
type KeyStateTracker struct {
	prevPressed map[ebiten.Key]bool
	pressed     func(ebiten.Key) bool
}

// New returns a tracker reading ebiten's keyboard.
func New() *KeyStateTracker {
	return NewWithSource(ebiten.IsKeyPressed)
}

// NewWithSource returns a tracker reading key state from pressed.
func NewWithSource(pressed func(ebiten.Key) bool) *KeyStateTracker {
	return &KeyStateTracker{prevPressed: make(map[ebiten.Key]bool), pressed: pressed}
}

// IsKeyJustPressed returns true if the key was not pressed last time it was
// asked about but is pressed now. Call it once per key per frame.
func (k *KeyStateTracker) IsKeyJustPressed(key ebiten.Key) bool {
	pressed := k.pressed(key)
	justPressed := pressed && !k.prevPressed[key]
	k.prevPressed[key] = pressed
	return justPressed
}
