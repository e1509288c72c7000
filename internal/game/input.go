package game

import (
	"math"

	"superduck/internal/game/keytracker"
	"superduck/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

// InputHandler reads the keyboard once per frame.
type InputHandler struct {
	keys    *keytracker.KeyStateTracker
	pressed func(ebiten.Key) bool
}

// NewInputHandler creates a new input handler
func NewInputHandler() *InputHandler {
	return newInputHandler(ebiten.IsKeyPressed)
}

func newInputHandler(pressed func(ebiten.Key) bool) *InputHandler {
	return &InputHandler{keys: keytracker.NewWithSource(pressed), pressed: pressed}
}

// Commands are the one-shot keys of a frame.
type Commands struct {
	ToggleDebug bool
	Restart     bool
}

// Read returns the movement and attack intent and the one-shot commands.
func (ih *InputHandler) Read() (world.Input, Commands) {
	var in world.Input
	if ih.anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft) {
		in.MoveX--
	}
	if ih.anyPressed(ebiten.KeyD, ebiten.KeyArrowRight) {
		in.MoveX++
	}
	if ih.anyPressed(ebiten.KeyW, ebiten.KeyArrowUp) {
		in.MoveY++
	}
	if ih.anyPressed(ebiten.KeyS, ebiten.KeyArrowDown) {
		in.MoveY--
	}
	// Diagonals move at the same speed as straight lines.
	if in.MoveX != 0 && in.MoveY != 0 {
		in.MoveX /= math.Sqrt2
		in.MoveY /= math.Sqrt2
	}
	in.Attack = ih.pressed(ebiten.KeySpace)

	cmds := Commands{
		ToggleDebug: ih.keys.IsKeyJustPressed(ebiten.KeyF3),
		Restart:     ih.keys.IsKeyJustPressed(ebiten.KeyR),
	}
	return in, cmds
}

func (ih *InputHandler) anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ih.pressed(k) {
			return true
		}
	}
	return false
}
