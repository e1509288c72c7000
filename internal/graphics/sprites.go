package graphics

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"superduck/internal/logger"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteManager loads PNG sprites by name from a directory on first use.
// Missing sprites are remembered so the disk is checked once per name.
type SpriteManager struct {
	root    string
	sprites map[string]*ebiten.Image
	missing map[string]bool
	decode  func(path string) (image.Image, error)
}

// NewSpriteManager creates a manager reading <root>/<name>.png.
func NewSpriteManager(root string) *SpriteManager {
	return &SpriteManager{
		root:    root,
		sprites: make(map[string]*ebiten.Image),
		missing: make(map[string]bool),
		decode:  decodeFile,
	}
}

func decodeFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// SpritePath returns where the sprite called name is looked up.
func (sm *SpriteManager) SpritePath(name string) string {
	return filepath.Join(sm.root, name+".png")
}

// GetSprite returns the sprite called name. ok is false when there is no
// usable file; callers then draw their flat-colour fallback.
func (sm *SpriteManager) GetSprite(name string) (*ebiten.Image, bool) {
	if name == "" || sm.missing[name] {
		return nil, false
	}
	if sprite, exists := sm.sprites[name]; exists {
		return sprite, true
	}

	img, err := sm.decode(sm.SpritePath(name))
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Log.WithError(err).WithField("sprite", name).Warn("sprite unreadable, using fallback")
		}
		sm.missing[name] = true
		return nil, false
	}
	sprite := ebiten.NewImageFromImage(img)
	sm.sprites[name] = sprite
	return sprite, true
}

// Forget drops every cached sprite and miss, so edited files are read again.
func (sm *SpriteManager) Forget() {
	sm.sprites = make(map[string]*ebiten.Image)
	sm.missing = make(map[string]bool)
}
