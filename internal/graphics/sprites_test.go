package graphics

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingSpriteIsCached(t *testing.T) {
	sm := NewSpriteManager(t.TempDir())
	calls := 0
	sm.decode = func(path string) (image.Image, error) {
		calls++
		return decodeFile(path)
	}

	_, ok := sm.GetSprite("mob_zombie")
	assert.False(t, ok)
	_, ok = sm.GetSprite("mob_zombie")
	assert.False(t, ok)
	assert.Equal(t, 1, calls, "the disk is checked once per name")

	sm.Forget()
	sm.GetSprite("mob_zombie")
	assert.Equal(t, 2, calls)
}

func TestEmptyNameHasNoSprite(t *testing.T) {
	sm := NewSpriteManager(t.TempDir())
	sm.decode = func(string) (image.Image, error) {
		t.Fatal("decode should not be called")
		return nil, nil
	}
	_, ok := sm.GetSprite("")
	assert.False(t, ok)
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()
	sm := NewSpriteManager(dir)
	path := sm.SpritePath("duck")
	assert.Equal(t, filepath.Join(dir, "duck.png"), path)

	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{255, 0, 0, 255})
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	decoded, err := decodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 3), decoded.Bounds())

	require.NoError(t, os.WriteFile(path, []byte("not a png"), 0o644))
	_, err = decodeFile(path)
	assert.Error(t, err)
	assert.False(t, os.IsNotExist(err))
}
