package world

import "superduck/internal/mathutil"

// TileMap is the static geometry of a round.
type TileMap struct {
	data       *MapData
	tiles      *TileManager
	tileWidth  int
	tileHeight int
}

// NewTileMap wraps loaded map data.
func NewTileMap(data *MapData, tiles *TileManager, tileWidth, tileHeight int) *TileMap {
	return &TileMap{data: data, tiles: tiles, tileWidth: tileWidth, tileHeight: tileHeight}
}

func (tm *TileMap) TileWidth() int  { return tm.tileWidth }
func (tm *TileMap) TileHeight() int { return tm.tileHeight }

// GetWorldBounds returns the map size in tiles.
func (tm *TileMap) GetWorldBounds() (int, int) {
	return tm.data.Width, tm.data.Height
}

// PixelSize returns the map size in world pixels.
func (tm *TileMap) PixelSize() (float64, float64) {
	return float64(tm.data.Width * tm.tileWidth), float64(tm.data.Height * tm.tileHeight)
}

func (tm *TileMap) inBounds(tileX, tileY int) bool {
	return tileX >= 0 && tileX < tm.data.Width && tileY >= 0 && tileY < tm.data.Height
}

// TileAt returns the tile key at a tile coordinate, or "" outside the map.
func (tm *TileMap) TileAt(tileX, tileY int) string {
	if !tm.inBounds(tileX, tileY) {
		return ""
	}
	return tm.data.Tiles[tileY][tileX]
}

// IsTileBlocking reports whether the tile stops movement. Outside the map is blocking.
func (tm *TileMap) IsTileBlocking(tileX, tileY int) bool {
	if !tm.inBounds(tileX, tileY) {
		return true
	}
	return tm.tiles.IsSolid(tm.data.Tiles[tileY][tileX])
}

// IsWater reports whether the tile is water.
func (tm *TileMap) IsWater(tileX, tileY int) bool {
	return tm.inBounds(tileX, tileY) && tm.tiles.IsWater(tm.data.Tiles[tileY][tileX])
}

// IsOnWater reports whether a body whose bottom-left corner is (x, y) and
// whose width is w stands on water, judged at the middle of its feet.
func (tm *TileMap) IsOnWater(x, y, w float64) bool {
	return tm.IsWater(
		mathutil.FloorToTile(x+w/2, float64(tm.tileWidth)),
		mathutil.FloorToTile(y+1, float64(tm.tileHeight)),
	)
}

// TileOrigin returns the world position of a tile's bottom-left corner.
func (tm *TileMap) TileOrigin(tileX, tileY int) (float64, float64) {
	return float64(tileX * tm.tileWidth), float64(tileY * tm.tileHeight)
}

// Color returns the RGB color of the tile at a tile coordinate.
func (tm *TileMap) Color(tileX, tileY int) [3]int {
	return tm.tiles.GetColor(tm.TileAt(tileX, tileY))
}
