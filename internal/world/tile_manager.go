package world

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// TileDefinition is one tile kind from tiles.yaml.
type TileDefinition struct {
	Name   string `yaml:"name"`
	Letter string `yaml:"letter"`
	Solid  bool   `yaml:"solid"`
	Water  bool   `yaml:"water"`
	Floor  bool   `yaml:"floor"`
	Color  [3]int `yaml:"color"`
}

// TileConfig is the tiles.yaml document.
type TileConfig struct {
	Tiles map[string]TileDefinition `yaml:"tiles"`
}

// TileManager handles tile configuration and properties
type TileManager struct {
	tiles       map[string]*TileDefinition
	letterToKey map[string]string
	floorKey    string
}

// GlobalTileManager is the tile set loaded at startup.
var GlobalTileManager *TileManager

// NewTileManager creates a new tile manager
func NewTileManager() *TileManager {
	return &TileManager{
		tiles:       make(map[string]*TileDefinition),
		letterToKey: make(map[string]string),
	}
}

// LoadTileConfig loads tile configuration from a YAML file
func (tm *TileManager) LoadTileConfig(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read tile config file: %w", err)
	}
	return tm.ParseTileConfig(data)
}

// ParseTileConfig loads tile definitions from YAML bytes, replacing any
// previously loaded set.
func (tm *TileManager) ParseTileConfig(data []byte) error {
	var tileConfig TileConfig
	if err := yaml.Unmarshal(data, &tileConfig); err != nil {
		return fmt.Errorf("failed to parse tile config: %w", err)
	}
	if len(tileConfig.Tiles) == 0 {
		return fmt.Errorf("tile config defines no tiles")
	}

	tiles := make(map[string]*TileDefinition, len(tileConfig.Tiles))
	letters := make(map[string]string, len(tileConfig.Tiles))
	floorKey := ""

	keys := make([]string, 0, len(tileConfig.Tiles))
	for key := range tileConfig.Tiles {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		def := tileConfig.Tiles[key]
		if len([]rune(def.Letter)) != 1 {
			return fmt.Errorf("tile %q: letter must be a single character, got %q", key, def.Letter)
		}
		if other, dup := letters[def.Letter]; dup {
			return fmt.Errorf("letter '%s' is used by tiles %q and %q", def.Letter, other, key)
		}
		if def.Solid && def.Water {
			return fmt.Errorf("tile %q cannot be both solid and water", key)
		}
		letters[def.Letter] = key
		tiles[key] = &def
		if def.Floor && floorKey == "" {
			floorKey = key
		}
	}
	if floorKey == "" {
		return fmt.Errorf("tile config needs one tile marked floor")
	}

	tm.tiles = tiles
	tm.letterToKey = letters
	tm.floorKey = floorKey
	return nil
}

// Keys returns the tile keys in sorted order.
func (tm *TileManager) Keys() []string {
	keys := make([]string, 0, len(tm.tiles))
	for key := range tm.tiles {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// GetTileData returns the definition for key.
func (tm *TileManager) GetTileData(key string) (*TileDefinition, bool) {
	def, ok := tm.tiles[key]
	return def, ok
}

// KeyForLetter maps a map character to a tile key.
func (tm *TileManager) KeyForLetter(letter rune) (string, bool) {
	key, ok := tm.letterToKey[string(letter)]
	return key, ok
}

// FloorKey is the tile placed under spawn markers.
func (tm *TileManager) FloorKey() string {
	return tm.floorKey
}

// IsSolid reports whether tiles of key block movement. Unknown keys are solid.
func (tm *TileManager) IsSolid(key string) bool {
	def, ok := tm.tiles[key]
	return !ok || def.Solid
}

// IsWater reports whether tiles of key are water.
func (tm *TileManager) IsWater(key string) bool {
	def, ok := tm.tiles[key]
	return ok && def.Water
}

// GetColor returns the tile's RGB color, magenta for unknown keys.
func (tm *TileManager) GetColor(key string) [3]int {
	if def, ok := tm.tiles[key]; ok {
		return def.Color
	}
	return [3]int{255, 0, 255}
}
