package world

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"superduck/internal/logger"
	"superduck/internal/mob"

	"github.com/sirupsen/logrus"
)

// MobSpawn is a mob placement from the map, in tile coordinates.
type MobSpawn struct {
	TileX, TileY int
	MobKey       string
}

// MapData contains the loaded map information. Tile rows are stored with
// y = 0 at the bottom: the last line of the file.
type MapData struct {
	Name      string
	Width     int
	Height    int
	Tiles     [][]string // [y][x] tile keys
	MobSpawns []MobSpawn
	StartX    int
	StartY    int
}

// MapLoader handles loading world maps from files
type MapLoader struct {
	tiles *TileManager
	mobs  *mob.YAMLConfig
}

// NewMapLoader creates a new map loader
func NewMapLoader(tiles *TileManager, mobs *mob.YAMLConfig) *MapLoader {
	return &MapLoader{tiles: tiles, mobs: mobs}
}

// LoadMap loads a map from the specified file path
func (ml *MapLoader) LoadMap(mapPath string) (*MapData, error) {
	file, err := os.Open(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file %s: %w", mapPath, err)
	}
	defer file.Close()

	data, err := ml.ParseMap(file)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", mapPath, err)
	}
	data.Name = mapPath

	logger.Log.WithFields(logrus.Fields{
		"map":    mapPath,
		"width":  data.Width,
		"height": data.Height,
		"mobs":   len(data.MobSpawns),
	}).Info("map loaded")
	return data, nil
}

// ParseMap reads a text map. Lines starting with '#' are comments, '+' is
// the player start, and letters registered in the mob config are spawns.
func (ml *MapLoader) ParseMap(r io.Reader) (*MapData, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading map file: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("map file contains no valid map data")
	}

	height := len(lines)
	width := len([]rune(lines[0]))
	for i, line := range lines {
		if n := len([]rune(line)); n != width {
			return nil, fmt.Errorf("line %d has inconsistent width: expected %d, got %d", i+1, width, n)
		}
	}

	mapData := &MapData{
		Width:  width,
		Height: height,
		Tiles:  make([][]string, height),
		StartX: -1,
		StartY: -1,
	}

	for row, line := range lines {
		y := height - 1 - row
		mapData.Tiles[y] = make([]string, width)
		for x, char := range []rune(line) {
			key, err := ml.parseMapCharacter(char, x, y, mapData)
			if err != nil {
				return nil, fmt.Errorf("line %d column %d: %w", row+1, x+1, err)
			}
			mapData.Tiles[y][x] = key
		}
	}

	if mapData.StartX < 0 {
		return nil, fmt.Errorf("map has no start position '+'")
	}
	return mapData, nil
}

// parseMapCharacter resolves one map character to a tile key, recording any
// start marker or mob spawn it carries.
func (ml *MapLoader) parseMapCharacter(char rune, x, y int, mapData *MapData) (string, error) {
	if char == '+' {
		if mapData.StartX >= 0 {
			return "", fmt.Errorf("second start position")
		}
		mapData.StartX, mapData.StartY = x, y
		return ml.tiles.FloorKey(), nil
	}

	if key, ok := ml.tiles.KeyForLetter(char); ok {
		return key, nil
	}

	if unicode.IsLower(char) && ml.mobs != nil {
		if _, mobKey, err := ml.mobs.GetByLetter(string(char)); err == nil {
			mapData.MobSpawns = append(mapData.MobSpawns, MobSpawn{TileX: x, TileY: y, MobKey: mobKey})
			return ml.tiles.FloorKey(), nil
		}
	}

	return "", fmt.Errorf("unknown map character %q", char)
}
