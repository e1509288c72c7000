package main

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"superduck/internal/config"
	"superduck/internal/logger"
	"superduck/internal/mob"
	"superduck/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	windowWidth  = 1200
	windowHeight = 800
	sidebarWidth = 300
)

type mapInfo struct {
	Path string
	Data *world.MapData
	Err  error
}

type viewer struct {
	maps        []mapInfo
	mapIndex    int
	legendLines []string
	sidebarTab  int
	tiles       *world.TileManager
	mobs        *mob.YAMLConfig
}

const (
	tabInfo = iota
	tabLegend
)

func main() {
	ensureRuntimeCWD()

	cfg := config.MustLoadConfig("config.yaml")
	logger.Init(cfg.Logging.Level, cfg.Logging.Format)

	tiles := world.NewTileManager()
	if err := tiles.LoadTileConfig(cfg.GetTilesPath()); err != nil {
		logger.Log.WithError(err).Fatal("failed to load tiles")
	}
	mobs := mob.MustLoadConfig(cfg.GetMobsPath())

	pattern := filepath.Join(filepath.Dir(cfg.GetMapPath()), "*.map")
	if len(os.Args) > 1 {
		pattern = os.Args[1]
	}
	maps, err := loadMaps(pattern, world.NewMapLoader(tiles, mobs))
	if err != nil {
		logger.Log.WithError(err).WithField("pattern", pattern).Fatal("failed to load maps")
	}
	logger.Log.WithField("maps", len(maps)).Info("map viewer ready")

	v := &viewer{
		maps:        maps,
		legendLines: buildLegendLines(tiles, mobs),
		sidebarTab:  tabInfo,
		tiles:       tiles,
		mobs:        mobs,
	}

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Super Duck Map Viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(v); err != nil {
		logger.Log.WithError(err).Fatal("map viewer exited with error")
	}
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		v.sidebarTab = 1 - v.sidebarTab
	}
	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		v.sidebarTab = tabInfo
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		v.sidebarTab = tabLegend
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		v.mapIndex = (v.mapIndex + 1) % len(v.maps)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		v.mapIndex = (v.mapIndex + len(v.maps) - 1) % len(v.maps)
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{15, 15, 22, 255})

	m := v.maps[v.mapIndex]
	if m.Err != nil {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("map %s failed to load: %v", m.Path, m.Err), 16, 16)
		return
	}

	screenW, screenH := screen.Bounds().Dx(), screen.Bounds().Dy()
	padding := 16
	mapAreaW := screenW - sidebarWidth - padding*3
	mapAreaH := screenH - padding*2
	sidebarX := padding + mapAreaW + padding

	drawMapPanel(screen, m, padding, padding, mapAreaW, mapAreaH, v.tiles, v.mobs)
	drawSidebar(screen, m, sidebarX, padding, sidebarWidth, mapAreaH, v.sidebarTab, v.legendLines)
}

func (v *viewer) Layout(_, _ int) (int, int) {
	return windowWidth, windowHeight
}

// drawMapPanel draws the map scaled to fit. Tile row 0 is the bottom of the
// map, so rows are flipped onto the screen.
func drawMapPanel(screen *ebiten.Image, m mapInfo, x, y, w, h int, tiles *world.TileManager, mobs *mob.YAMLConfig) {
	drawFilledRect(screen, x, y, w, h, color.RGBA{20, 20, 35, 255})
	drawRectBorder(screen, x, y, w, h, 2, color.RGBA{70, 70, 90, 255})

	worldW, worldH := m.Data.Width, m.Data.Height
	tileSize := w / worldW
	if alt := (h - 40) / worldH; alt < tileSize {
		tileSize = alt
	}
	if tileSize < 2 {
		tileSize = 2
	}

	originX := x + (w-worldW*tileSize)/2
	originY := y + 40 + (h-40-worldH*tileSize)/2
	rowOf := func(ty int) int { return worldH - 1 - ty }

	for ty := 0; ty < worldH; ty++ {
		for tx := 0; tx < worldW; tx++ {
			c := colorFromRGB(tiles.GetColor(m.Data.Tiles[ty][tx]), 255)
			drawX := originX + tx*tileSize
			drawY := originY + rowOf(ty)*tileSize
			vector.DrawFilledRect(screen, float32(drawX), float32(drawY), float32(tileSize), float32(tileSize), c, false)
		}
	}

	drawTileMarkerCircle(screen, originX, originY, tileSize, m.Data.StartX, rowOf(m.Data.StartY), color.RGBA{50, 200, 255, 255}, true)
	for _, spawn := range m.Data.MobSpawns {
		marker := color.RGBA{230, 80, 80, 255}
		if def, err := mobs.GetByKey(spawn.MobKey); err == nil && def.Type == "boss" {
			marker = color.RGBA{255, 150, 0, 255}
		}
		drawTileMarkerCircle(screen, originX, originY, tileSize, spawn.TileX, rowOf(spawn.TileY), marker, false)
		if def, err := mobs.GetByKey(spawn.MobKey); err == nil {
			drawTileLetter(screen, originX, originY, tileSize, spawn.TileX, rowOf(spawn.TileY), def.Letter)
		}
	}

	ebitenutil.DebugPrintAt(screen, m.Path, x+12, y+8)
	ebitenutil.DebugPrintAt(screen, "Left/Right (or A/D) to switch maps, Esc to quit", x+12, y+24)
}

func drawSidebar(screen *ebiten.Image, m mapInfo, x, y, w, h int, tab int, legendLines []string) {
	drawFilledRect(screen, x, y, w, h, color.RGBA{18, 18, 26, 255})
	drawRectBorder(screen, x, y, w, h, 2, color.RGBA{70, 70, 90, 255})

	tabHeight := 24
	drawSidebarTabs(screen, x, y, w, tabHeight, tab)
	row := y + tabHeight + 12

	lines := legendLines
	if tab == tabInfo {
		lines = mapStats(m.Data)
	}
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x+12, row)
		row += 16
	}
}

// mapStats summarises a map for the info tab.
func mapStats(data *world.MapData) []string {
	counts := make(map[string]int)
	for _, s := range data.MobSpawns {
		counts[s.MobKey]++
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := []string{
		fmt.Sprintf("Tiles: %dx%d", data.Width, data.Height),
		fmt.Sprintf("Start: %d,%d", data.StartX, data.StartY),
		fmt.Sprintf("Mobs: %d", len(data.MobSpawns)),
	}
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("  %s x%d", k, counts[k]))
	}
	return append(lines, "", "Cyan: start  Red: mobs", "Orange: boss")
}

func drawSidebarTabs(screen *ebiten.Image, x, y, w, h int, active int) {
	tabW := w / 2
	infoColor := color.RGBA{40, 40, 55, 255}
	legendColor := color.RGBA{40, 40, 55, 255}
	if active == tabInfo {
		infoColor = color.RGBA{70, 70, 95, 255}
	} else {
		legendColor = color.RGBA{70, 70, 95, 255}
	}
	drawFilledRect(screen, x, y, tabW, h, infoColor)
	drawFilledRect(screen, x+tabW, y, w-tabW, h, legendColor)
	drawRectBorder(screen, x, y, w, h, 2, color.RGBA{70, 70, 90, 255})
	ebitenutil.DebugPrintAt(screen, "Info (1)", x+10, y+6)
	ebitenutil.DebugPrintAt(screen, "Legend (2)", x+tabW+10, y+6)
}

func drawTileMarkerCircle(screen *ebiten.Image, originX, originY, tileSize, tx, row int, clr color.RGBA, stroke bool) {
	centerX := float32(originX + tx*tileSize + tileSize/2)
	centerY := float32(originY + row*tileSize + tileSize/2)
	radius := float32(tileSize) * 0.35
	vector.DrawFilledCircle(screen, centerX, centerY, radius, clr, true)
	if stroke {
		vector.StrokeCircle(screen, centerX, centerY, radius, 1, color.RGBA{255, 255, 255, 255}, true)
	}
}

func drawTileLetter(screen *ebiten.Image, originX, originY, tileSize, tx, row int, letter string) {
	if tileSize < 6 || letter == "" {
		return
	}
	ebitenutil.DebugPrintAt(screen, letter, originX+tx*tileSize+2, originY+row*tileSize+1)
}

func loadMaps(pattern string, loader *world.MapLoader) ([]mapInfo, error) {
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no maps match %s", pattern)
	}
	sort.Strings(paths)

	maps := make([]mapInfo, 0, len(paths))
	for _, path := range paths {
		data, err := loader.LoadMap(path)
		maps = append(maps, mapInfo{Path: path, Data: data, Err: err})
	}
	return maps, nil
}

func buildLegendLines(tiles *world.TileManager, mobs *mob.YAMLConfig) []string {
	lines := []string{"Tiles (letter -> key)"}
	for _, key := range tiles.Keys() {
		def, _ := tiles.GetTileData(key)
		var flags []string
		if def.Solid {
			flags = append(flags, "solid")
		}
		if def.Water {
			flags = append(flags, "water")
		}
		if def.Floor {
			flags = append(flags, "floor")
		}
		line := fmt.Sprintf("  %s -> %s", def.Letter, key)
		if len(flags) > 0 {
			line += " [" + strings.Join(flags, ",") + "]"
		}
		lines = append(lines, line)
	}

	lines = append(lines, "", "Mobs (letter -> key)")
	for _, key := range mobs.Keys() {
		def, _ := mobs.GetByKey(key)
		lines = append(lines, fmt.Sprintf("  %s -> %s (%s, %s)", def.Letter, key, def.Type, def.AI))
	}
	lines = append(lines, "", "  + -> player start")
	return lines
}

func colorFromRGB(rgb [3]int, a uint8) color.RGBA {
	return color.RGBA{uint8(rgb[0]), uint8(rgb[1]), uint8(rgb[2]), a}
}

func drawFilledRect(screen *ebiten.Image, x, y, w, h int, clr color.RGBA) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func drawRectBorder(screen *ebiten.Image, x, y, w, h, thickness int, clr color.RGBA) {
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), float32(thickness), clr, false)
}

// ensureRuntimeCWD moves to the executable's directory when launched from
// somewhere without config.yaml.
func ensureRuntimeCWD() {
	if _, err := os.Stat("config.yaml"); err == nil {
		return
	}
	exe, err := os.Executable()
	if err != nil {
		return
	}
	_ = os.Chdir(filepath.Dir(exe))
}
