// Command simview runs a round headless and draws it in the terminal, with an
// autopilot playing the duck. Useful for watching mob pursuit without a GPU.
// With -batch it skips the screen and plays many seeded rounds in parallel.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"
	"unicode"

	"superduck/internal/ai"
	"superduck/internal/config"
	"superduck/internal/game"
	"superduck/internal/logger"
	"superduck/internal/mob"
	"superduck/internal/threading/monitoring"
	"superduck/internal/world"

	"github.com/gdamore/tcell/v2"
)

var (
	styleWall   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleWater  = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleFloor  = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleMob    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	stylePickup = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

type sim struct {
	screen  tcell.Screen
	mobs    *mob.YAMLConfig
	round   *world.Round
	monitor *monitoring.PerformanceMonitor
	paused  bool
	delta   float64
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to config.yaml")
	mapPath := flag.String("map", "", "map to run instead of the configured one")
	seed := flag.Int64("seed", 0, "random seed, 0 for time based")
	batch := flag.Int("batch", 0, "play this many rounds without a screen and print a summary")
	maxSeconds := flag.Float64("seconds", 120, "game-time limit per batch round")
	workers := flag.Int("workers", 0, "batch worker goroutines, 0 for one per CPU")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *mapPath != "" {
		cfg.Assets.Map = *mapPath
	}
	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	// Log lines would tear the terminal screen.
	logger.Redirect(io.Discard)

	assets, err := game.LoadAssets(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *batch > 0 {
		base := *seed
		if base == 0 {
			base = time.Now().UnixNano()
		}
		results := runBatch(context.Background(), cfg, assets, *batch, base, *maxSeconds, *workers)
		for _, r := range results {
			if r.Err != nil {
				fmt.Printf("seed=%d error=%v\n", r.Seed, r.Err)
				continue
			}
			fmt.Printf("seed=%d outcome=%s score=%d health=%d t=%.1fs searches=%d\n",
				r.Seed, r.Outcome, r.Score, r.Health, r.Elapsed, r.Searches)
		}
		fmt.Println(summarize(results))
		return
	}

	monitor := monitoring.NewPerformanceMonitor()
	round, err := world.NewRound(cfg, assets.Map, assets.Tiles, assets.Mobs, ai.NewRand(*seed), monitor)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	s := &sim{screen: screen, mobs: assets.Mobs, round: round, monitor: monitor, delta: 1 / float64(cfg.GetTPS())}
	s.run(time.Second / time.Duration(cfg.GetTPS()))
	screen.Fini()

	fmt.Printf("outcome=%s score=%d health=%d\n", round.Outcome(), round.Player().Score, round.Player().Health())
}

func (s *sim) run(tick time.Duration) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !s.handleInput(ev) {
				return
			}
		case <-ticker.C:
			if !s.paused && s.round.Outcome() == world.Playing {
				s.round.Update(s.delta, autopilot(s.round))
			}
			s.draw()
		}
	}
}

func (s *sim) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				s.paused = !s.paused
			}
		}
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return true
}

// cell maps a world point to a terminal cell, one cell per tile, top row first.
func (s *sim) cell(x, y float64) (int, int) {
	tm := s.round.TileMap()
	_, h := tm.GetWorldBounds()
	tx := int(x) / tm.TileWidth()
	ty := int(y) / tm.TileHeight()
	return tx, h - 1 - ty
}

func (s *sim) draw() {
	s.screen.Clear()
	tm := s.round.TileMap()
	w, h := tm.GetWorldBounds()

	for ty := 0; ty < h; ty++ {
		for tx := 0; tx < w; tx++ {
			ch, style := '.', styleFloor
			switch {
			case tm.IsTileBlocking(tx, ty):
				ch, style = '#', styleWall
			case tm.IsWater(tx, ty):
				ch, style = '~', styleWater
			}
			s.screen.SetContent(tx, h-1-ty, ch, nil, style)
		}
	}

	for _, p := range s.round.Powerups().Pickups() {
		cx, cy := s.cell(p.X, p.Y)
		s.screen.SetContent(cx, cy, '*', nil, stylePickup)
	}
	for _, m := range s.round.Mobs() {
		cx, cy := s.cell(m.Center())
		s.screen.SetContent(cx, cy, s.mobRune(m), nil, styleMob)
	}
	p := s.round.Player()
	cx, cy := s.cell(p.Center())
	s.screen.SetContent(cx, cy, '@', nil, stylePlayer)

	search := s.monitor.GetSearchMetrics()
	lines := []string{
		fmt.Sprintf("hp %d/%d  score %d  %s", p.Health(), p.MaxHealth, p.Score, s.round.CurrentObjective().Describe()),
		fmt.Sprintf("t=%.1fs  mobs %d  searches %d  misses %d  avg %s", s.round.Elapsed(), len(s.round.Mobs()), search.Searches, search.Misses, search.AverageSearchTime),
		"space pause  q/esc quit",
	}
	if s.paused {
		lines[2] = "PAUSED  " + lines[2]
	}
	if o := s.round.Outcome(); o != world.Playing {
		lines[2] = fmt.Sprintf("round %s  %s", o, lines[2])
	}
	for i, line := range lines {
		drawText(s.screen, 0, h+1+i, line, styleText)
	}
	s.screen.Show()
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

// mobRune draws a mob with its map letter, capitalised for bosses.
func (s *sim) mobRune(m *mob.Mob) rune {
	def, err := s.mobs.GetByKey(m.Key)
	if err != nil || def.Letter == "" {
		return '?'
	}
	r := []rune(def.Letter)[0]
	if m.Type == mob.TypeBoss {
		return unicode.ToUpper(r)
	}
	return r
}
