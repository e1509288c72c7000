package game

import (
	"time"

	"superduck/internal/logger"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

// maybeLogPerf writes a performance snapshot every perf_log_seconds when
// debug.perf_log is on.
func (g *Game) maybeLogPerf() {
	if !g.config.Debug.PerfLog {
		return
	}
	now := time.Now()
	interval := time.Duration(g.config.GetPerfLogSeconds() * float64(time.Second))
	if g.lastPerfLog.IsZero() {
		g.lastPerfLog = now
		return
	}
	if now.Sub(g.lastPerfLog) < interval {
		return
	}
	g.lastPerfLog = now
	logger.Log.WithFields(perfFields(g.monitor.GetDetailedStats(), ebiten.ActualTPS(), len(g.round.Mobs()))).Info("perf")
}

// perfFields picks the log-worthy subset of the monitor's stats.
func perfFields(stats map[string]interface{}, tps float64, mobs int) logrus.Fields {
	return logrus.Fields{
		"tps":              tps,
		"mobs":             mobs,
		"frame_ms":         getPerfFloat(stats, "avg_frame_time_ms"),
		"entity_update_ms": getPerfFloat(stats, "last_entity_update_ms"),
		"searches":         getPerfUint(stats, "searches"),
		"search_misses":    getPerfUint(stats, "search_misses"),
		"nodes_expanded":   getPerfUint(stats, "nodes_expanded"),
		"avg_search_us":    getPerfFloat(stats, "avg_search_time_us"),
		"memory_alloc_mb":  getPerfUint(stats, "memory_alloc_mb"),
		"goroutines":       getPerfInt(stats, "goroutines"),
	}
}

func getPerfFloat(stats map[string]interface{}, key string) float64 {
	if v, ok := stats[key].(float64); ok {
		return v
	}
	return 0
}

func getPerfInt(stats map[string]interface{}, key string) int {
	if v, ok := stats[key].(int); ok {
		return v
	}
	return 0
}

func getPerfUint(stats map[string]interface{}, key string) uint64 {
	if v, ok := stats[key].(uint64); ok {
		return v
	}
	return 0
}
