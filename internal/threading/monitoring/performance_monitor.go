package monitoring

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// PerformanceMonitor tracks frame and pathfinding cost. All counters are
// atomics so a debug tool may read them from another goroutine.
type PerformanceMonitor struct {
	// Frame metrics
	frameCount atomic.Uint64
	frameTime  atomic.Uint64 // nanoseconds, last frame

	// Entity metrics
	entityUpdateTime atomic.Uint64 // nanoseconds, last mob pass
	mobsUpdated      atomic.Uint64

	// Pathfinding metrics
	searches      atomic.Uint64
	searchMisses  atomic.Uint64
	nodesExpanded atomic.Uint64
	searchTime    atomic.Uint64 // nanoseconds, cumulative
	peakExpanded  atomic.Uint64

	// Statistics
	mutex        sync.RWMutex
	avgFrameTime float64
	startTime    time.Time
}

// NewPerformanceMonitor creates a new performance monitor
func NewPerformanceMonitor() *PerformanceMonitor {
	return &PerformanceMonitor{startTime: time.Now()}
}

// FrameTimer helps measure frame timing
type FrameTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
}

// StartFrame begins frame timing
func (pm *PerformanceMonitor) StartFrame() *FrameTimer {
	return &FrameTimer{
		monitor:   pm,
		startTime: time.Now(),
	}
}

// EndFrame completes frame timing and folds it into a running average.
func (ft *FrameTimer) EndFrame() {
	frameTime := time.Since(ft.startTime)
	ft.monitor.frameTime.Store(uint64(frameTime.Nanoseconds()))
	count := ft.monitor.frameCount.Add(1)

	ft.monitor.mutex.Lock()
	ft.monitor.avgFrameTime += (float64(frameTime.Nanoseconds()) - ft.monitor.avgFrameTime) / float64(count)
	ft.monitor.mutex.Unlock()
}

// ObserveSearch records one pathfinding search.
func (pm *PerformanceMonitor) ObserveSearch(expanded int, found bool, elapsed time.Duration) {
	pm.searches.Add(1)
	if !found {
		pm.searchMisses.Add(1)
	}
	n := uint64(expanded)
	pm.nodesExpanded.Add(n)
	pm.searchTime.Add(uint64(elapsed.Nanoseconds()))
	for {
		peak := pm.peakExpanded.Load()
		if n <= peak || pm.peakExpanded.CompareAndSwap(peak, n) {
			break
		}
	}
}

// ProfiledFunction wraps a function with performance timing
func (pm *PerformanceMonitor) ProfiledFunction(name string, fn func()) time.Duration {
	start := time.Now()
	fn()
	duration := time.Since(start)

	switch name {
	case "entity_update":
		pm.entityUpdateTime.Store(uint64(duration.Nanoseconds()))
	}

	return duration
}

// RecordMobsUpdated adds to the count of mob updates.
func (pm *PerformanceMonitor) RecordMobsUpdated(n int) {
	pm.mobsUpdated.Add(uint64(n))
}

// SearchMetrics summarizes pathfinding work.
type SearchMetrics struct {
	Searches          uint64
	Misses            uint64
	NodesExpanded     uint64
	PeakExpanded      uint64
	AverageSearchTime time.Duration
}

// GetSearchMetrics returns pathfinding totals since the last reset.
func (pm *PerformanceMonitor) GetSearchMetrics() SearchMetrics {
	m := SearchMetrics{
		Searches:      pm.searches.Load(),
		Misses:        pm.searchMisses.Load(),
		NodesExpanded: pm.nodesExpanded.Load(),
		PeakExpanded:  pm.peakExpanded.Load(),
	}
	if m.Searches > 0 {
		m.AverageSearchTime = time.Duration(pm.searchTime.Load() / m.Searches)
	}
	return m
}

// GetDetailedStats returns detailed performance statistics
func (pm *PerformanceMonitor) GetDetailedStats() map[string]interface{} {
	pm.mutex.RLock()
	avgFrame := pm.avgFrameTime
	pm.mutex.RUnlock()

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	search := pm.GetSearchMetrics()
	fps := 0.0
	if ft := pm.frameTime.Load(); ft > 0 {
		fps = 1e9 / float64(ft)
	}

	return map[string]interface{}{
		"uptime_seconds":        time.Since(pm.startTime).Seconds(),
		"frame_count":           pm.frameCount.Load(),
		"avg_frame_time_ms":     avgFrame / 1e6,
		"last_frame_time_ms":    float64(pm.frameTime.Load()) / 1e6,
		"current_fps":           fps,
		"last_entity_update_ms": float64(pm.entityUpdateTime.Load()) / 1e6,
		"mobs_updated":          pm.mobsUpdated.Load(),
		"searches":              search.Searches,
		"search_misses":         search.Misses,
		"nodes_expanded":        search.NodesExpanded,
		"peak_nodes_expanded":   search.PeakExpanded,
		"avg_search_time_us":    float64(search.AverageSearchTime.Nanoseconds()) / 1e3,
		"memory_alloc_mb":       memStats.Alloc / 1024 / 1024,
		"gc_cycles":             memStats.NumGC,
		"goroutines":            runtime.NumGoroutine(),
	}
}

// Reset resets all performance counters
func (pm *PerformanceMonitor) Reset() {
	pm.frameCount.Store(0)
	pm.frameTime.Store(0)
	pm.entityUpdateTime.Store(0)
	pm.mobsUpdated.Store(0)
	pm.searches.Store(0)
	pm.searchMisses.Store(0)
	pm.nodesExpanded.Store(0)
	pm.searchTime.Store(0)
	pm.peakExpanded.Store(0)

	pm.mutex.Lock()
	pm.avgFrameTime = 0
	pm.startTime = time.Now()
	pm.mutex.Unlock()
}
