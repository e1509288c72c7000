package monitoring

import (
	"sync"
	"testing"
	"time"
)

func TestNewPerformanceMonitor(t *testing.T) {
	pm := NewPerformanceMonitor()

	if pm == nil {
		t.Fatal("NewPerformanceMonitor returned nil")
	}
	if time.Since(pm.startTime) > time.Second {
		t.Error("Start time should be recent")
	}
}

func TestPerformanceMonitorFrameTiming(t *testing.T) {
	pm := NewPerformanceMonitor()

	frameTimer := pm.StartFrame()
	time.Sleep(5 * time.Millisecond)
	frameTimer.EndFrame()

	if pm.frameCount.Load() != 1 {
		t.Errorf("Expected frame count to be 1, got %d", pm.frameCount.Load())
	}
	if pm.frameTime.Load() < uint64(5*time.Millisecond) {
		t.Errorf("Expected frame time of at least 5ms, got %dns", pm.frameTime.Load())
	}
}

func TestObserveSearch(t *testing.T) {
	pm := NewPerformanceMonitor()

	pm.ObserveSearch(10, true, time.Millisecond)
	pm.ObserveSearch(30, false, 3*time.Millisecond)

	m := pm.GetSearchMetrics()
	if m.Searches != 2 || m.Misses != 1 {
		t.Errorf("searches=%d misses=%d, want 2 and 1", m.Searches, m.Misses)
	}
	if m.NodesExpanded != 40 || m.PeakExpanded != 30 {
		t.Errorf("expanded=%d peak=%d, want 40 and 30", m.NodesExpanded, m.PeakExpanded)
	}
	if m.AverageSearchTime != 2*time.Millisecond {
		t.Errorf("average search time = %v, want 2ms", m.AverageSearchTime)
	}
}

func TestObserveSearchConcurrent(t *testing.T) {
	pm := NewPerformanceMonitor()
	var wg sync.WaitGroup
	for i := 1; i <= 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				pm.ObserveSearch(n, true, time.Microsecond)
			}
		}(i)
	}
	wg.Wait()

	m := pm.GetSearchMetrics()
	if m.Searches != 800 {
		t.Errorf("searches = %d, want 800", m.Searches)
	}
	if m.PeakExpanded != 8 {
		t.Errorf("peak = %d, want 8", m.PeakExpanded)
	}
}

func TestDetailedStatsAndReset(t *testing.T) {
	pm := NewPerformanceMonitor()
	pm.ObserveSearch(5, true, time.Microsecond)
	pm.RecordMobsUpdated(3)

	stats := pm.GetDetailedStats()
	if stats["searches"].(uint64) != 1 {
		t.Errorf("searches stat = %v", stats["searches"])
	}
	if stats["mobs_updated"].(uint64) != 3 {
		t.Errorf("mobs_updated stat = %v", stats["mobs_updated"])
	}

	pm.Reset()
	if pm.GetSearchMetrics().Searches != 0 {
		t.Error("Reset should clear search counters")
	}
}
