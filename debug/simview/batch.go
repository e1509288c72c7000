package main

import (
	"context"
	"fmt"

	"superduck/internal/ai"
	"superduck/internal/config"
	"superduck/internal/game"
	"superduck/internal/threading/core"
	"superduck/internal/threading/monitoring"
	"superduck/internal/world"
)

type batchResult struct {
	Seed     int64
	Outcome  world.Outcome
	Score    int
	Health   int
	Elapsed  float64
	Searches uint64
	Err      error
}

// runBatch plays n autopilot rounds, seeded baseSeed..baseSeed+n-1, each for
// at most maxSeconds of game time.
func runBatch(ctx context.Context, cfg *config.Config, assets *game.Assets, n int, baseSeed int64, maxSeconds float64, workers int) []batchResult {
	pool := core.NewWorkerPool(workers)
	pool.Start()
	defer pool.Stop()

	results := make([]batchResult, n)
	delta := 1 / float64(cfg.GetTPS())
	pool.ParallelForWithContext(ctx, 0, n, func(i int) {
		seed := baseSeed + int64(i)
		monitor := monitoring.NewPerformanceMonitor()
		r, err := world.NewRound(cfg, assets.Map, assets.Tiles, assets.Mobs, ai.NewRand(seed), monitor)
		if err != nil {
			results[i] = batchResult{Seed: seed, Err: err}
			return
		}
		for r.Outcome() == world.Playing && r.Elapsed() < maxSeconds {
			r.Update(delta, autopilot(r))
		}
		results[i] = batchResult{
			Seed:     seed,
			Outcome:  r.Outcome(),
			Score:    r.Player().Score,
			Health:   r.Player().Health(),
			Elapsed:  r.Elapsed(),
			Searches: monitor.GetSearchMetrics().Searches,
		}
	})
	return results
}

type batchSummary struct {
	Rounds, Won, Lost, Timeout, Failed int
	MeanScore                          float64
}

func summarize(results []batchResult) batchSummary {
	var s batchSummary
	total := 0
	for _, r := range results {
		s.Rounds++
		if r.Err != nil {
			s.Failed++
			continue
		}
		switch r.Outcome {
		case world.Won:
			s.Won++
		case world.Lost:
			s.Lost++
		default:
			s.Timeout++
		}
		total += r.Score
	}
	if played := s.Rounds - s.Failed; played > 0 {
		s.MeanScore = float64(total) / float64(played)
	}
	return s
}

func (s batchSummary) String() string {
	return fmt.Sprintf("rounds=%d won=%d lost=%d timeout=%d failed=%d mean_score=%.1f",
		s.Rounds, s.Won, s.Lost, s.Timeout, s.Failed, s.MeanScore)
}
