package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/depth-chart/internal/domain/depthchart"
)

const defaultSeedWorkers = 4

type SeedPositionResult struct {
	Position   depthchart.Position
	Applied    int
	Rejected   int
	Details    []string
	DurationMs int64
}

type SeedResult struct {
	WorkerCount int
	Positions   []SeedPositionResult
}

func (r SeedResult) TotalApplied() int {
	total := 0
	for _, p := range r.Positions {
		total += p.Applied
	}
	return total
}

// Seed loads an initial roster, each position's players appended in list order.
// Positions are independent, so they are applied in parallel on a worker pool.
func (s *DepthChartService) Seed(ctx context.Context, roster map[depthchart.Position][]depthchart.Player, maxWorkers int) (SeedResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DepthChartService.Seed")
	defer span.End()

	positions := make([]depthchart.Position, 0, len(roster))
	for position := range roster {
		if !position.Valid() {
			return SeedResult{}, fmt.Errorf("%w: invalid position %q in roster", ErrInvalidInput, position)
		}
		positions = append(positions, position)
	}

	workerCount := normalizeSeedWorkerCount(maxWorkers, len(positions))
	result := SeedResult{
		WorkerCount: workerCount,
		Positions:   make([]SeedPositionResult, 0, len(positions)),
	}
	if len(positions) == 0 {
		return result, nil
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return SeedResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu       sync.Mutex
		firstErr error
		workers  sync.WaitGroup
	)
	for _, position := range positions {
		position := position
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			row, err := s.seedPosition(ctx, position, roster[position])
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			result.Positions = append(result.Positions, row)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return SeedResult{}, fmt.Errorf("submit seed task to worker pool: %w", err)
		}
	}
	workers.Wait()

	if firstErr != nil {
		return SeedResult{}, firstErr
	}

	sort.SliceStable(result.Positions, func(i, j int) bool {
		return result.Positions[i].Position < result.Positions[j].Position
	})

	s.logger.InfoContext(ctx, "depth chart seeded",
		"positions", len(result.Positions),
		"players", result.TotalApplied(),
		"workers", workerCount,
	)
	return result, nil
}

func (s *DepthChartService) seedPosition(ctx context.Context, position depthchart.Position, players []depthchart.Player) (SeedPositionResult, error) {
	start := time.Now()

	entries := make([]BulkPlayerEntry, 0, len(players))
	for _, p := range players {
		entries = append(entries, BulkPlayerEntry{Player: p, Depth: depthchart.EndOfChart})
	}

	results, err := s.AddPlayersBulk(ctx, position, entries)
	if err != nil {
		return SeedPositionResult{}, fmt.Errorf("seed position %s: %w", position, err)
	}

	row := SeedPositionResult{Position: position}
	for _, r := range results {
		if r.IsSuccess {
			row.Applied++
			continue
		}
		row.Rejected++
		row.Details = append(row.Details, r.ErrorDetails...)
	}
	row.DurationMs = time.Since(start).Milliseconds()
	return row, nil
}

func normalizeSeedWorkerCount(requested, tasks int) int {
	count := requested
	if count <= 0 {
		count = defaultSeedWorkers
	}
	if tasks > 0 && count > tasks {
		count = tasks
	}
	if count < 1 {
		count = 1
	}
	return count
}
