package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/depth-chart/internal/domain/depthchart"
)

type positionChart struct {
	mu    sync.RWMutex
	chart *depthchart.Chart
}

// DepthChartRepository keeps every position chart in process memory.
// Mutations on one position are serialized; different positions never contend
// beyond the lookup of their chart.
type DepthChartRepository struct {
	mu     sync.RWMutex
	charts map[depthchart.Position]*positionChart
}

func NewDepthChartRepository() *DepthChartRepository {
	return &DepthChartRepository{charts: make(map[depthchart.Position]*positionChart)}
}

func (r *DepthChartRepository) GetPositionChart(_ context.Context, position depthchart.Position) ([]depthchart.Player, error) {
	pc := r.positionChart(position)

	pc.mu.RLock()
	defer pc.mu.RUnlock()

	return pc.chart.Players(), nil
}

func (r *DepthChartRepository) AddPlayer(ctx context.Context, position depthchart.Position, player depthchart.Player, index int) error {
	return r.Update(ctx, position, func(chart *depthchart.Chart) error {
		chart.Insert(player, index)
		return nil
	})
}

func (r *DepthChartRepository) MovePlayerPosition(ctx context.Context, position depthchart.Position, newIndex int, player depthchart.Player) error {
	return r.Update(ctx, position, func(chart *depthchart.Chart) error {
		chart.Move(player, newIndex)
		return nil
	})
}

func (r *DepthChartRepository) RemovePlayer(ctx context.Context, position depthchart.Position, player depthchart.Player) error {
	return r.Update(ctx, position, func(chart *depthchart.Chart) error {
		chart.Remove(player)
		return nil
	})
}

// GetFullDepthChart snapshots each chart under its own read lock. Charts are
// individually consistent; no cross-position ordering is implied.
func (r *DepthChartRepository) GetFullDepthChart(_ context.Context) (map[depthchart.Position][]depthchart.Player, error) {
	r.mu.RLock()
	charts := make(map[depthchart.Position]*positionChart, len(r.charts))
	for position, pc := range r.charts {
		charts[position] = pc
	}
	r.mu.RUnlock()

	out := make(map[depthchart.Position][]depthchart.Player, len(charts))
	for position, pc := range charts {
		pc.mu.RLock()
		out[position] = pc.chart.Players()
		pc.mu.RUnlock()
	}

	return out, nil
}

func (r *DepthChartRepository) Update(_ context.Context, position depthchart.Position, fn func(chart *depthchart.Chart) error) error {
	pc := r.positionChart(position)

	pc.mu.Lock()
	defer pc.mu.Unlock()

	return fn(pc.chart)
}

func (r *DepthChartRepository) positionChart(position depthchart.Position) *positionChart {
	r.mu.RLock()
	pc, ok := r.charts[position]
	r.mu.RUnlock()
	if ok {
		return pc
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if pc, ok := r.charts[position]; ok {
		return pc
	}
	pc = &positionChart{chart: depthchart.NewChart()}
	r.charts[position] = pc
	return pc
}
