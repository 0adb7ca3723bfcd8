package depthchart

import "context"

// Repository owns every position chart. It stores mechanically and never
// checks business rules; the service is the gatekeeper.
type Repository interface {
	// GetPositionChart returns a snapshot, creating an empty chart when absent.
	GetPositionChart(ctx context.Context, position Position) ([]Player, error)
	AddPlayer(ctx context.Context, position Position, player Player, index int) error
	MovePlayerPosition(ctx context.Context, position Position, newIndex int, player Player) error
	RemovePlayer(ctx context.Context, position Position, player Player) error
	GetFullDepthChart(ctx context.Context) (map[Position][]Player, error)
	// Update runs fn against the live chart while holding that position's lock.
	Update(ctx context.Context, position Position, fn func(chart *Chart) error) error
}
