package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/riskibarqy/depth-chart/internal/domain/depthchart"
	"github.com/riskibarqy/depth-chart/internal/platform/logging"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/otel/attribute"
)

// AddPlayerInput asks for player to be placed at Depth in Position's chart.
// A negative Depth means the end of the chart.
type AddPlayerInput struct {
	Position depthchart.Position
	Player   depthchart.Player
	Depth    int
}

// BulkPlayerEntry is one player/depth pair of a bulk add.
type BulkPlayerEntry struct {
	Player depthchart.Player
	Depth  int
}

// OperationRecorder receives one event per chart operation outcome.
type OperationRecorder interface {
	RecordOperation(ctx context.Context, operation string, position depthchart.Position, outcome string)
}

type nopRecorder struct{}

func (nopRecorder) RecordOperation(context.Context, string, depthchart.Position, string) {}

const (
	OperationAddOrMove = "add_or_move"
	OperationBulkAdd   = "bulk_add"
	OperationRemove    = "remove"

	OutcomeAdded    = "added"
	OutcomeMoved    = "moved"
	OutcomeNoop     = "noop"
	OutcomeRejected = "rejected"
	OutcomeRemoved  = "removed"
	OutcomeNotFound = "not_found"
)

type DepthChartService struct {
	repo     depthchart.Repository
	recorder OperationRecorder
	logger   *logging.Logger
}

func NewDepthChartService(repo depthchart.Repository, recorder OperationRecorder, logger *logging.Logger) *DepthChartService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &DepthChartService{
		repo:     repo,
		recorder: recorder,
		logger:   logger,
	}
}

// AddOrMovePlayer inserts a new player at the requested depth or moves an
// existing one there. Out-of-range depths are reported in the result, not as errors.
func (s *DepthChartService) AddOrMovePlayer(ctx context.Context, input AddPlayerInput) (depthchart.OperationResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DepthChartService.AddOrMovePlayer")
	defer span.End()

	if err := validatePositionAndPlayer(input.Position, input.Player); err != nil {
		return depthchart.OperationResult{}, err
	}

	var (
		result  depthchart.OperationResult
		outcome string
	)
	err := s.repo.Update(ctx, input.Position, func(chart *depthchart.Chart) error {
		result, outcome = addOrMove(chart, input.Player, input.Depth)
		return nil
	})
	if err != nil {
		return depthchart.OperationResult{}, fmt.Errorf("update position chart: %w", err)
	}

	span.SetAttributes(
		attribute.String("depth_chart.position", string(input.Position)),
		attribute.String("depth_chart.outcome", outcome),
	)
	s.recorder.RecordOperation(ctx, OperationAddOrMove, input.Position, outcome)
	if !result.IsValid {
		s.logger.WarnContext(ctx, "depth chart request rejected",
			"position", input.Position,
			"player_number", input.Player.Number,
			"depth", input.Depth,
			"details", result.ErrorDetails,
		)
		return result, nil
	}

	s.logger.InfoContext(ctx, "depth chart updated",
		"position", input.Position,
		"player_number", input.Player.Number,
		"depth", input.Depth,
		"outcome", outcome,
	)
	return result, nil
}

// AddPlayersBulk applies every entry in order through the same bounds-checked
// algorithm as AddOrMovePlayer, holding the position lock for the whole batch.
// Rejected entries are skipped; the returned results line up with entries.
func (s *DepthChartService) AddPlayersBulk(ctx context.Context, position depthchart.Position, entries []BulkPlayerEntry) ([]depthchart.OperationResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DepthChartService.AddPlayersBulk")
	defer span.End()

	if !position.Valid() {
		return nil, fmt.Errorf("%w: invalid position %q", ErrInvalidInput, position)
	}
	for i, entry := range entries {
		if err := entry.Player.Validate(); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrInvalidInput, i, err)
		}
	}

	results := make([]depthchart.OperationResult, len(entries))
	outcomes := make([]string, len(entries))
	err := s.repo.Update(ctx, position, func(chart *depthchart.Chart) error {
		for i, entry := range entries {
			results[i], outcomes[i] = addOrMove(chart, entry.Player, entry.Depth)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update position chart: %w", err)
	}

	rejected := 0
	for _, outcome := range outcomes {
		if outcome == OutcomeRejected {
			rejected++
		}
		s.recorder.RecordOperation(ctx, OperationBulkAdd, position, outcome)
	}

	s.logger.InfoContext(ctx, "depth chart bulk applied",
		"position", position,
		"entries", len(entries),
		"rejected", rejected,
	)
	return results, nil
}

// GetBackups returns every player ranked below player. Unknown players and
// empty charts yield an empty list.
func (s *DepthChartService) GetBackups(ctx context.Context, position depthchart.Position, player depthchart.Player) ([]depthchart.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DepthChartService.GetBackups")
	defer span.End()

	if !position.Valid() {
		return nil, fmt.Errorf("%w: invalid position %q", ErrInvalidInput, position)
	}

	players, err := s.repo.GetPositionChart(ctx, position)
	if err != nil {
		return nil, fmt.Errorf("get position chart: %w", err)
	}

	chart := depthchart.NewChart(players...)
	return chart.After(chart.IndexOf(player.Number)), nil
}

// RemovePlayer removes player by number and returns the stored entry, or an
// empty list when the player is not on the chart.
func (s *DepthChartService) RemovePlayer(ctx context.Context, position depthchart.Position, player depthchart.Player) ([]depthchart.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DepthChartService.RemovePlayer")
	defer span.End()

	if !position.Valid() {
		return nil, fmt.Errorf("%w: invalid position %q", ErrInvalidInput, position)
	}

	removed := []depthchart.Player{}
	err := s.repo.Update(ctx, position, func(chart *depthchart.Chart) error {
		if stored, ok := chart.Remove(player); ok {
			removed = append(removed, stored)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update position chart: %w", err)
	}

	if len(removed) == 0 {
		s.recorder.RecordOperation(ctx, OperationRemove, position, OutcomeNotFound)
		return removed, nil
	}

	s.recorder.RecordOperation(ctx, OperationRemove, position, OutcomeRemoved)
	s.logger.InfoContext(ctx, "player removed from depth chart",
		"position", position,
		"player_number", removed[0].Number,
	)
	return removed, nil
}

func (s *DepthChartService) GetPositionChart(ctx context.Context, position depthchart.Position) ([]depthchart.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DepthChartService.GetPositionChart")
	defer span.End()

	if !position.Valid() {
		return nil, fmt.Errorf("%w: invalid position %q", ErrInvalidInput, position)
	}

	players, err := s.repo.GetPositionChart(ctx, position)
	if err != nil {
		return nil, fmt.Errorf("get position chart: %w", err)
	}
	return players, nil
}

func (s *DepthChartService) GetFullDepthChart(ctx context.Context) (map[depthchart.Position][]depthchart.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DepthChartService.GetFullDepthChart")
	defer span.End()

	charts, err := s.repo.GetFullDepthChart(ctx)
	if err != nil {
		return nil, fmt.Errorf("get full depth chart: %w", err)
	}
	return charts, nil
}

// RenderFullDepthChart formats the whole chart one position per line, e.g.
//
//	QB - (#12, Tom Brady), (#11, Blaine Gabbert)
//
// Positions follow depthchart.OrderedPositions; empty charts are skipped.
func (s *DepthChartService) RenderFullDepthChart(ctx context.Context) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DepthChartService.RenderFullDepthChart")
	defer span.End()

	charts, err := s.GetFullDepthChart(ctx)
	if err != nil {
		return "", err
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for _, position := range depthchart.OrderedPositions {
		players := charts[position]
		if len(players) == 0 {
			continue
		}

		_, _ = buf.WriteString(string(position))
		_, _ = buf.WriteString(" - ")
		for i, p := range players {
			if i > 0 {
				_, _ = buf.WriteString(", ")
			}
			_, _ = buf.WriteString("(#")
			_, _ = buf.WriteString(strconv.Itoa(p.Number))
			_, _ = buf.WriteString(", ")
			_, _ = buf.WriteString(p.Name)
			_ = buf.WriteByte(')')
		}
		_ = buf.WriteByte('\n')
	}

	return buf.String(), nil
}

func addOrMove(chart *depthchart.Chart, player depthchart.Player, depth int) (depthchart.OperationResult, string) {
	n := chart.Len()
	current := chart.IndexOf(player.Number)

	if current == -1 {
		if depth > n {
			return depthchart.Rejected(fmt.Sprintf(
				"New position depth '%d' exceeds current position chart depth '%d'", depth, n,
			)), OutcomeRejected
		}
		chart.Insert(player, depth)
		return depthchart.Succeeded(), OutcomeAdded
	}

	if depth == current {
		return depthchart.Succeeded(), OutcomeNoop
	}
	// A move keeps the chart length, so the last valid depth is n-1.
	if depth >= n {
		return depthchart.Rejected(fmt.Sprintf(
			"Player number '%d' already exists at position '%d'. Cannot move to '%d' as it would exceed current position chart depth '%d'",
			player.Number, current, depth, n-1,
		)), OutcomeRejected
	}

	chart.Move(player, depth)
	return depthchart.Succeeded(), OutcomeMoved
}

func validatePositionAndPlayer(position depthchart.Position, player depthchart.Player) error {
	if !position.Valid() {
		return fmt.Errorf("%w: invalid position %q", ErrInvalidInput, position)
	}
	if err := player.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}
