package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/depth-chart/internal/domain/depthchart"
	depthchartmock "github.com/riskibarqy/depth-chart/internal/mocks/domain/depthchart"
	"github.com/riskibarqy/depth-chart/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

func TestDepthChartService_GetBackups_UsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), "trace_id", "trace-123")
	repo := depthchartmock.NewRepository(t)
	service := NewDepthChartService(repo, nil, logging.NewNop())

	repo.
		On("GetPositionChart", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), depthchart.PositionQuarterback).
		Return([]depthchart.Player{
			{Number: 12, Name: "Tom"},
			{Number: 11, Name: "Blaine"},
			{Number: 2, Name: "Kyle"},
		}, nil).
		Once()

	got, err := service.GetBackups(ctx, depthchart.PositionQuarterback, depthchart.Player{Number: 11})
	if err != nil {
		t.Fatalf("get backups: %v", err)
	}
	if len(got) != 1 || got[0].Number != 2 {
		t.Fatalf("unexpected backups: %+v", got)
	}
}

func TestDepthChartService_GetFullDepthChart_ErrorUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := depthchartmock.NewRepository(t)
	service := NewDepthChartService(repo, nil, logging.NewNop())
	errStore := errors.New("boom")

	repo.
		On("GetFullDepthChart", mock.Anything).
		Return(nil, errStore).
		Once()

	if _, err := service.GetFullDepthChart(ctx); !errors.Is(err, errStore) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestDepthChartService_RemovePlayer_RunsInsideUpdateUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := depthchartmock.NewRepository(t)
	service := NewDepthChartService(repo, nil, logging.NewNop())
	chart := depthchart.NewChart(depthchart.Player{Number: 12, Name: "Tom"})

	repo.
		On("Update", mock.Anything, depthchart.PositionQuarterback, mock.Anything).
		Return(func(_ context.Context, _ depthchart.Position, fn func(*depthchart.Chart) error) error {
			return fn(chart)
		}).
		Once()

	removed, err := service.RemovePlayer(ctx, depthchart.PositionQuarterback, depthchart.Player{Number: 12})
	if err != nil {
		t.Fatalf("remove player: %v", err)
	}
	if len(removed) != 1 || removed[0].Name != "Tom" {
		t.Fatalf("unexpected removed players: %+v", removed)
	}
	if chart.Len() != 0 {
		t.Fatalf("expected chart to be empty, got %d", chart.Len())
	}
}
