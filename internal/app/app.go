package app

import (
	"context"
	"net/http"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/depth-chart/internal/config"
	"github.com/riskibarqy/depth-chart/internal/domain/depthchart"
	"github.com/riskibarqy/depth-chart/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/depth-chart/internal/interfaces/httpapi"
	"github.com/riskibarqy/depth-chart/internal/observability"
	"github.com/riskibarqy/depth-chart/internal/platform/logging"
	"github.com/riskibarqy/depth-chart/internal/usecase"
)

// NewHTTPServer wires the depth chart store, service and router, applies the
// configured initial roster, and returns the server plus a cleanup func for
// the metrics provider.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return nil, nil, crerr.New("http server addr cannot be empty")
	}

	metrics, metricsHandler, shutdownMetrics, err := observability.SetupMetrics(ctx, cfg)
	if err != nil {
		return nil, nil, crerr.Wrap(err, "setup metrics")
	}

	repo := memory.NewDepthChartRepository()
	depthChartSvc := usecase.NewDepthChartService(repo, metrics, logger)

	roster, err := initialRoster(cfg)
	if err != nil {
		_ = shutdownMetrics(ctx)
		return nil, nil, err
	}
	if len(roster) > 0 {
		seeded, err := depthChartSvc.Seed(ctx, roster, cfg.DepthChartSeedWorkers)
		if err != nil {
			_ = shutdownMetrics(ctx)
			return nil, nil, crerr.Wrap(err, "seed depth chart")
		}
		for _, row := range seeded.Positions {
			if row.Rejected > 0 {
				logger.Warn("seed entries rejected",
					"position", row.Position,
					"rejected", row.Rejected,
					"details", row.Details,
				)
			}
		}
	}

	handler := httpapi.NewHandler(depthChartSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins, metricsHandler)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, shutdownMetrics, nil
}

func initialRoster(cfg config.Config) (map[depthchart.Position][]depthchart.Player, error) {
	switch {
	case cfg.DepthChartSeedFile != "":
		return LoadRosterFile(cfg.DepthChartSeedFile)
	case cfg.DepthChartSeedDemo:
		return memory.SeedDepthChart(), nil
	default:
		return nil, nil
	}
}
