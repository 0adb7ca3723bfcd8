package observability

import (
	"context"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riskibarqy/depth-chart/internal/config"
	"github.com/riskibarqy/depth-chart/internal/domain/depthchart"
	"go.opentelemetry.io/otel/attribute"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

const meterName = "depth-chart/internal/observability"

// OperationKey identifies one recorded chart operation outcome.
type OperationKey struct {
	Operation string
	Position  depthchart.Position
	Outcome   string
}

// Metrics counts depth chart operations. It is safe for concurrent use and
// a nil *Metrics records nothing.
type Metrics struct {
	mu         sync.Mutex
	counts     map[OperationKey]int64
	operations metric.Int64Counter
}

// NewMetrics returns an in-process recorder with no exporter attached.
func NewMetrics() *Metrics {
	return &Metrics{counts: make(map[OperationKey]int64)}
}

// SetupMetrics builds an OpenTelemetry meter provider backed by a Prometheus
// registry. The returned handler is nil when metrics are disabled.
func SetupMetrics(ctx context.Context, cfg config.Config) (*Metrics, http.Handler, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }
	if !cfg.MetricsEnabled {
		return NewMetrics(), nil, noop, nil
	}

	reg := prometheus.NewRegistry()
	exporter, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, noop, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
		),
	)
	if err != nil {
		return nil, nil, noop, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
		sdkmetric.WithResource(res),
	)

	m, err := newMetricsFromProvider(provider)
	if err != nil {
		_ = provider.Shutdown(ctx)
		return nil, nil, noop, err
	}

	return m, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), provider.Shutdown, nil
}

func newMetricsFromProvider(provider metric.MeterProvider) (*Metrics, error) {
	meter := provider.Meter(meterName)
	operations, err := meter.Int64Counter(
		"depth_chart_operations",
		metric.WithDescription("Depth chart mutations grouped by operation, position and outcome."),
	)
	if err != nil {
		return nil, err
	}

	m := NewMetrics()
	m.operations = operations
	return m, nil
}

// RecordOperation implements usecase.OperationRecorder.
func (m *Metrics) RecordOperation(ctx context.Context, operation string, position depthchart.Position, outcome string) {
	if m == nil {
		return
	}

	m.mu.Lock()
	m.counts[OperationKey{Operation: operation, Position: position, Outcome: outcome}]++
	m.mu.Unlock()

	if m.operations != nil {
		m.operations.Add(ctx, 1, metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("position", string(position)),
			attribute.String("outcome", outcome),
		))
	}
}

// Count returns how many times the given outcome was recorded.
func (m *Metrics) Count(key OperationKey) int64 {
	if m == nil {
		return 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[key]
}
