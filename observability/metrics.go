package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Instrument names.
const (
	MetricRunTotal       = "run.total"
	MetricRunDuration    = "run.duration"
	MetricElementsSorted = "elements.sorted"
	MetricErrorTotal     = "error.total"
)

// Metrics holds the instruments recorded by the benchmark runner.
type Metrics struct {
	runs     metric.Int64Counter
	duration metric.Float64Histogram
	elements metric.Int64Counter
	errors   metric.Int64Counter
}

// NewMetrics creates the runner's instruments on meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	var (
		m   Metrics
		err error
	)
	counters := []struct {
		dst  *metric.Int64Counter
		name string
		desc string
	}{
		{&m.runs, MetricRunTotal, "Scenario runs by status"},
		{&m.elements, MetricElementsSorted, "Elements produced and sorted by successful runs"},
		{&m.errors, MetricErrorTotal, "Failed runs by error code and component"},
	}
	for _, c := range counters {
		if *c.dst, err = meter.Int64Counter(c.name, metric.WithDescription(c.desc)); err != nil {
			return nil, fmt.Errorf("creating %s counter: %w", c.name, err)
		}
	}

	m.duration, err = meter.Float64Histogram(MetricRunDuration,
		metric.WithDescription("Wall time of one scenario run"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricRunDuration, err)
	}
	return &m, nil
}

// RecordRun records one finished run of scenario with its outcome.
func (m *Metrics) RecordRun(ctx context.Context, scenario, status string, d time.Duration) {
	byScenario := attribute.String(AttrScenario, scenario)
	m.runs.Add(ctx, 1, metric.WithAttributes(byScenario, attribute.String(AttrStatus, status)))
	m.duration.Record(ctx, float64(d.Microseconds())/1000, metric.WithAttributes(byScenario))
}

// RecordElements adds n to the sorted-elements counter.
func (m *Metrics) RecordElements(ctx context.Context, scenario string, n int) {
	m.elements.Add(ctx, int64(n), metric.WithAttributes(attribute.String(AttrScenario, scenario)))
}

// RecordError counts a failure under its error code and the component that
// raised it.
func (m *Metrics) RecordError(ctx context.Context, code, component string) {
	m.errors.Add(ctx, 1, metric.WithAttributes(
		attribute.String("code", code),
		attribute.String("component", component),
	))
}
