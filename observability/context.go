package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/seqkit/errors"
)

// Run statuses used in metrics and span attributes.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// RunContext holds observability state for one run of a scenario.
type RunContext struct {
	Scenario  string
	RunID     string
	Index     int
	StartTime time.Time
	Metrics   *Metrics
}

// NewRunContext creates a run context. If metrics is nil, metric recording
// is skipped.
func NewRunContext(scenario, runID string, index int, metrics *Metrics) *RunContext {
	return &RunContext{
		Scenario:  scenario,
		RunID:     runID,
		Index:     index,
		StartTime: time.Now(),
		Metrics:   metrics,
	}
}

type runContextKey struct{}

// WithRunContext stores a RunContext in the context.
func WithRunContext(ctx context.Context, rc *RunContext) context.Context {
	return context.WithValue(ctx, runContextKey{}, rc)
}

// RunContextFromContext retrieves the RunContext from context, or nil.
func RunContextFromContext(ctx context.Context) *RunContext {
	if rc, ok := ctx.Value(runContextKey{}).(*RunContext); ok {
		return rc
	}
	return nil
}

// Start opens the run span and stores rc in the returned context.
func (rc *RunContext) Start(ctx context.Context) (context.Context, trace.Span) {
	rc.StartTime = time.Now()
	ctx, span := StartSpan(ctx, SpanBenchRun, trace.WithAttributes(
		attribute.String(AttrScenario, rc.Scenario),
		attribute.String(AttrRunID, rc.RunID),
		attribute.Int(AttrRunIndex, rc.Index),
	))
	return WithRunContext(ctx, rc), span
}

// End closes the span and records the run metrics. elements is only
// counted when err is nil. It returns the elapsed run time.
func (rc *RunContext) End(ctx context.Context, span trace.Span, elements int, err error) time.Duration {
	duration := rc.Duration()

	status := StatusOK
	if err != nil {
		status = StatusError
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String(AttrErrorMessage, err.Error()))
	} else {
		span.SetAttributes(attribute.Int(AttrElements, elements))
	}
	span.SetAttributes(
		attribute.String(AttrStatus, status),
		attribute.Float64(AttrDurationMs, float64(duration.Microseconds())/1000),
	)
	span.End()

	if rc.Metrics != nil {
		rc.Metrics.RecordRun(ctx, rc.Scenario, status, duration)
		if err != nil {
			rc.Metrics.RecordError(ctx, string(errorCode(err)), rc.Scenario)
		} else {
			rc.Metrics.RecordElements(ctx, rc.Scenario, elements)
		}
	}
	return duration
}

// Duration returns the elapsed time since the run started.
func (rc *RunContext) Duration() time.Duration {
	return time.Since(rc.StartTime)
}

func errorCode(err error) errors.ErrorCode {
	if appErr, ok := errors.AsAppError(err); ok {
		return appErr.Code
	}
	return errors.ErrCodeInternal
}
