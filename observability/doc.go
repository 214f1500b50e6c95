// Package observability wires OpenTelemetry tracing and metrics for seqkit
// tools.
//
// Setup installs OTLP HTTP exporters when telemetry is enabled:
//
//	shutdown, err := observability.Setup(ctx, cfg.Observability, "seqbench", version.Version, cfg.Environment)
//	defer shutdown(ctx)
//
// The benchmark runner records one span and a set of metrics per run:
//
//	metrics, err := observability.NewMetrics(observability.Meter("seqbench"))
//	rc := observability.NewRunContext("quicksort", runID, i, metrics)
//	ctx, span := rc.Start(ctx)
//	elapsed := rc.End(ctx, span, len(sorted), err)
package observability
