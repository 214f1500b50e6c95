package logger

import (
	"time"
)

// Standard field key constants for structured logging.
const (
	FieldComponent = "component"
	FieldRunID     = "run_id"
	FieldRun       = "run"
	FieldScenario  = "scenario"
	FieldElements  = "elements"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
)

// Fields builds a field map from alternating key-value pairs.
//
//	logger.Info("done", logger.Fields("scenario", "quicksort", "elements", 5000))
func Fields(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields creates fields for an operation that failed.
func ErrorFields(op string, err error) map[string]any {
	return map[string]any{
		FieldOperation: op,
		FieldError:     err.Error(),
	}
}

// DurationFields creates fields for a timed operation.
func DurationFields(op string, d time.Duration) map[string]any {
	return map[string]any{
		FieldOperation: op,
		FieldDuration:  float64(d.Microseconds()) / 1000,
	}
}

// RunFields creates fields for one benchmark run.
func RunFields(run int, elements int, d time.Duration) map[string]any {
	return map[string]any{
		FieldRun:      run,
		FieldElements: elements,
		FieldDuration: float64(d.Microseconds()) / 1000,
	}
}
