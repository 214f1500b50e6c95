package pipeline

import "context"

// Iterator is a pull cursor over one run of a pipeline.
type Iterator[T any] interface {
	// Next returns the next value, or (zero, false, nil) once the run is
	// exhausted. A non-nil error ends the run.
	Next(ctx context.Context) (T, bool, error)
	// Close releases the cursor and everything upstream of it.
	Close() error
}

// Generator produces the next raw value of a sequence on every call.
// A Generator is stateful and is owned by the pipeline that wraps it.
type Generator[T any] func(ctx context.Context) (T, error)

// Pipeline is a lazy description of a sequence. Stages return a new
// Pipeline wrapping the previous one and never evaluate anything; every
// terminal (Collect, Drain, ForEach, All, Iter) builds a fresh cursor chain,
// so one Pipeline value can be run any number of times.
type Pipeline[T any] struct {
	create func(ctx context.Context) Iterator[T]
}

// Iter starts a run and hands back its cursor. The caller must Close it.
func (p *Pipeline[T]) Iter(ctx context.Context) Iterator[T] {
	return p.create(ctx)
}
