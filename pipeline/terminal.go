package pipeline

import (
	"context"
	"iter"
)

// Runnable is a drained pipeline waiting to be executed.
type Runnable struct {
	run func(ctx context.Context) error
}

// Run pulls the pipeline to exhaustion, the first error, or cancellation.
func (r *Runnable) Run(ctx context.Context) error {
	return r.run(ctx)
}

// Drain creates a Runnable that pulls all values and sends each to sink.
func Drain[T any](p *Pipeline[T], sink func(context.Context, T) error) *Runnable {
	return &Runnable{
		run: func(ctx context.Context) error {
			return pull(ctx, p, func(v T) error { return sink(ctx, v) })
		},
	}
}

// ForEach runs p once and calls fn for every value.
func ForEach[T any](ctx context.Context, p *Pipeline[T], fn func(context.Context, T) error) error {
	return Drain(p, fn).Run(ctx)
}

// Collect runs the pipeline from a fresh cursor and returns all values as a
// slice, in the order they were produced. On error the values gathered so
// far are returned alongside it.
//
// Collect never returns on an infinite source without a Limit stage.
func Collect[T any](ctx context.Context, p *Pipeline[T]) ([]T, error) {
	var out []T
	err := pull(ctx, p, func(v T) error {
		out = append(out, v)
		return nil
	})
	return out, err
}

// All adapts a run of p to a range-over-func sequence. Each call to the
// returned sequence starts a fresh run. An error ends the sequence after
// being yielded once with a zero value; breaking out of the loop closes
// the underlying iterator.
//
//	for v, err := range pipeline.All(ctx, p) {
//	    if err != nil {
//	        return err
//	    }
//	    use(v)
//	}
func All[T any](ctx context.Context, p *Pipeline[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		stop := stopErr{}
		err := pull(ctx, p, func(v T) error {
			if !yield(v, nil) {
				return stop
			}
			return nil
		})
		if err != nil && err != error(stop) {
			var zero T
			yield(zero, err)
		}
	}
}

// stopErr signals that the consumer of All left the loop early.
type stopErr struct{}

func (stopErr) Error() string { return "pipeline: iteration stopped" }

// pull runs p once on a fresh cursor, handing every value to fn, and closes
// the cursor on return.
func pull[T any](ctx context.Context, p *Pipeline[T], fn func(T) error) error {
	it := p.create(ctx)
	defer it.Close()
	for {
		v, ok, err := it.Next(ctx)
		if err != nil || !ok {
			return err
		}
		if err := fn(v); err != nil {
			return err
		}
	}
}
