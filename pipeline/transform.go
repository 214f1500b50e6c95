package pipeline

import "context"

// stage derives a pipeline whose iterator wraps a fresh upstream cursor on
// every run.
func stage[I, O any](p *Pipeline[I], wrap func(Iterator[I]) Iterator[O]) *Pipeline[O] {
	return &Pipeline[O]{
		create: func(ctx context.Context) Iterator[O] {
			return wrap(p.create(ctx))
		},
	}
}

// upstream is embedded by single-input iterators; closing the stage closes
// its source.
type upstream[T any] struct {
	source Iterator[T]
}

func (u upstream[T]) Close() error { return u.source.Close() }

// Map transforms each value using fn. Values keep their upstream order.
// fn should be free of side effects so repeated runs stay identical.
func Map[I, O any](p *Pipeline[I], fn func(context.Context, I) (O, error)) *Pipeline[O] {
	return stage(p, func(src Iterator[I]) Iterator[O] {
		return &mapIter[I, O]{upstream: upstream[I]{src}, fn: fn}
	})
}

// Filter keeps the values for which keep returns true.
func Filter[T any](p *Pipeline[T], keep func(T) bool) *Pipeline[T] {
	return stage(p, func(src Iterator[T]) Iterator[T] {
		return &filterIter[T]{upstream: upstream[T]{src}, keep: keep}
	})
}

// Tap calls fn for each value and passes the value on unchanged. An error
// from fn ends the run.
func Tap[T any](p *Pipeline[T], fn func(context.Context, T) error) *Pipeline[T] {
	return Map(p, func(ctx context.Context, v T) (T, error) {
		if err := fn(ctx, v); err != nil {
			var zero T
			return zero, err
		}
		return v, nil
	})
}

// FlatMap expands each value into an inner iterator and yields the inner
// values in order. Each inner iterator is closed once it is exhausted.
func FlatMap[I, O any](p *Pipeline[I], fn func(context.Context, I) (Iterator[O], error)) *Pipeline[O] {
	return stage(p, func(src Iterator[I]) Iterator[O] {
		return &flatMapIter[I, O]{upstream: upstream[I]{src}, fn: fn}
	})
}

// Reduce folds every value into acc and yields the final accumulator once.
// An empty upstream yields init.
func Reduce[T, R any](p *Pipeline[T], init R, fn func(R, T) R) *Pipeline[R] {
	return stage(p, func(src Iterator[T]) Iterator[R] {
		return &reduceIter[T, R]{upstream: upstream[T]{src}, acc: init, fn: fn}
	})
}

// Concat yields every value of the first pipeline, then the second, and so on.
func Concat[T any](pipelines ...*Pipeline[T]) *Pipeline[T] {
	return FromFunc(func(ctx context.Context) Iterator[T] {
		parts := make([]Iterator[T], 0, len(pipelines))
		for _, p := range pipelines {
			parts = append(parts, p.create(ctx))
		}
		return &concatIter[T]{parts: parts}
	})
}

type mapIter[I, O any] struct {
	upstream[I]
	fn func(context.Context, I) (O, error)
}

func (it *mapIter[I, O]) Next(ctx context.Context) (O, bool, error) {
	var zero O
	in, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return zero, false, err
	}
	out, err := it.fn(ctx, in)
	if err != nil {
		return zero, false, err
	}
	return out, true, nil
}

type filterIter[T any] struct {
	upstream[T]
	keep func(T) bool
}

func (it *filterIter[T]) Next(ctx context.Context) (T, bool, error) {
	for {
		v, ok, err := it.source.Next(ctx)
		if err != nil || !ok || it.keep(v) {
			return v, ok && err == nil, err
		}
	}
}

type flatMapIter[I, O any] struct {
	upstream[I]
	fn    func(context.Context, I) (Iterator[O], error)
	inner Iterator[O]
}

func (it *flatMapIter[I, O]) Next(ctx context.Context) (O, bool, error) {
	var zero O
	for {
		if it.inner != nil {
			v, ok, err := it.inner.Next(ctx)
			switch {
			case err != nil:
				return zero, false, err
			case ok:
				return v, true, nil
			}
			_ = it.inner.Close()
			it.inner = nil
		}

		in, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return zero, false, err
		}
		if it.inner, err = it.fn(ctx, in); err != nil {
			return zero, false, err
		}
	}
}

func (it *flatMapIter[I, O]) Close() error {
	if it.inner != nil {
		_ = it.inner.Close()
	}
	return it.source.Close()
}

type reduceIter[T, R any] struct {
	upstream[T]
	acc  R
	fn   func(R, T) R
	done bool
}

func (it *reduceIter[T, R]) Next(ctx context.Context) (R, bool, error) {
	var zero R
	if it.done {
		return zero, false, nil
	}
	for {
		v, ok, err := it.source.Next(ctx)
		if err != nil {
			return zero, false, err
		}
		if !ok {
			it.done = true
			return it.acc, true, nil
		}
		it.acc = it.fn(it.acc, v)
	}
}

type concatIter[T any] struct {
	parts []Iterator[T]
	pos   int
}

func (it *concatIter[T]) Next(ctx context.Context) (T, bool, error) {
	for ; it.pos < len(it.parts); it.pos++ {
		v, ok, err := it.parts[it.pos].Next(ctx)
		if err != nil || ok {
			return v, ok, err
		}
	}
	var zero T
	return zero, false, nil
}

func (it *concatIter[T]) Close() error {
	var first error
	for _, part := range it.parts {
		if err := part.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
