package pipeline

import (
	"context"

	"github.com/kbukum/seqkit/errors"
)

// FromGenerator creates an unbounded pipeline whose elements are successive
// calls to gen. Nothing is evaluated until the pipeline is pulled.
//
// Every run pulls from the same gen, so a run only replays the previous one
// when gen itself restarts. Use FromGeneratorFactory for seeded sources that
// must be restartable.
func FromGenerator[T any](gen Generator[T]) (*Pipeline[T], error) {
	if gen == nil {
		return nil, errors.InvalidInput("generator", "seed generator must not be nil")
	}
	return FromFunc(func(context.Context) Iterator[T] {
		return &generatorIter[T]{gen: gen}
	}), nil
}

// FromGeneratorFactory creates an unbounded pipeline that asks factory for a
// new Generator at the start of every run.
//
//	src, _ := pipeline.FromGeneratorFactory(func() pipeline.Generator[float64] {
//	    r := rand.New(rand.NewPCG(seed, seed))
//	    return func(context.Context) (float64, error) { return r.Float64(), nil }
//	})
func FromGeneratorFactory[T any](factory func() Generator[T]) (*Pipeline[T], error) {
	if factory == nil {
		return nil, errors.InvalidInput("factory", "generator factory must not be nil")
	}
	return FromFunc(func(context.Context) Iterator[T] {
		return &generatorIter[T]{gen: factory()}
	}), nil
}

// FromSlice creates a finite pipeline over items. Each run starts at items[0].
func FromSlice[T any](items []T) *Pipeline[T] {
	return FromFunc(func(context.Context) Iterator[T] {
		return &sliceIter[T]{items: items}
	})
}

// From wraps an existing cursor. The first run consumes it, so later runs
// see it exhausted.
func From[T any](it Iterator[T]) *Pipeline[T] {
	return FromFunc(func(context.Context) Iterator[T] { return it })
}

// FromFunc creates a pipeline whose runs are cursors built by fn.
func FromFunc[T any](fn func(ctx context.Context) Iterator[T]) *Pipeline[T] {
	return &Pipeline[T]{create: fn}
}

type sliceIter[T any] struct {
	items []T
	pos   int
}

func (it *sliceIter[T]) Next(context.Context) (T, bool, error) {
	if it.pos == len(it.items) {
		var zero T
		return zero, false, nil
	}
	it.pos++
	return it.items[it.pos-1], true, nil
}

func (it *sliceIter[T]) Close() error { return nil }

// generatorIter never reports exhaustion on its own; a Limit stage or an
// error ends the run.
type generatorIter[T any] struct {
	gen Generator[T]
}

func (it *generatorIter[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, false, errors.Canceled(err)
	}
	if it.gen == nil {
		return zero, false, errors.InvalidInput("factory", "generator factory returned nil")
	}
	v, err := it.gen(ctx)
	if err != nil {
		return zero, false, errors.GeneratorFailed(err)
	}
	return v, true, nil
}

func (it *generatorIter[T]) Close() error { return nil }
