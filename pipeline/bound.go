package pipeline

import (
	"context"
	"fmt"

	"github.com/kbukum/seqkit/errors"
)

// Limit yields at most n values, then reports exhaustion even if the
// upstream could produce more. Once n values have been yielded the upstream
// is not pulled again; Limit(p, 0) never pulls it at all.
func Limit[T any](p *Pipeline[T], n int) (*Pipeline[T], error) {
	if err := checkCount("limit", n); err != nil {
		return nil, err
	}
	return stage(p, func(src Iterator[T]) Iterator[T] {
		return &limitIter[T]{upstream: upstream[T]{src}, left: n}
	}), nil
}

// Skip discards the first n values and yields the rest.
func Skip[T any](p *Pipeline[T], n int) (*Pipeline[T], error) {
	if err := checkCount("skip", n); err != nil {
		return nil, err
	}
	return stage(p, func(src Iterator[T]) Iterator[T] {
		return &skipIter[T]{upstream: upstream[T]{src}, left: n}
	}), nil
}

// Batch groups consecutive values into slices of up to size elements.
// The final slice may be shorter. size <= 0 defaults to 1.
func Batch[T any](p *Pipeline[T], size int) *Pipeline[[]T] {
	size = max(size, 1)
	return stage(p, func(src Iterator[T]) Iterator[[]T] {
		return &batchIter[T]{upstream: upstream[T]{src}, size: size}
	})
}

func checkCount(op string, n int) error {
	if n < 0 {
		return errors.InvalidInput("n", fmt.Sprintf("%s must not be negative (got %d)", op, n))
	}
	return nil
}

type limitIter[T any] struct {
	upstream[T]
	left int
}

func (it *limitIter[T]) Next(ctx context.Context) (T, bool, error) {
	if it.left == 0 {
		var zero T
		return zero, false, nil
	}
	v, ok, err := it.source.Next(ctx)
	if ok && err == nil {
		it.left--
	}
	return v, ok && err == nil, err
}

type skipIter[T any] struct {
	upstream[T]
	left int
}

func (it *skipIter[T]) Next(ctx context.Context) (T, bool, error) {
	for ; it.left > 0; it.left-- {
		if v, ok, err := it.source.Next(ctx); err != nil || !ok {
			return v, false, err
		}
	}
	return it.source.Next(ctx)
}

type batchIter[T any] struct {
	upstream[T]
	size int
	done bool
}

func (it *batchIter[T]) Next(ctx context.Context) ([]T, bool, error) {
	var batch []T
	for !it.done && len(batch) < it.size {
		v, ok, err := it.source.Next(ctx)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			it.done = true
			break
		}
		if batch == nil {
			batch = make([]T, 0, it.size)
		}
		batch = append(batch, v)
	}
	return batch, len(batch) > 0, nil
}
