package bench

import (
	"context"
	stderrors "errors"
	"math/rand/v2"

	"github.com/kbukum/seqkit/pipeline"
)

// Randish returns a generator factory for pseudo-random floats in [0, 1).
// Every call to the factory starts a new PCG stream from seed, so a pipeline
// built with pipeline.FromGeneratorFactory yields the same values on every run.
func Randish(seed uint64) func() pipeline.Generator[float64] {
	return func() pipeline.Generator[float64] {
		r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		return func(context.Context) (float64, error) {
			return r.Float64(), nil
		}
	}
}

// ErrSequenceExhausted is returned by a Sequence generator pulled past its
// last value.
var ErrSequenceExhausted = stderrors.New("fixed sequence exhausted")

// Sequence returns a generator factory that replays values from the start on
// every run and fails with ErrSequenceExhausted once they run out.
func Sequence(values ...float64) func() pipeline.Generator[float64] {
	return func() pipeline.Generator[float64] {
		i := 0
		return func(context.Context) (float64, error) {
			if i >= len(values) {
				return 0, ErrSequenceExhausted
			}
			v := values[i]
			i++
			return v, nil
		}
	}
}
