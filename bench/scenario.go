package bench

import (
	"context"
	"fmt"
	"math"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/observability"
	"github.com/kbukum/seqkit/pipeline"
	"github.com/kbukum/seqkit/sorting"
)

// Scenario defaults, matching the quicksort benchmark input.
const (
	DefaultCount = 5000
	DefaultScale = 5000
)

// ScenarioConfig describes the input of a sort scenario.
type ScenarioConfig struct {
	Name  string
	Count int
	Scale float64
	Seed  uint64
	// Source overrides the seeded Randish source when set.
	Source func() pipeline.Generator[float64]
}

// Scenario materializes Count values of floor(Scale*x) from a seeded source
// and sorts them ascending.
type Scenario struct {
	name   string
	values *pipeline.Pipeline[int]
	count  int
}

// NewScenario builds the scenario pipeline. Nothing is generated until Run.
func NewScenario(cfg ScenarioConfig) (*Scenario, error) {
	if cfg.Count < 0 {
		return nil, errors.InvalidInput("count", fmt.Sprintf("must not be negative (got %d)", cfg.Count))
	}
	if !(cfg.Scale > 0) || math.IsInf(cfg.Scale, 0) {
		return nil, errors.InvalidInput("scale", fmt.Sprintf("must be a positive finite number (got %v)", cfg.Scale))
	}

	source := cfg.Source
	if source == nil {
		source = Randish(cfg.Seed)
	}
	raw, err := pipeline.FromGeneratorFactory(source)
	if err != nil {
		return nil, err
	}

	scale := cfg.Scale
	scaled := pipeline.Map(raw, func(_ context.Context, x float64) (int, error) {
		return int(math.Floor(scale * x)), nil
	})
	limited, err := pipeline.Limit(scaled, cfg.Count)
	if err != nil {
		return nil, err
	}

	name := cfg.Name
	if name == "" {
		name = "quicksort"
	}
	return &Scenario{name: name, values: limited, count: cfg.Count}, nil
}

// Name returns the scenario name used in logs, spans and reports.
func (s *Scenario) Name() string { return s.name }

// Values returns the unsorted value pipeline.
func (s *Scenario) Values() *pipeline.Pipeline[int] { return s.values }

// Run materializes a fresh run of the pipeline and returns it sorted
// ascending. Successive calls return identical results.
func (s *Scenario) Run(ctx context.Context) ([]int, error) {
	collectCtx, span := observability.StartSpan(ctx, observability.SpanCollect)
	values, err := pipeline.Collect(collectCtx, s.values)
	if err != nil {
		observability.SetSpanError(collectCtx, err)
		span.End()
		return nil, err
	}
	observability.SetSpanAttribute(collectCtx, observability.AttrElements, len(values))
	span.End()

	_, span = observability.StartSpan(ctx, observability.SpanSort)
	sorting.SortInPlace(values, sorting.Ascending[int]())
	span.End()
	return values, nil
}

// Entry adapts the scenario for a Runner.
func (s *Scenario) Entry() Entry {
	return Entry{
		Name: s.name,
		Run: func(ctx context.Context) (int, error) {
			out, err := s.Run(ctx)
			return len(out), err
		},
	}
}

// EntryPoint returns the scenario as a zero-argument function, the shape
// external harnesses time.
func (s *Scenario) EntryPoint() func() ([]int, error) {
	return func() ([]int, error) {
		return s.Run(context.Background())
	}
}
