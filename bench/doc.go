// Package bench holds the quicksort benchmark scenario and the harness that
// times it.
//
// A Scenario draws Count pseudo-random values from a seeded source, scales
// them to integers, materializes them and sorts them ascending:
//
//	s, err := bench.NewScenario(bench.ScenarioConfig{Count: 5000, Scale: 5000, Seed: 1})
//	sorted, err := s.Run(ctx)
//
// A Runner repeats each entry until its time budget is spent and reports
// per-run timings:
//
//	reports, err := bench.NewRunner(bench.RunnerConfig{Duration: time.Second}).Run(ctx, s.Entry())
package bench
