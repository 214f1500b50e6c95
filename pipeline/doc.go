// Package pipeline provides composable, pull-based sequence pipelines.
//
// Pipelines are lazy. No work happens until values are pulled via Collect,
// Drain, ForEach or All. Each stage pulls from the previous stage on demand,
// so an infinite source is fine as long as a Limit stage bounds the run.
//
// A Pipeline is an immutable description. Every terminal call builds a new
// iterator chain (the cursor), so the same Pipeline can be run repeatedly
// and each run is independent. Runs are only identical when the source is:
// FromGeneratorFactory builds a fresh generator per run for that purpose.
//
// # Operators
//
//   - Map: transform each value
//   - Limit: stop after n values, even over an infinite source
//   - Skip: drop the first n values
//   - Filter: keep values matching a predicate
//   - FlatMap: transform each value into multiple values
//   - Tap: side-effect without altering the value (logging, metrics)
//   - Batch: group values into fixed-size slices
//   - Reduce: accumulate all values into one result
//   - Concat: join pipelines sequentially
//
// Limit, Skip and the generator constructors validate their arguments up
// front and return an *errors.AppError with code INVALID_INPUT instead of
// deferring the failure to iteration time.
//
// # Usage
//
//	src, _ := pipeline.FromGenerator(func(context.Context) (float64, error) {
//	    return rand.Float64(), nil
//	})
//	scaled := pipeline.Map(src, func(_ context.Context, x float64) (int, error) {
//	    return int(math.Floor(5000 * x)), nil
//	})
//	first, _ := pipeline.Limit(scaled, 5000)
//	values, err := pipeline.Collect(ctx, first)
package pipeline
