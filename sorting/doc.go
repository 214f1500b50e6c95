// Package sorting orders slices with a caller-supplied three-way comparator.
//
// Sort uses a three-way quicksort: each pass splits a range into elements
// less than, equal to, and greater than a median-of-three pivot, then
// continues on the outer groups only. Runs of equal keys are therefore
// settled in a single pass.
//
// The comparator must describe a consistent, transitive ordering. That is
// the caller's contract and is not checked; a comparator that breaks it
// still yields a permutation of the input, just not a meaningful order.
//
// Average cost is O(n log n) comparator calls, worst case O(n²). Pending
// ranges live on an explicit stack and the larger side is always deferred,
// so auxiliary space stays O(log n) regardless of input.
//
//	sorted := sorting.Sort(values, sorting.Ascending[int]())
package sorting
