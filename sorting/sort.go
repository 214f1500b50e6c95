package sorting

import "slices"

// insertionThreshold is the range length below which insertion sort
// finishes the job.
const insertionThreshold = 12

// Sort returns a new slice holding the elements of items ordered by c.
// items is left untouched. The order of equivalent elements is unspecified.
func Sort[T any](items []T, c Comparator[T]) []T {
	out := slices.Clone(items)
	SortInPlace(out, c)
	return out
}

// SortInPlace orders items by c, reusing its backing array.
func SortInPlace[T any](items []T, c Comparator[T]) {
	if len(items) < 2 {
		return
	}

	type span struct{ lo, hi int }
	stack := []span{{0, len(items)}}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		lo, hi := s.lo, s.hi
		for hi-lo > insertionThreshold {
			lt, gt := partition3(items, lo, hi, c)
			// items[lt:gt] now holds the pivot's equal group and is final.
			if lt-lo < hi-gt {
				stack = append(stack, span{gt, hi})
				hi = lt
			} else {
				stack = append(stack, span{lo, lt})
				lo = gt
			}
		}
		insertionSort(items, lo, hi, c)
	}
}

// IsSorted reports whether every adjacent pair (a, b) in items has c(a, b) <= 0.
func IsSorted[T any](items []T, c Comparator[T]) bool {
	for i := 1; i < len(items); i++ {
		if c(items[i-1], items[i]) > 0 {
			return false
		}
	}
	return true
}

// partition3 rearranges items[lo:hi] into less, equal and greater groups
// around a median-of-three pivot and returns the bounds [lt, gt) of the
// equal group. The pivot is never compared with itself, so the equal group
// holds at least one element even when c is inconsistent.
func partition3[T any](items []T, lo, hi int, c Comparator[T]) (lt, gt int) {
	p := medianOfThree(items, lo, lo+(hi-lo)/2, hi-1, c)
	items[lo], items[p] = items[p], items[lo]
	pivot := items[lo]

	lt, i, gt := lo, lo+1, hi
	for i < gt {
		switch v := c(items[i], pivot); {
		case v < 0:
			items[lt], items[i] = items[i], items[lt]
			lt++
			i++
		case v > 0:
			gt--
			items[i], items[gt] = items[gt], items[i]
		default:
			i++
		}
	}
	return lt, gt
}

func medianOfThree[T any](items []T, a, b, m int, c Comparator[T]) int {
	if c(items[a], items[b]) > 0 {
		a, b = b, a
	}
	if c(items[b], items[m]) > 0 {
		b = m
		if c(items[a], items[b]) > 0 {
			b = a
		}
	}
	return b
}

func insertionSort[T any](items []T, lo, hi int, c Comparator[T]) {
	for i := lo + 1; i < hi; i++ {
		for j := i; j > lo && c(items[j-1], items[j]) > 0; j-- {
			items[j-1], items[j] = items[j], items[j-1]
		}
	}
}
