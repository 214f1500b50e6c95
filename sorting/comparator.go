package sorting

import "cmp"

// Comparator returns a negative number when a orders before b, zero when
// they are equivalent and a positive number when a orders after b.
type Comparator[T any] func(a, b T) int

// Ascending orders values from smallest to largest.
func Ascending[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Descending orders values from largest to smallest.
func Descending[T cmp.Ordered]() Comparator[T] {
	return Reverse(Ascending[T]())
}

// Reverse inverts c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// Then chains comparators: later ones only break ties left by earlier ones.
func Then[T any](cs ...Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		for _, c := range cs {
			if v := c(a, b); v != 0 {
				return v
			}
		}
		return 0
	}
}

// By orders values by a key extracted with key.
func By[T any, K cmp.Ordered](key func(T) K) Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// Counting wraps c and increments *calls on every comparison.
func Counting[T any](c Comparator[T], calls *int) Comparator[T] {
	return func(a, b T) int {
		*calls++
		return c(a, b)
	}
}
