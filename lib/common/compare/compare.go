package compare

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

type Order int

const (
	Smaller Order = -1
	Equal   Order = 0
	Greater Order = 1
)

type Compare[T any] func(t1, t2 T) Order

func Ordered[T constraints.Ordered](t1, t2 T) Order {
	if t1 < t2 {
		return Smaller
	}
	if t1 == t2 {
		return Equal
	}
	return Greater
}

// By lifts a comparison on keys to a comparison on values.
func By[T any, K any](key func(T) K, cmp Compare[K]) Compare[T] {
	return func(t1, t2 T) Order {
		return cmp(key(t1), key(t2))
	}
}

// Sort sorts ts stably, so equal elements keep their relative order.
func Sort[T any](ts []T, cmp Compare[T]) {
	slices.SortStableFunc(ts, func(t1, t2 T) int {
		return int(cmp(t1, t2))
	})
}
