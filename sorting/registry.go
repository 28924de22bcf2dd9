package sorting

import (
	"github.com/amp-labs/amp-dsa/optional"
)

// Func is the common signature of every algorithm in this package.
type Func[T any] func(s []T, less Less[T])

// Algorithm describes one sorting algorithm.
type Algorithm[T any] struct {
	// Name is a short lowercase identifier such as "merge".
	Name string
	// Stable is true when equal elements keep their relative order.
	Stable bool
	Sort   Func[T]
}

// Algorithms returns the six algorithms in a fixed order: bubble, selection,
// insertion, merge, quick, heap.
func Algorithms[T any]() []Algorithm[T] {
	return []Algorithm[T]{
		{Name: "bubble", Stable: true, Sort: Bubble[T]},
		{Name: "selection", Stable: false, Sort: Selection[T]},
		{Name: "insertion", Stable: true, Sort: Insertion[T]},
		{Name: "merge", Stable: true, Sort: Merge[T]},
		{Name: "quick", Stable: false, Sort: Quick[T]},
		{Name: "heap", Stable: false, Sort: Heap[T]},
	}
}

// Lookup finds an algorithm by name.
func Lookup[T any](name string) optional.Value[Algorithm[T]] {
	for _, alg := range Algorithms[T]() {
		if alg.Name == name {
			return optional.Some(alg)
		}
	}

	return optional.None[Algorithm[T]]()
}

// Counter tallies how many times a predicate ran.
type Counter struct {
	comparisons int
}

// Comparisons returns the number of calls seen so far.
func (c *Counter) Comparisons() int {
	return c.comparisons
}

// Reset zeroes the tally.
func (c *Counter) Reset() {
	c.comparisons = 0
}

// Counting wraps less so each call is recorded in the returned Counter. The
// wrapped predicate orders exactly like less.
func Counting[T any](less Less[T]) (Less[T], *Counter) {
	counter := &Counter{}

	return func(a, b T) bool {
		counter.comparisons++

		return less(a, b)
	}, counter
}
