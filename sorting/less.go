package sorting

import (
	"cmp"

	"facette.io/natsort"
	"github.com/amp-labs/amp-dsa/sortable"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Less reports whether a must be ordered before b. It must describe a strict
// weak ordering.
type Less[T any] func(a, b T) bool

// Ascending orders values with <.
func Ascending[T cmp.Ordered](a, b T) bool {
	return cmp.Less(a, b)
}

// Descending orders values with >.
func Descending[T cmp.Ordered](a, b T) bool {
	return cmp.Less(b, a)
}

// ByLessThan orders Sortable values by their LessThan method.
func ByLessThan[T sortable.Sortable[T]](a, b T) bool {
	return a.LessThan(b)
}

// Natural orders strings so that embedded numbers compare by value:
// "file2" comes before "file10".
func Natural(a, b string) bool {
	return natsort.Compare(a, b)
}

// Collated returns a locale-aware string ordering for tag, so that for
// example "Émile" sorts next to "Eve" rather than after "Zoe". The returned
// predicate reuses one collator and must not be shared across goroutines.
func Collated(tag language.Tag, opts ...collate.Option) Less[string] {
	c := collate.New(tag, opts...)

	return func(a, b string) bool {
		return c.CompareString(a, b) < 0
	}
}

// Reverse flips the direction of less.
func Reverse[T any](less Less[T]) Less[T] {
	return func(a, b T) bool {
		return less(b, a)
	}
}
