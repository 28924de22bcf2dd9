// Package optional models a result that may be absent. Queries such as the
// minimum of an empty tree return None instead of a sentinel value, so the
// "no value" case stays distinct from any value of T.
package optional

import (
	"fmt"
	"iter"
)

// Value holds either exactly one T or nothing.
// The zero Value is None.
type Value[T any] struct {
	value T
	isSet bool
}

// Some wraps a present value.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// None returns an absent value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Of returns Some(value) when ok is true and None otherwise. It adapts
// the comma-ok idiom.
func Of[T any](value T, ok bool) Value[T] {
	if !ok {
		return None[T]()
	}

	return Some(value)
}

// Get returns the value and whether it is present.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// NonEmpty reports whether a value is present.
func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

// Empty reports whether the value is absent.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// GetOrPanic returns the value, panicking on None.
func (o Value[T]) GetOrPanic() T {
	if !o.isSet {
		panic("optional: GetOrPanic called on None")
	}

	return o.value
}

// GetOrElse returns the value, or fallback when absent.
func (o Value[T]) GetOrElse(fallback T) T {
	if o.isSet {
		return o.value
	}

	return fallback
}

// All yields the value once if present. It lets callers write
//
//	for v := range tree.Minimum().All() { ... }
func (o Value[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.isSet {
			yield(o.value)
		}
	}
}

// String renders Some(v) or None.
func (o Value[T]) String() string {
	if !o.isSet {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", o.value)
}

// Map applies f to a present value.
func Map[T any, U any](o Value[T], f func(T) U) Value[U] {
	if !o.isSet {
		return None[U]()
	}

	return Some(f(o.value))
}
