// Package list provides a generic singly linked list.
//
// Each node owns its value and the link to the next node. The list keeps a
// reference to the last node so pushing to the back is O(1); there is no
// backward link, so popping from the back walks the chain.
//
// A List is not safe for concurrent use. Callers that share one between
// goroutines must synchronize access themselves.
package list

import (
	"fmt"
	"iter"
	"strings"

	"github.com/amp-labs/amp-dsa/errors"
	"github.com/amp-labs/amp-dsa/optional"
)

type node[T comparable] struct {
	value T
	next  *node[T]
}

// List is a singly linked list. The zero value is an empty list ready to use.
//
// Invariants: size equals the number of nodes reachable from head, and tail
// is the node whose next link is nil (nil iff the list is empty).
type List[T comparable] struct {
	head *node[T]
	tail *node[T]
	size int
}

// New returns an empty list.
func New[T comparable]() *List[T] {
	return &List[T]{}
}

// From returns a list holding values in order.
func From[T comparable](values ...T) *List[T] {
	l := New[T]()

	for _, v := range values {
		l.PushBack(v)
	}

	return l
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.size
}

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool {
	return l.size == 0
}

// PushFront inserts value before the first element. O(1).
func (l *List[T]) PushFront(value T) {
	n := &node[T]{value: value, next: l.head}
	l.head = n

	if l.tail == nil {
		l.tail = n
	}

	l.size++
}

// PushBack appends value after the last element. O(1).
func (l *List[T]) PushBack(value T) {
	n := &node[T]{value: value}

	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}

	l.tail = n
	l.size++
}

// PopFront removes and returns the first element. O(1).
func (l *List[T]) PopFront() (T, error) {
	if l.Empty() {
		var zero T

		return zero, errors.Empty("PopFront")
	}

	n := l.head
	l.head = n.next
	n.next = nil
	l.size--

	if l.head == nil {
		l.tail = nil
	}

	return n.value, nil
}

// PopBack removes and returns the last element. O(n), since the node before
// the tail has to be found by walking from the head.
func (l *List[T]) PopBack() (T, error) {
	if l.Empty() {
		var zero T

		return zero, errors.Empty("PopBack")
	}

	last := l.tail

	if l.head == l.tail {
		l.head, l.tail = nil, nil
	} else {
		prev := l.head
		for prev.next != l.tail {
			prev = prev.next
		}

		prev.next = nil
		l.tail = prev
	}

	l.size--

	return last.value, nil
}

// InsertAt inserts value so that it ends up at position index. Valid
// positions are 0 through Len() inclusive; index == Len() appends.
func (l *List[T]) InsertAt(index int, value T) error {
	if index < 0 || index > l.size {
		return errors.OutOfRange("InsertAt", index, l.size)
	}

	switch index {
	case 0:
		l.PushFront(value)
	case l.size:
		l.PushBack(value)
	default:
		prev := l.nodeAt(index - 1)
		prev.next = &node[T]{value: value, next: prev.next}
		l.size++
	}

	return nil
}

// EraseAt removes and returns the element at index. O(index).
func (l *List[T]) EraseAt(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T

		return zero, errors.OutOfRange("EraseAt", index, l.size)
	}

	if index == 0 {
		return l.PopFront()
	}

	prev := l.nodeAt(index - 1)
	removed := prev.next
	prev.next = removed.next
	removed.next = nil

	if removed == l.tail {
		l.tail = prev
	}

	l.size--

	return removed.value, nil
}

// At returns the element at index.
func (l *List[T]) At(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T

		return zero, errors.OutOfRange("At", index, l.size)
	}

	return l.nodeAt(index).value, nil
}

// Set replaces the element at index.
func (l *List[T]) Set(index int, value T) error {
	if index < 0 || index >= l.size {
		return errors.OutOfRange("Set", index, l.size)
	}

	l.nodeAt(index).value = value

	return nil
}

// Front returns the first element.
func (l *List[T]) Front() (T, error) {
	if l.Empty() {
		var zero T

		return zero, errors.Empty("Front")
	}

	return l.head.value, nil
}

// Back returns the last element. O(1).
func (l *List[T]) Back() (T, error) {
	if l.Empty() {
		var zero T

		return zero, errors.Empty("Back")
	}

	return l.tail.value, nil
}

// SetFront replaces the first element.
func (l *List[T]) SetFront(value T) error {
	if l.Empty() {
		return errors.Empty("SetFront")
	}

	l.head.value = value

	return nil
}

// SetBack replaces the last element.
func (l *List[T]) SetBack(value T) error {
	if l.Empty() {
		return errors.Empty("SetBack")
	}

	l.tail.value = value

	return nil
}

// Clear releases every node and leaves the list empty.
func (l *List[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		n.next = nil
		n = next
	}

	l.head, l.tail = nil, nil
	l.size = 0
}

// Reverse flips the direction of every link in place. The old first element
// becomes the last one. No nodes are allocated.
func (l *List[T]) Reverse() {
	var prev *node[T]

	l.tail = l.head

	for curr := l.head; curr != nil; {
		next := curr.next
		curr.next = prev
		prev = curr
		curr = next
	}

	l.head = prev
}

// Contains reports whether value is in the list, comparing with ==.
func (l *List[T]) Contains(value T) bool {
	return l.ContainsFunc(func(v T) bool { return v == value })
}

// ContainsFunc reports whether any element satisfies pred.
func (l *List[T]) ContainsFunc(pred func(T) bool) bool {
	return l.Find(pred).NonEmpty()
}

// Find returns the first element satisfying pred.
func (l *List[T]) Find(pred func(T) bool) optional.Value[T] {
	for n := l.head; n != nil; n = n.next {
		if pred(n.value) {
			return optional.Some(n.value)
		}
	}

	return optional.None[T]()
}

// Clone returns an independent copy with the same elements.
func (l *List[T]) Clone() *List[T] {
	out := New[T]()

	for n := l.head; n != nil; n = n.next {
		out.PushBack(n.value)
	}

	return out
}

// Move transfers every node to a new list and leaves l empty.
func (l *List[T]) Move() *List[T] {
	out := &List[T]{head: l.head, tail: l.tail, size: l.size}

	l.head, l.tail = nil, nil
	l.size = 0

	return out
}

// Slice copies the elements into a new slice, front to back.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.size)

	for v := range l.Values() {
		out = append(out, v)
	}

	return out
}

// All yields (index, value) pairs front to back.
//
// Each call starts a fresh pass. The list must not be structurally modified
// while an iteration is in progress.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0

		for n := l.head; n != nil; n = n.next {
			if !yield(i, n.value) {
				return
			}

			i++
		}
	}
}

// Values yields the elements front to back.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Refs yields a pointer to each stored element so callers can update values
// in place. The pointers stay valid until the element is removed.
func (l *List[T]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(&n.value) {
				return
			}
		}
	}
}

// String renders the list as "[a -> b -> c]".
func (l *List[T]) String() string {
	var sb strings.Builder

	sb.WriteString("[")

	for i, v := range l.All() {
		if i > 0 {
			sb.WriteString(" -> ")
		}

		_, _ = fmt.Fprint(&sb, v)
	}

	sb.WriteString("]")

	return sb.String()
}

// nodeAt walks to position index. The caller checks bounds.
func (l *List[T]) nodeAt(index int) *node[T] {
	n := l.head
	for range index {
		n = n.next
	}

	return n
}
