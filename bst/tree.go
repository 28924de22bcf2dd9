package bst

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/amp-labs/amp-dsa/optional"
	"github.com/amp-labs/amp-dsa/sortable"
)

const errZeroTree = "bst: Tree used without New, NewFunc or NewSortable"

// node owns its value and both subtrees.
type node[T any] struct {
	value T
	left  *node[T]
	right *node[T]
}

// Tree is a binary search tree. Build one with New, NewFunc or NewSortable;
// the zero Tree has no comparison, and Insert, Remove and Contains panic on it.
type Tree[T any] struct {
	root    *node[T]
	size    int
	compare func(a, b T) int
}

// New returns a tree ordered by cmp.Compare, pre-filled with values.
func New[T cmp.Ordered](values ...T) *Tree[T] {
	return newTree(cmp.Compare[T], values)
}

// NewFunc returns a tree ordered by less, which must report whether a sorts
// strictly before b. Two values are equal when neither precedes the other.
func NewFunc[T any](less func(a, b T) bool, values ...T) *Tree[T] {
	return newTree(func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}, values)
}

// NewSortable returns a tree ordered by the values' own LessThan and Equals.
func NewSortable[T sortable.Sortable[T]](values ...T) *Tree[T] {
	return newTree(sortable.Compare[T], values)
}

func newTree[T any](compare func(a, b T) int, values []T) *Tree[T] {
	t := &Tree[T]{compare: compare}

	for _, v := range values {
		t.Insert(v)
	}

	return t
}

// Len returns the number of stored values.
func (t *Tree[T]) Len() int {
	return t.size
}

// Empty reports whether the tree holds no values.
func (t *Tree[T]) Empty() bool {
	return t.size == 0
}

// Insert adds value as a new leaf. It returns false, leaving the tree
// untouched, when an equal value is already present.
func (t *Tree[T]) Insert(value T) bool {
	link, found := t.lookup(value)
	if found {
		return false
	}

	*link = &node[T]{value: value}
	t.size++

	return true
}

// Remove deletes value. It returns false when the value is absent.
//
// A node with at most one child is replaced by that child. A node with two
// children takes the value of its in-order successor (the minimum of its right
// subtree), and the successor node is then removed from the right subtree.
func (t *Tree[T]) Remove(value T) bool {
	link, found := t.lookup(value)
	if !found {
		return false
	}

	target := *link

	switch {
	case target.left == nil:
		*link = target.right
	case target.right == nil:
		*link = target.left
	default:
		succ := minimumLink(&target.right)
		target.value = (*succ).value
		target = *succ
		*succ = target.right // the successor never has a left child
	}

	target.left, target.right = nil, nil
	t.size--

	return true
}

// Contains reports whether an equal value is stored.
func (t *Tree[T]) Contains(value T) bool {
	_, found := t.lookup(value)

	return found
}

// Minimum returns the smallest value, or None for an empty tree.
func (t *Tree[T]) Minimum() optional.Value[T] {
	if t.root == nil {
		return optional.None[T]()
	}

	return optional.Some((*minimumLink(&t.root)).value)
}

// Maximum returns the largest value, or None for an empty tree.
func (t *Tree[T]) Maximum() optional.Value[T] {
	if t.root == nil {
		return optional.None[T]()
	}

	n := t.root
	for n.right != nil {
		n = n.right
	}

	return optional.Some(n.value)
}

// Height returns -1 for an empty tree, 0 for a single node, and otherwise one
// more than the taller subtree. O(n).
func (t *Tree[T]) Height() int {
	return height(t.root)
}

// IsValid checks the ordering invariant over the whole tree by narrowing an
// open (lower, upper) interval on the way down. It is a diagnostic; no other
// operation relies on it.
func (t *Tree[T]) IsValid() bool {
	return t.valid(t.root, nil, nil)
}

// Clear drops every node.
func (t *Tree[T]) Clear() {
	release(t.root)

	t.root = nil
	t.size = 0
}

// Clone returns an independent copy with the same shape and ordering.
func (t *Tree[T]) Clone() *Tree[T] {
	return &Tree[T]{root: clone(t.root), size: t.size, compare: t.compare}
}

// Move transfers all nodes to a new tree and leaves t empty. The ordering
// stays with both trees.
func (t *Tree[T]) Move() *Tree[T] {
	out := &Tree[T]{root: t.root, size: t.size, compare: t.compare}

	t.root = nil
	t.size = 0

	return out
}

// String renders the values in order, e.g. "BST (inorder): [20, 30, 40]".
func (t *Tree[T]) String() string {
	var sb strings.Builder

	sb.WriteString("BST (inorder): [")

	i := 0

	for v := range t.Walk(InOrder) {
		if i > 0 {
			sb.WriteString(", ")
		}

		_, _ = fmt.Fprint(&sb, v)
		i++
	}

	sb.WriteString("]")

	return sb.String()
}

// lookup descends from the root. It returns the link that holds the matching
// node, or the nil link where value would be attached if it is absent.
func (t *Tree[T]) lookup(value T) (**node[T], bool) {
	if t.compare == nil {
		panic(errZeroTree)
	}

	link := &t.root

	for *link != nil {
		c := t.compare(value, (*link).value)

		switch {
		case c < 0:
			link = &(*link).left
		case c > 0:
			link = &(*link).right
		default:
			return link, true
		}
	}

	return link, false
}

// valid reports whether every value under n lies strictly between lower and
// upper. A nil bound is unbounded.
func (t *Tree[T]) valid(n *node[T], lower, upper *T) bool {
	if n == nil {
		return true
	}

	if lower != nil && t.compare(n.value, *lower) <= 0 {
		return false
	}

	if upper != nil && t.compare(n.value, *upper) >= 0 {
		return false
	}

	return t.valid(n.left, lower, &n.value) && t.valid(n.right, &n.value, upper)
}

// minimumLink follows left links from a non-empty subtree and returns the
// link holding its leftmost node.
func minimumLink[T any](link **node[T]) **node[T] {
	for (*link).left != nil {
		link = &(*link).left
	}

	return link
}

func height[T any](n *node[T]) int {
	if n == nil {
		return -1
	}

	return 1 + max(height(n.left), height(n.right))
}

func clone[T any](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}

	return &node[T]{value: n.value, left: clone(n.left), right: clone(n.right)}
}

// release unlinks a subtree bottom-up so no node keeps its children alive.
func release[T any](n *node[T]) {
	if n == nil {
		return
	}

	release(n.left)
	release(n.right)

	n.left, n.right = nil, nil
}
