package bst

import "iter"

// Order selects a traversal order.
type Order byte

const (
	// InOrder visits left, self, right; values come out ascending.
	InOrder Order = iota
	// PreOrder visits self, left, right.
	PreOrder
	// PostOrder visits left, right, self.
	PostOrder
	// LevelOrder visits breadth-first, top to bottom and left to right.
	LevelOrder
)

// String returns a human-readable name for the order.
func (o Order) String() string {
	switch o {
	case InOrder:
		return "inorder"
	case PreOrder:
		return "preorder"
	case PostOrder:
		return "postorder"
	case LevelOrder:
		return "level-order"
	default:
		return "not recognized"
	}
}

// Orders lists every traversal order.
func Orders() []Order {
	return []Order{InOrder, PreOrder, PostOrder, LevelOrder}
}

// Walk returns a lazy iterator over the values in the given order. Breaking
// out of the range loop stops the traversal. The tree must not be modified
// during iteration. An unknown order yields nothing.
func (t *Tree[T]) Walk(order Order) iter.Seq[T] {
	return func(yield func(T) bool) {
		switch order {
		case InOrder:
			inorder(t.root, yield)
		case PreOrder:
			preorder(t.root, yield)
		case PostOrder:
			postorder(t.root, yield)
		case LevelOrder:
			levelOrder(t.root, yield)
		}
	}
}

// Inorder returns all values in ascending order.
func (t *Tree[T]) Inorder() []T {
	return t.collect(InOrder)
}

// Preorder returns all values, each node before its subtrees.
func (t *Tree[T]) Preorder() []T {
	return t.collect(PreOrder)
}

// Postorder returns all values, each node after its subtrees.
func (t *Tree[T]) Postorder() []T {
	return t.collect(PostOrder)
}

// LevelOrder returns all values breadth-first.
func (t *Tree[T]) LevelOrder() []T {
	return t.collect(LevelOrder)
}

func (t *Tree[T]) collect(order Order) []T {
	out := make([]T, 0, t.size)

	for v := range t.Walk(order) {
		out = append(out, v)
	}

	return out
}

// The recursive walkers return false once yield asks to stop, and that
// answer propagates straight back up.

func inorder[T any](n *node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}

	return inorder(n.left, yield) && yield(n.value) && inorder(n.right, yield)
}

func preorder[T any](n *node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}

	return yield(n.value) && preorder(n.left, yield) && preorder(n.right, yield)
}

func postorder[T any](n *node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}

	return postorder(n.left, yield) && postorder(n.right, yield) && yield(n.value)
}

// levelOrder drains a FIFO queue seeded with the root.
func levelOrder[T any](root *node[T], yield func(T) bool) {
	if root == nil {
		return
	}

	queue := []*node[T]{root}

	for len(queue) > 0 {
		n := queue[0]
		queue[0] = nil
		queue = queue[1:]

		if !yield(n.value) {
			return
		}

		if n.left != nil {
			queue = append(queue, n.left)
		}

		if n.right != nil {
			queue = append(queue, n.right)
		}
	}
}
