// Package bst provides a generic, unbalanced binary search tree.
//
// # Ordering
//
// A Tree orders its values with a three-way comparison chosen at
// construction:
//
//	New[int]()                          // cmp.Compare for ordered types
//	NewFunc(func(a, b T) bool { ... })  // a strict "a before b" predicate
//	NewSortable[sortable.Int]()         // types with Equals / LessThan
//
// For every node, values in the left subtree compare strictly less and values
// in the right subtree strictly greater. Equal values are never stored twice:
// inserting a duplicate is a silent no-op, as is removing a missing value.
//
// The comparison is fixed by the constructor, so a Tree must come from New,
// NewFunc or NewSortable. A zero Tree panics on Insert, Remove or Contains.
//
// # Complexity
//
// Insert, Remove, Contains, Minimum and Maximum are O(h) where h is the
// current height. Because the tree never rebalances, h reaches n-1 when values
// arrive in sorted order. Lookups and mutations descend iteratively.
// Traversals, Height and IsValid recurse, so their stack depth is bounded by
// the height as well; Go's growable goroutine stacks absorb the degenerate
// case at the cost of memory.
//
// # Concurrency
//
// A Tree is not safe for concurrent use. Callers sharing one between
// goroutines must provide their own locking.
package bst
