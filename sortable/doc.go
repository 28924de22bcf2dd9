// Package sortable defines the ordering contract user types implement to be
// stored in a binary search tree or sorted by the sorting package without a
// hand-written predicate.
//
// # Overview
//
// A [Sortable] type knows how to compare itself to another value of the same
// type: Equals for identity and LessThan for ordering. Ready-made wrappers
// exist for [Int] and [String].
//
//	tree := bst.NewSortable[sortable.Int](50, 30, 70)
//	sorting.Merge(xs, sorting.ByLessThan[sortable.String])
//
// # Custom types
//
//	type Job struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (j Job) Equals(o Job) bool   { return j.Priority == o.Priority && j.Name == o.Name }
//	func (j Job) LessThan(o Job) bool {
//	    if j.Priority != o.Priority {
//	        return j.Priority < o.Priority
//	    }
//	    return j.Name < o.Name
//	}
//
// LessThan must be a strict weak ordering, and Equals must agree with it:
// a.Equals(b) exactly when neither a.LessThan(b) nor b.LessThan(a).
package sortable
