package sortable

// Sortable is implemented by types that can order themselves.
type Sortable[T any] interface {
	Equals(other T) bool
	LessThan(other T) bool
}

// Compare returns -1, 0 or +1 like cmp.Compare, using the Sortable methods.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.Equals(b):
		return 0
	case a.LessThan(b):
		return -1
	default:
		return 1
	}
}
