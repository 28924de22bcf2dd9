package sortable

// Int is a Sortable wrapper for int.
//
// Convert back with a plain conversion:
//
//	var s sortable.Int = 42
//	n := int(s)
type Int int

var _ Sortable[Int] = (*Int)(nil)

// Equals reports numeric equality.
func (i Int) Equals(other Int) bool {
	return int(i) == int(other)
}

// LessThan reports numeric order.
func (i Int) LessThan(other Int) bool {
	return int(i) < int(other)
}
