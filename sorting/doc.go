// Package sorting implements six classical in-place comparison sorts over
// slices.
//
// Every algorithm takes the slice and a [Less] predicate, where less(a, b)
// means a must come before b. Use [Ascending] for the natural order of an
// ordered type, [Descending] to reverse it, or [ByLessThan] for a
// sortable.Sortable type.
//
//	xs := []int{64, 34, 25, 12, 22, 11, 90, 45}
//	sorting.Quick(xs, sorting.Descending[int])
//
// | Algorithm | Time (avg / worst)   | Extra space | Stable |
// |-----------|----------------------|-------------|--------|
// | Bubble    | O(n²) / O(n²), O(n) best | O(1)    | yes    |
// | Selection | O(n²) / O(n²)        | O(1)        | no     |
// | Insertion | O(n²) / O(n²), O(n) best | O(1)    | yes    |
// | Merge     | O(n log n)           | O(n)        | yes    |
// | Quick     | O(n log n) / O(n²)   | O(log n)    | no     |
// | Heap      | O(n log n)           | O(1)        | no     |
//
// Quick uses a Lomuto partition around the last element, so already sorted
// input hits its quadratic case.
//
// The algorithms never retain the slice or the predicate after returning, and
// they are safe to call from several goroutines on distinct slices.
package sorting
