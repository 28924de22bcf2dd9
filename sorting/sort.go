package sorting

// Bubble sorts s by repeatedly swapping adjacent out-of-order pairs. A pass
// without swaps ends the sort early.
func Bubble[T any](s []T, less Less[T]) {
	n := len(s)

	for i := 0; i < n-1; i++ {
		swapped := false

		for j := 0; j < n-i-1; j++ {
			if less(s[j+1], s[j]) {
				s[j], s[j+1] = s[j+1], s[j]
				swapped = true
			}
		}

		if !swapped {
			return
		}
	}
}

// Selection sorts s by moving the first-ordered element of the unsorted
// remainder into place on each pass.
func Selection[T any](s []T, less Less[T]) {
	n := len(s)

	for i := 0; i < n-1; i++ {
		minIdx := i

		for j := i + 1; j < n; j++ {
			if less(s[j], s[minIdx]) {
				minIdx = j
			}
		}

		if minIdx != i {
			s[i], s[minIdx] = s[minIdx], s[i]
		}
	}
}

// Insertion sorts s by shifting each element left past every predecessor it
// must precede. It is stable.
func Insertion[T any](s []T, less Less[T]) {
	for i := 1; i < len(s); i++ {
		key := s[i]
		j := i - 1

		for j >= 0 && less(key, s[j]) {
			s[j+1] = s[j]
			j--
		}

		s[j+1] = key
	}
}

// Merge sorts s top-down: each half is sorted recursively and the two runs
// are merged through a scratch buffer of len(s). It is stable.
func Merge[T any](s []T, less Less[T]) {
	if len(s) < 2 {
		return
	}

	mergeSort(s, make([]T, len(s)), less)
}

func mergeSort[T any](s, buf []T, less Less[T]) {
	if len(s) < 2 {
		return
	}

	mid := len(s) / 2
	mergeSort(s[:mid], buf[:mid], less)
	mergeSort(s[mid:], buf[mid:], less)
	merge(s, mid, buf, less)
}

// merge combines the sorted runs s[:mid] and s[mid:]. On ties the left run
// wins, which keeps equal elements in their original order.
func merge[T any](s []T, mid int, buf []T, less Less[T]) {
	i, j, k := 0, mid, 0

	for i < mid && j < len(s) {
		if less(s[j], s[i]) {
			buf[k] = s[j]
			j++
		} else {
			buf[k] = s[i]
			i++
		}

		k++
	}

	k += copy(buf[k:], s[i:mid])
	k += copy(buf[k:], s[j:])

	copy(s, buf[:k])
}

// Quick sorts s with a Lomuto partition, pivoting on the last element. It
// recurses into the smaller side and loops over the larger one, so the stack
// stays O(log n) even when the partitions are lopsided.
func Quick[T any](s []T, less Less[T]) {
	for len(s) > 1 {
		p := partition(s, less)

		if p < len(s)-p-1 {
			Quick(s[:p], less)
			s = s[p+1:]
		} else {
			Quick(s[p+1:], less)
			s = s[:p]
		}
	}
}

// partition places the pivot s[len(s)-1] at its final index and returns it.
// Everything before that index precedes the pivot.
func partition[T any](s []T, less Less[T]) int {
	high := len(s) - 1
	pivot := s[high]
	i := 0

	for j := range high {
		if less(s[j], pivot) {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}

	s[i], s[high] = s[high], s[i]

	return i
}

// Heap sorts s by building a heap with the last-ordered element at the root,
// then repeatedly swapping the root behind the shrinking heap.
func Heap[T any](s []T, less Less[T]) {
	n := len(s)

	for i := n/2 - 1; i >= 0; i-- {
		siftDown(s, i, n, less)
	}

	for end := n - 1; end > 0; end-- {
		s[0], s[end] = s[end], s[0]
		siftDown(s, 0, end, less)
	}
}

// siftDown restores the heap property for the subtree rooted at i within
// s[:n].
func siftDown[T any](s []T, i, n int, less Less[T]) {
	for {
		largest := i
		left, right := 2*i+1, 2*i+2

		if left < n && less(s[largest], s[left]) {
			largest = left
		}

		if right < n && less(s[largest], s[right]) {
			largest = right
		}

		if largest == i {
			return
		}

		s[i], s[largest] = s[largest], s[i]
		i = largest
	}
}

// IsSorted reports whether no adjacent pair of s is out of order under less.
func IsSorted[T any](s []T, less Less[T]) bool {
	for i := 1; i < len(s); i++ {
		if less(s[i], s[i-1]) {
			return false
		}
	}

	return true
}
