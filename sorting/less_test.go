package sorting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestNatural(t *testing.T) {
	t.Parallel()

	files := []string{"file10.txt", "file2.txt", "file1.txt", "file20.txt"}
	Merge(files, Natural)

	assert.Equal(t, []string{"file1.txt", "file2.txt", "file10.txt", "file20.txt"}, files)
}

func TestCollated(t *testing.T) {
	t.Parallel()

	names := []string{"Zoe", "Émile", "apple", "Eve"}

	byteOrder := []string{"Zoe", "Émile", "apple", "Eve"}
	Insertion(byteOrder, Ascending[string])
	assert.Equal(t, []string{"Eve", "Zoe", "apple", "Émile"}, byteOrder)

	Insertion(names, Collated(language.English))
	assert.Equal(t, []string{"apple", "Émile", "Eve", "Zoe"}, names)
}

func TestReverse(t *testing.T) {
	t.Parallel()

	xs := []int{1, 3, 2}
	Heap(xs, Reverse(Less[int](Ascending[int])))

	assert.Equal(t, []int{3, 2, 1}, xs)
}

func TestCounting(t *testing.T) {
	t.Parallel()

	less, counter := Counting(Less[int](Ascending[int]))

	xs := []int{1, 2, 3, 4, 5}
	Bubble(xs, less)

	// One pass with no swaps over five elements.
	assert.Equal(t, 4, counter.Comparisons())

	counter.Reset()
	assert.Equal(t, 0, counter.Comparisons())
}
