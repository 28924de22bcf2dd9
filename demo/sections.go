package demo

import (
	"slices"
	"strconv"

	"github.com/amp-labs/amp-dsa/bst"
	"github.com/amp-labs/amp-dsa/list"
	"github.com/amp-labs/amp-dsa/sorting"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type scenario struct {
	name  string
	title string
	run   func(sec *Section) error
}

func scenarios() []scenario {
	return []scenario{
		{name: "list", title: "Linked List", run: listScenario},
		{name: "bst", title: "Binary Search Tree", run: treeScenario},
		{name: "sorting", title: "Sorting Algorithms", run: sortingScenario},
	}
}

// SectionNames lists the available sections in their default order.
func SectionNames() []string {
	var names []string
	for _, s := range scenarios() {
		names = append(names, s.name)
	}

	return names
}

func findScenario(name string) (scenario, bool) {
	for _, s := range scenarios() {
		if s.name == name {
			return s, true
		}
	}

	return scenario{}, false
}

func listScenario(sec *Section) error {
	l := list.From(10, 20, 30, 40, 50)
	sec.add("Initial list", l.String())

	l.PushFront(5)
	l.PushBack(60)
	sec.add("After PushFront(5) and PushBack(60)", l.String())

	if err := l.InsertAt(3, 25); err != nil {
		return err
	}

	sec.add("After InsertAt(3, 25)", l.String())

	front, err := l.Front()
	if err != nil {
		return err
	}

	back, err := l.Back()
	if err != nil {
		return err
	}

	third, err := l.At(3)
	if err != nil {
		return err
	}

	sec.add("Front", front)
	sec.add("Back", back)
	sec.add("At index 3", third)
	sec.add("Size", l.Len())
	sec.add("Iterating", slices.Collect(l.Values()))

	l.Reverse()
	sec.add("After Reverse", l.String())

	sec.add("Contains 25?", l.Contains(25))
	sec.add("Contains 100?", l.Contains(100))

	return nil
}

func treeScenario(sec *Section) error {
	tree := bst.New(50, 30, 70, 20, 40, 60, 80)
	sec.add("Created with", []int{50, 30, 70, 20, 40, 60, 80})
	sec.add("Tree", tree.String())

	sec.add("Size", tree.Len())
	sec.add("Height", tree.Height())
	sec.add("Is valid BST?", tree.IsValid())

	if low, ok := tree.Minimum().Get(); ok {
		sec.add("Minimum", low)
	}

	if high, ok := tree.Maximum().Get(); ok {
		sec.add("Maximum", high)
	}

	title := cases.Title(language.English)

	for _, order := range bst.Orders() {
		sec.add(title.String(order.String()), slices.Collect(tree.Walk(order)))
	}

	sec.add("Contains 40?", tree.Contains(40))
	sec.add("Contains 55?", tree.Contains(55))

	tree.Remove(30)
	sec.add("After removing 30", tree.String())
	sec.add("Preorder after removal", tree.Preorder())

	return nil
}

func sortingScenario(sec *Section) error {
	original := []int{64, 34, 25, 12, 22, 11, 90, 45}
	sec.add("Original array", original)

	title := cases.Title(language.English)

	for _, alg := range sorting.Algorithms[int]() {
		xs := slices.Clone(original)
		less, counter := sorting.Counting(sorting.Less[int](sorting.Ascending[int]))

		sorting.Instrument(alg).Sort(xs, less)

		sec.addNote(title.String(alg.Name)+" Sort", xs, comparisons(counter.Comparisons()))
	}

	desc := slices.Clone(original)
	sorting.Quick(desc, sorting.Descending[int])
	sec.add("Quick Sort (descending)", desc)
	sec.add("Is sorted descending?", sorting.IsSorted(desc, sorting.Descending[int]))

	files := []string{"file10.txt", "file2.txt", "file1.txt", "file20.txt"}
	sorting.Merge(files, sorting.Natural)
	sec.add("Natural order", files)

	names := []string{"Zoe", "Émile", "apple", "Eve"}
	sorting.Insertion(names, sorting.Collated(language.English))
	sec.add("Collated (en)", names)

	return nil
}

func comparisons(n int) string {
	if n == 1 {
		return "1 comparison"
	}

	return strconv.Itoa(n) + " comparisons"
}
