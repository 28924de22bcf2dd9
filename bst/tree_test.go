package bst

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/amp-labs/amp-dsa/sortable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleValues builds the balanced seven-node tree used throughout:
//
//	      50
//	    /    \
//	  30      70
//	 /  \    /  \
//	20  40  60  80
var sampleValues = []int{50, 30, 70, 20, 40, 60, 80} //nolint:gochecknoglobals

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates empty tree", func(t *testing.T) {
		t.Parallel()

		tree := New[int]()
		require.NotNil(t, tree)
		assert.True(t, tree.Empty())
		assert.Equal(t, 0, tree.Len())
		assert.Equal(t, -1, tree.Height())
		assert.True(t, tree.IsValid())
		assert.Empty(t, tree.Inorder())
	})

	t.Run("inserts initial values", func(t *testing.T) {
		t.Parallel()

		tree := New(sampleValues...)
		assert.Equal(t, 7, tree.Len())
		assert.Equal(t, 2, tree.Height())
		assert.True(t, tree.IsValid())
	})
}

func TestNewFunc(t *testing.T) {
	t.Parallel()

	desc := NewFunc(func(a, b int) bool { return a > b }, 1, 3, 2, 3)

	assert.Equal(t, 3, desc.Len())
	assert.Equal(t, []int{3, 2, 1}, desc.Inorder())
	assert.True(t, desc.IsValid())
	assert.Equal(t, 3, desc.Minimum().GetOrPanic())

	byLength := NewFunc(func(a, b string) bool { return len(a) < len(b) }, "ccc", "a", "bb")
	assert.False(t, byLength.Insert("zz"), "equal length counts as equal")
	assert.Equal(t, []string{"a", "bb", "ccc"}, byLength.Inorder())
}

func TestNewSortable(t *testing.T) {
	t.Parallel()

	tree := NewSortable[sortable.String]("pear", "apple", "fig")

	assert.Equal(t, []sortable.String{"apple", "fig", "pear"}, tree.Inorder())
	assert.True(t, tree.Contains("fig"))
	assert.False(t, tree.Contains("kiwi"))
}

func TestTree_ZeroValuePanics(t *testing.T) {
	t.Parallel()

	var tree Tree[int]

	assert.PanicsWithValue(t, errZeroTree, func() { tree.Insert(1) })
	assert.PanicsWithValue(t, errZeroTree, func() { tree.Contains(1) })
	assert.PanicsWithValue(t, errZeroTree, func() { tree.Remove(1) })
	assert.True(t, tree.Empty())
	assert.Equal(t, -1, tree.Height())
}

func TestTree_Insert(t *testing.T) {
	t.Parallel()

	t.Run("duplicate is ignored", func(t *testing.T) {
		t.Parallel()

		tree := New[int]()
		assert.True(t, tree.Insert(5))
		assert.False(t, tree.Insert(5))
		assert.Equal(t, 1, tree.Len())
		assert.Equal(t, 0, tree.Height())
	})

	t.Run("sorted input degenerates into a chain", func(t *testing.T) {
		t.Parallel()

		tree := New[int]()
		for i := range 10 {
			tree.Insert(i)
		}

		assert.Equal(t, 9, tree.Height())
		assert.True(t, tree.IsValid())
	})
}

func TestTree_Remove(t *testing.T) {
	t.Parallel()

	t.Run("node with two children", func(t *testing.T) {
		t.Parallel()

		tree := New(sampleValues...)
		assert.True(t, tree.Remove(30))

		assert.Equal(t, []int{20, 40, 50, 60, 70, 80}, tree.Inorder())
		assert.Equal(t, []int{50, 40, 20, 70, 60, 80}, tree.Preorder())
		assert.Equal(t, 6, tree.Len())
		assert.True(t, tree.IsValid())
	})

	t.Run("root with two children", func(t *testing.T) {
		t.Parallel()

		tree := New(sampleValues...)
		assert.True(t, tree.Remove(50))

		assert.Equal(t, []int{60, 30, 20, 40, 70, 80}, tree.Preorder())
		assert.True(t, tree.IsValid())
	})

	t.Run("successor deeper in right subtree", func(t *testing.T) {
		t.Parallel()

		tree := New(50, 30, 80, 60, 90, 65)
		assert.True(t, tree.Remove(50))

		assert.Equal(t, []int{60, 30, 80, 65, 90}, tree.Preorder())
		assert.True(t, tree.IsValid())
	})

	t.Run("leaf and single child", func(t *testing.T) {
		t.Parallel()

		tree := New(50, 30, 20)
		assert.True(t, tree.Remove(20))
		assert.Equal(t, []int{50, 30}, tree.Preorder())

		assert.True(t, tree.Remove(50))
		assert.Equal(t, []int{30}, tree.Preorder())
		assert.Equal(t, 0, tree.Height())
	})

	t.Run("missing value is a no-op", func(t *testing.T) {
		t.Parallel()

		tree := New(sampleValues...)
		assert.False(t, tree.Remove(55))
		assert.Equal(t, 7, tree.Len())

		empty := New[int]()
		assert.False(t, empty.Remove(1))
	})

	t.Run("remove everything", func(t *testing.T) {
		t.Parallel()

		tree := New(sampleValues...)
		for _, v := range sampleValues {
			require.True(t, tree.Remove(v))
			require.True(t, tree.IsValid())
		}

		assert.True(t, tree.Empty())
		assert.Equal(t, -1, tree.Height())
	})
}

func TestTree_Lookup(t *testing.T) {
	t.Parallel()

	tree := New(sampleValues...)

	assert.True(t, tree.Contains(40))
	assert.False(t, tree.Contains(55))

	assert.Equal(t, 20, tree.Minimum().GetOrPanic())
	assert.Equal(t, 80, tree.Maximum().GetOrPanic())

	empty := New[string]()
	assert.True(t, empty.Minimum().Empty())
	assert.True(t, empty.Maximum().Empty())
	assert.False(t, empty.Contains(""))
}

func TestTree_Height(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		values   []int
		expected int
	}{
		{name: "empty", values: nil, expected: -1},
		{name: "single", values: []int{1}, expected: 0},
		{name: "two", values: []int{1, 2}, expected: 1},
		{name: "balanced", values: sampleValues, expected: 2},
		{name: "left chain", values: []int{5, 4, 3, 2, 1}, expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, New(tt.values...).Height())
		})
	}
}

func TestTree_IsValid(t *testing.T) {
	t.Parallel()

	t.Run("detects a violation deep in the tree", func(t *testing.T) {
		t.Parallel()

		tree := New(sampleValues...)
		require.True(t, tree.IsValid())

		// 40 is the right child of 30, so it must stay below the root's 50.
		// 55 still exceeds its parent, so only the inherited bound catches it.
		tree.root.left.right.value = 55
		assert.False(t, tree.IsValid())
	})

	t.Run("detects equal values", func(t *testing.T) {
		t.Parallel()

		tree := New(sampleValues...)
		tree.root.right.left.value = 50
		assert.False(t, tree.IsValid())
	})
}

func TestTree_CloneAndMove(t *testing.T) {
	t.Parallel()

	t.Run("clone is deep", func(t *testing.T) {
		t.Parallel()

		tree := New(sampleValues...)
		c := tree.Clone()

		c.Remove(30)
		c.Insert(99)

		assert.Equal(t, sampleValues, tree.LevelOrder())
		assert.Equal(t, 7, tree.Len())
		assert.Equal(t, []int{20, 40, 50, 60, 70, 80, 99}, c.Inorder())
		assert.Equal(t, 7, c.Len())
	})

	t.Run("clone keeps shape", func(t *testing.T) {
		t.Parallel()

		tree := New(sampleValues...)
		assert.Equal(t, tree.Preorder(), tree.Clone().Preorder())
	})

	t.Run("move empties source", func(t *testing.T) {
		t.Parallel()

		tree := New(sampleValues...)
		moved := tree.Move()

		assert.True(t, tree.Empty())
		assert.Nil(t, tree.root)
		assert.Equal(t, 7, moved.Len())

		tree.Insert(1)
		assert.Equal(t, []int{1}, tree.Inorder())
		assert.False(t, moved.Contains(1))
	})
}

func TestTree_Clear(t *testing.T) {
	t.Parallel()

	tree := New(sampleValues...)
	tree.Clear()

	assert.True(t, tree.Empty())
	assert.Equal(t, -1, tree.Height())
	assert.Empty(t, tree.LevelOrder())

	tree.Insert(3)
	assert.Equal(t, 1, tree.Len())
}

func TestTree_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "BST (inorder): []", New[int]().String())
	assert.Equal(t, "BST (inorder): [20, 30, 40]", New(30, 20, 40).String())
}

// TestTree_RandomOperations mirrors random inserts and removes into a map and
// checks the invariants after every mutation.
func TestTree_RandomOperations(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 11)) //nolint:gosec
	tree := New[int]()
	model := map[int]struct{}{}

	for range 3000 {
		v := rng.IntN(200)

		if rng.IntN(3) == 0 {
			_, present := model[v]
			require.Equal(t, present, tree.Remove(v))
			delete(model, v)
		} else {
			_, present := model[v]
			require.Equal(t, !present, tree.Insert(v))
			model[v] = struct{}{}
		}

		require.True(t, tree.IsValid())
		require.Equal(t, len(model), tree.Len())
	}

	keys := make([]int, 0, len(model))
	for k := range model {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	inorder := tree.Inorder()
	assert.Equal(t, keys, inorder)
	assert.True(t, slices.IsSorted(inorder))

	if len(keys) > 0 {
		assert.Equal(t, keys[0], tree.Minimum().GetOrPanic())
		assert.Equal(t, keys[len(keys)-1], tree.Maximum().GetOrPanic())
	}
}

func TestTree_StringValues(t *testing.T) {
	t.Parallel()

	words := strings.Fields("the quick brown fox jumps over the lazy dog")
	tree := New(words...)

	assert.Equal(t, 8, tree.Len())
	assert.True(t, slices.IsSorted(tree.Inorder()))
}
