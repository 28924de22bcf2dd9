package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemaining(t *testing.T) {
	t.Parallel()

	choices := []string{"sorting", "list", "bst", "list"}

	assert.Equal(t, []string{"bst", "list", "sorting"}, remaining(choices, map[string]bool{}))
	assert.Equal(t, []string{"bst"}, remaining(choices, map[string]bool{"list": true, "sorting": true}))
	assert.Empty(t, remaining(choices, map[string]bool{"list": true, "sorting": true, "bst": true}))
}

func TestPick(t *testing.T) {
	t.Parallel()

	choices := []string{"list", "bst", "sorting", "bst"}

	assert.Equal(t, []string{"list", "sorting"}, pick(choices, map[string]bool{"sorting": true, "list": true}))
	assert.Nil(t, pick(choices, map[string]bool{}))
}

func TestPrefixSearcher(t *testing.T) {
	t.Parallel()

	names := []string{doneChoice, "bst", "list"}
	search := prefixSearcher(names)

	assert.False(t, search("", 1))
	assert.False(t, search("[", 0))
	assert.True(t, search("bs", 1))
	assert.False(t, search("bs", 2))
}

func TestSelect_NoChoices(t *testing.T) {
	t.Parallel()

	got, err := Select("pick")
	assert.NoError(t, err)
	assert.Empty(t, got)

	many, err := MultiSelect("pick")
	assert.NoError(t, err)
	assert.Nil(t, many)
}
