package sortable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type priority struct {
	level int
	name  string
}

func (p priority) Equals(o priority) bool {
	return p.level == o.level && p.name == o.name
}

func (p priority) LessThan(o priority) bool {
	if p.level != o.level {
		return p.level < o.level
	}

	return p.name < o.name
}

func TestCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a, b     Int
		expected int
	}{
		{name: "less", a: 1, b: 2, expected: -1},
		{name: "equal", a: 5, b: 5, expected: 0},
		{name: "greater", a: 9, b: -3, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Compare(tt.a, tt.b))
		})
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.True(t, String("apple").LessThan("banana"))
	assert.False(t, String("b").LessThan("a"))
	assert.True(t, String("x").Equals("x"))
	assert.Equal(t, -1, Compare[String]("A", "a"))
}

func TestCustomType(t *testing.T) {
	t.Parallel()

	low := priority{level: 1, name: "zeta"}
	high := priority{level: 2, name: "alpha"}

	assert.Equal(t, -1, Compare(low, high))
	assert.Equal(t, 1, Compare(high, low))
	assert.Equal(t, 0, Compare(low, priority{level: 1, name: "zeta"}))
}
