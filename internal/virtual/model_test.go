package virtual

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelWrapsAround(t *testing.T) {
	backing := NewList([]string{"a", "b", "c", "d", "e"})
	m, err := New[string](backing, 1000)
	require.NoError(t, err)

	assert.Equal(t, 5000, m.Len())
	assert.Equal(t, 5, m.RealLen())

	tests := []struct {
		pos  int
		want string
	}{
		{0, "a"},
		{4, "e"},
		{5, "a"},
		{5003, "d"},
		{4999, "e"},
		{-1, "e"},
		{-5, "a"},
	}
	for _, tt := range tests {
		got, ok := m.At(tt.pos)
		assert.True(t, ok, "position %d", tt.pos)
		assert.Equal(t, tt.want, got, "position %d", tt.pos)
	}
}

func TestMiddlePosition(t *testing.T) {
	m, err := New[int](NewList([]int{10, 11, 12, 13, 14}), 1000)
	require.NoError(t, err)

	assert.Equal(t, 2500, m.MiddlePosition())
	got, ok := m.At(m.MiddlePosition())
	require.True(t, ok)
	assert.Equal(t, 10, got)

	odd, err := New[int](NewList([]int{1, 2, 3}), 7)
	require.NoError(t, err)
	assert.Equal(t, 9, odd.MiddlePosition(), "multiplier is halved with integer division")

	single, err := New[int](NewList([]int{1, 2, 3}), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, single.MiddlePosition())
}

func TestEmptyBacking(t *testing.T) {
	m, err := New[string](NewList[string](nil), 1000)
	require.NoError(t, err)

	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 0, m.MiddlePosition())
	for _, pos := range []int{0, 1, 5003, -7, math.MaxInt, math.MinInt} {
		got, ok := m.At(pos)
		assert.False(t, ok, "position %d", pos)
		assert.Empty(t, got)
	}

	nilBacked, err := New[string](nil, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, nilBacked.Len())
}

func TestReadsBackingLive(t *testing.T) {
	backing := NewList[string](nil)
	m, err := New[string](backing, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())

	backing.Append("x", "y")
	assert.Equal(t, 20, m.Len())
	assert.Equal(t, 10, m.MiddlePosition())
	got, ok := m.At(3)
	require.True(t, ok)
	assert.Equal(t, "y", got)

	backing.Replace([]string{"z"})
	assert.Equal(t, 10, m.Len())
	got, _ = m.At(3)
	assert.Equal(t, "z", got)
}

func TestLenSaturates(t *testing.T) {
	backing := NewList([]int{1, 2, 3})
	m, err := New[int](backing, math.MaxInt/2)
	require.NoError(t, err)

	assert.Equal(t, math.MaxInt, m.Len())
	assert.Equal(t, (math.MaxInt/2/2)*3, m.MiddlePosition())

	got, ok := m.At(math.MaxInt)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}[math.MaxInt%3], got)
}

func TestInvalidMultiplier(t *testing.T) {
	for _, mult := range []int{0, -1} {
		_, err := New[int](NewList([]int{1}), mult)
		assert.True(t, errors.Is(err, ErrInvalidMultiplier), "multiplier %d", mult)
	}
}

func TestNewListCopiesInput(t *testing.T) {
	items := []int{1, 2, 3}
	l := NewList(items)
	items[0] = 99

	assert.Equal(t, 1, l.At(0))
}
