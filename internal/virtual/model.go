package virtual

import (
	"errors"
	"fmt"
	"math"
)

// DefaultMultiplier is the amplification used when the caller has no opinion.
const DefaultMultiplier = 1000

// ErrInvalidMultiplier is returned by New for a multiplier below one.
var ErrInvalidMultiplier = errors.New("multiplier must be a positive integer")

// Model maps logical positions in [0, Len()) onto positions of its backing
// collection by modulo. It holds no per-position state.
type Model[T any] struct {
	backing    Backing[T]
	multiplier int
}

// New wraps backing, amplifying its length by multiplier.
func New[T any](backing Backing[T], multiplier int) (*Model[T], error) {
	if multiplier < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMultiplier, multiplier)
	}
	if backing == nil {
		backing = NewList[T](nil)
	}
	return &Model[T]{backing: backing, multiplier: multiplier}, nil
}

// Multiplier returns the amplification factor.
func (m *Model[T]) Multiplier() int {
	return m.multiplier
}

// RealLen returns the current length of the backing collection.
func (m *Model[T]) RealLen() int {
	return m.backing.Len()
}

// Len returns the logical length, backing length times multiplier.
// It saturates at math.MaxInt instead of overflowing.
func (m *Model[T]) Len() int {
	return saturatingMul(m.backing.Len(), m.multiplier)
}

// RealPosition maps a logical position onto the backing collection. It
// reports false when the backing is empty. Negative positions wrap too.
func (m *Model[T]) RealPosition(pos int) (int, bool) {
	n := m.backing.Len()
	if n == 0 {
		return 0, false
	}
	idx := pos % n
	if idx < 0 {
		idx += n
	}
	return idx, true
}

// At returns the item at a logical position, or false for an empty backing.
func (m *Model[T]) At(pos int) (T, bool) {
	idx, ok := m.RealPosition(pos)
	if !ok {
		var zero T
		return zero, false
	}
	return m.backing.At(idx), true
}

// MiddlePosition is the logical position near the centre of the range whose
// real position is 0. Seeding a scroll there leaves room in both directions.
func (m *Model[T]) MiddlePosition() int {
	return saturatingMul(m.multiplier/2, m.backing.Len())
}

func saturatingMul(a, b int) int {
	if a <= 0 || b <= 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}
