package virtual

// Backing is an ordered, randomly indexable collection a Model reads through.
type Backing[T any] interface {
	Len() int
	At(i int) T
}

// List is an appendable Backing owned by a single goroutine, typically the
// UI update loop. It is not safe for concurrent use.
type List[T any] struct {
	items []T
}

// NewList creates a List holding a copy of items.
func NewList[T any](items []T) *List[T] {
	l := &List[T]{}
	l.Append(items...)
	return l
}

// Len returns the number of items.
func (l *List[T]) Len() int {
	return len(l.items)
}

// At returns the item at i. It panics if i is out of range, like a slice.
func (l *List[T]) At(i int) T {
	return l.items[i]
}

// Append adds items to the end of the list.
func (l *List[T]) Append(items ...T) {
	l.items = append(l.items, items...)
}

// Replace swaps the whole content of the list.
func (l *List[T]) Replace(items []T) {
	l.items = append(l.items[:0:0], items...)
}
