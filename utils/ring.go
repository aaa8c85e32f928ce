package utils

import "iter"

// Ring is a fixed capacity queue that overwrites its oldest element once full.
type Ring[T any] struct {
	items []T
	head  int
	size  int
}

// NewRing creates a Ring holding at most capacity elements.
func NewRing[T any](capacity int) *Ring[T] {
	return &Ring[T]{items: make([]T, max(capacity, 1))}
}

// Append adds an item, dropping the oldest one if the ring is full.
func (r *Ring[T]) Append(item T) {
	tail := (r.head + r.size) % len(r.items)
	r.items[tail] = item
	if r.size == len(r.items) {
		r.head = (r.head + 1) % len(r.items)
		return
	}
	r.size++
}

// Get returns the element at logical position index, where 0 is the oldest element.
func (r *Ring[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= r.size {
		return zero, false
	}
	return r.items[(r.head+index)%len(r.items)], true
}

// All iterates over the elements from oldest to newest.
func (r *Ring[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range r.size {
			if !yield(r.items[(r.head+i)%len(r.items)]) {
				return
			}
		}
	}
}

// Len ...
func (r *Ring[T]) Len() int {
	return r.size
}

// Cap ...
func (r *Ring[T]) Cap() int {
	return len(r.items)
}

// Clear empties the ring.
func (r *Ring[T]) Clear() {
	clear(r.items)
	r.head, r.size = 0, 0
}
