// Package binheap implements an array-backed binary heap that can be
// configured as a min-heap or a max-heap at construction time.
//
// A Heap is not safe for concurrent use; callers that share a heap across
// goroutines must serialize access themselves.
package binheap

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

var (
	// ErrEmpty is returned by Pop when the heap holds no elements.
	ErrEmpty = errors.New("pop from empty heap")
	// ErrNotFound is returned by Replace when the old value is not in the heap.
	ErrNotFound = errors.New("value not found in heap")
)

// Polarity selects which element the root holds.
type Polarity bool

const (
	Max Polarity = false // root holds the maximum
	Min Polarity = true  // root holds the minimum
)

func (p Polarity) String() string {
	if p == Min {
		return "MinHeap"
	}
	return "MaxHeap"
}

// Heap is a dual-polarity binary heap over a contiguous backing slice.
// The zero value is not usable; construct with New or FromSlice.
type Heap[T constraints.Ordered] struct {
	items    []T
	polarity Polarity
}

// New returns an empty heap with the given polarity.
func New[T constraints.Ordered](p Polarity) *Heap[T] {
	return &Heap[T]{polarity: p}
}

// FromSlice returns a heap built from a copy of items in O(n) time. The
// caller's slice is never aliased or mutated.
func FromSlice[T constraints.Ordered](p Polarity, items []T) *Heap[T] {
	h := &Heap[T]{
		items:    make([]T, len(items)),
		polarity: p,
	}
	copy(h.items, items)
	h.Rebuild()
	return h
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return i*2 + 1 }
func right(i int) int  { return i*2 + 2 }

// less reports whether a has strictly higher priority than b. Every
// comparison in the package routes through it.
func (h *Heap[T]) less(a, b T) bool {
	if h.polarity == Min {
		return a < b
	}
	return a > b
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int {
	return len(h.items)
}

// IsEmpty reports whether the heap holds no elements.
func (h *Heap[T]) IsEmpty() bool {
	return len(h.items) == 0
}

// Peek returns the root element without removing it. The second return is
// false when the heap is empty.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}
	return h.items[0], true
}

// Push inserts value into the heap.
func (h *Heap[T]) Push(value T) {
	h.items = append(h.items, value)
	h.siftUp(len(h.items) - 1)
}

// Pop removes and returns the root element. It returns ErrEmpty if the heap
// holds no elements; the heap is left unchanged in that case.
func (h *Heap[T]) Pop() (T, error) {
	if len(h.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}

	root := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items = h.items[:last]
	if len(h.items) > 0 {
		h.siftDown(0, len(h.items))
	}
	return root, nil
}

// PushPop pushes value and pops the root in a single sift, returning
// whichever element an equivalent Push followed by Pop would have returned.
// On an empty heap the value is pushed and returned immediately.
func (h *Heap[T]) PushPop(value T) T {
	if len(h.items) == 0 {
		h.Push(value)
		return value
	}

	root := h.items[0]
	if !h.less(root, value) {
		// value would come straight back off the heap; don't touch the array.
		return value
	}
	h.items[0] = value
	h.siftDown(0, len(h.items))
	return root
}

// Replace swaps the first occurrence of oldValue (lowest index in the
// backing array) for newValue and restores the heap property with a single
// sift. It returns an error wrapping ErrNotFound if oldValue is absent.
//
// Lookup is a linear scan by value equality, so which duplicate is replaced
// is unspecified from the caller's point of view.
func (h *Heap[T]) Replace(oldValue, newValue T) error {
	for i, v := range h.items {
		if v != oldValue {
			continue
		}
		h.items[i] = newValue
		if i > 0 && h.less(newValue, h.items[parent(i)]) {
			h.siftUp(i)
		} else {
			h.siftDown(i, len(h.items))
		}
		return nil
	}
	return fmt.Errorf("replace %v: %w", oldValue, ErrNotFound)
}

// Clear removes all elements.
func (h *Heap[T]) Clear() {
	h.items = nil
}

// Items returns a copy of the elements in internal array order, which is not
// sorted order.
func (h *Heap[T]) Items() []T {
	items := make([]T, len(h.items))
	copy(items, h.items)
	return items
}

// Rebuild restores the heap property over the whole backing array in O(n)
// time by sifting each non-leaf down, deepest parents first. It is run by
// FromSlice and is a no-op on an array that already satisfies the invariant.
func (h *Heap[T]) Rebuild() {
	for i := len(h.items)/2 - 1; i >= 0; i-- {
		h.siftDown(i, len(h.items))
	}
}

// siftDown moves the element at index toward the leaves until it dominates
// both children, considering only elements below size. size may be shorter
// than the backing array while Pop shrinks the heap.
func (h *Heap[T]) siftDown(index, size int) {
	for {
		best := index
		if l := left(index); l < size && h.less(h.items[l], h.items[best]) {
			best = l
		}
		if r := right(index); r < size && h.less(h.items[r], h.items[best]) {
			best = r
		}
		if best == index {
			return
		}
		h.items[index], h.items[best] = h.items[best], h.items[index]
		index = best
	}
}

// siftUp moves the element at index toward the root while it has strictly
// higher priority than its parent. Equal elements do not swap.
func (h *Heap[T]) siftUp(index int) {
	for index > 0 {
		p := parent(index)
		if !h.less(h.items[index], h.items[p]) {
			return
		}
		h.items[index], h.items[p] = h.items[p], h.items[index]
		index = p
	}
}
